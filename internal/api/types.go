package api

import "time"

// User is the backend's view of the authenticated account. The client holds a
// read-only copy for display and gating.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	SubscriptionID   string    `json:"subscription_id,omitempty"`
	StripeCustomerID string    `json:"stripe_customer_id,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at,omitzero"`
}

// Tokens carries the bearer credentials issued on login, register, and refresh.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}

// Credentials is the combined login/register response.
type Credentials struct {
	User   User   `json:"user"`
	Tokens Tokens `json:"tokens"`
}

// ContentKind identifies one of the seven generated content variants.
type ContentKind string

const (
	KindHook      ContentKind = "hook"
	KindScript    ContentKind = "script"
	KindShotlist  ContentKind = "shotlist"
	KindVoiceover ContentKind = "voiceover"
	KindCaption   ContentKind = "caption"
	KindBRoll     ContentKind = "broll"
	KindCalendar  ContentKind = "calendar"
)

// Kinds lists every content kind in menu order.
func Kinds() []ContentKind {
	return []ContentKind{
		KindHook, KindScript, KindShotlist, KindVoiceover,
		KindCaption, KindBRoll, KindCalendar,
	}
}

// ValidKind reports whether value names a known content kind.
func ValidKind(value string) bool {
	for _, kind := range Kinds() {
		if string(kind) == value {
			return true
		}
	}
	return false
}

// HookResult is the response for hook generation: ten short opening lines.
type HookResult struct {
	ID        string    `json:"id"`
	Hooks     []string  `json:"hooks"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

// Scene is one segment of a generated script.
type Scene struct {
	SceneNumber       int    `json:"scene_number"`
	Type              string `json:"type"`
	Text              string `json:"text"`
	VisualDescription string `json:"visual_description"`
	DurationSeconds   int    `json:"duration_seconds"`
}

// ScriptResult is the response for script generation.
type ScriptResult struct {
	ID            string    `json:"id"`
	Scenes        []Scene   `json:"scenes"`
	CTA           string    `json:"cta"`
	TotalDuration int       `json:"total_duration"`
	Prompt        string    `json:"prompt"`
	CreatedAt     time.Time `json:"created_at"`
}

// ShotlistResult is the response for shotlist generation: ordered shots with
// angle and duration folded into each entry.
type ShotlistResult struct {
	ID        string    `json:"id"`
	Shots     []string  `json:"shots"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

// VoiceoverResult is the response for voiceover generation.
type VoiceoverResult struct {
	ID                string    `json:"id"`
	Text              string    `json:"text"`
	EstimatedDuration int       `json:"estimated_duration"`
	Prompt            string    `json:"prompt"`
	CreatedAt         time.Time `json:"created_at"`
}

// CaptionResult is the response for caption generation.
type CaptionResult struct {
	ID        string    `json:"id"`
	Caption   string    `json:"caption"`
	Hashtags  []string  `json:"hashtags"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

// BRollResult is the response for B-roll idea generation.
type BRollResult struct {
	ID        string    `json:"id"`
	Ideas     []string  `json:"ideas"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

// CalendarDay is one entry of a 30-day content calendar.
type CalendarDay struct {
	Day   int    `json:"day"`
	Hook  string `json:"hook"`
	Theme string `json:"theme"`
}

// CalendarResult is the response for calendar generation.
type CalendarResult struct {
	ID        string        `json:"id"`
	Niche     string        `json:"niche"`
	Days      []CalendarDay `json:"days"`
	Prompt    string        `json:"prompt"`
	CreatedAt time.Time     `json:"created_at"`
}

// ContentItem is one row of the generation history list.
type ContentItem struct {
	ID        string      `json:"id"`
	Type      ContentKind `json:"type"`
	Prompt    string      `json:"prompt"`
	Preview   string      `json:"preview,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Subscription is the billing state projection returned by the backend.
type Subscription struct {
	Plan              string    `json:"plan"`
	Status            string    `json:"status"`
	CurrentPeriodEnd  time.Time `json:"current_period_end,omitzero"`
	CancelAtPeriodEnd bool      `json:"cancel_at_period_end"`
}

// UsageEntry pairs consumed quota with its plan limit. A limit of -1 means
// unbounded.
type UsageEntry struct {
	Used  int `json:"used"`
	Limit int `json:"limit"`
}

// Usage maps feature names (hooks, scripts, pdf_exports, ...) to usage entries.
type Usage map[string]UsageEntry
