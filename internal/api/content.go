package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// HookRequest asks for ten opening lines on a topic.
type HookRequest struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context,omitempty"`
}

// ScriptRequest asks for a scene-by-scene script. A zero duration lets the
// backend apply its 15 second default.
type ScriptRequest struct {
	Prompt          string `json:"prompt"`
	Context         string `json:"context,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// ShotlistRequest asks for an ordered shot list, optionally derived from an
// existing script.
type ShotlistRequest struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context,omitempty"`
	Script  string `json:"script,omitempty"`
}

// VoiceoverRequest asks for narration text, optionally derived from an
// existing script.
type VoiceoverRequest struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context,omitempty"`
	Script  string `json:"script,omitempty"`
}

// CaptionRequest asks for a caption plus hashtags. A nil IncludeEmojis lets
// the backend apply its default (emojis on).
type CaptionRequest struct {
	Prompt        string `json:"prompt"`
	Context       string `json:"context,omitempty"`
	IncludeEmojis *bool  `json:"include_emojis,omitempty"`
}

// BRollRequest asks for supplementary footage ideas.
type BRollRequest struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context,omitempty"`
}

// CalendarRequest asks for a 30-day content calendar. An empty niche falls
// back to the prompt server-side.
type CalendarRequest struct {
	Niche   string `json:"niche,omitempty"`
	Prompt  string `json:"prompt"`
	Context string `json:"context,omitempty"`
}

var errPromptRequired = errors.New("generate: prompt required")

// GenerateHook requests hook generation.
func (c *Client) GenerateHook(ctx context.Context, req HookRequest) (*HookResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, errPromptRequired
	}
	var result HookResult
	if err := c.do(ctx, http.MethodPost, "/api/content/hook", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateScript requests script generation.
func (c *Client) GenerateScript(ctx context.Context, req ScriptRequest) (*ScriptResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, errPromptRequired
	}
	var result ScriptResult
	if err := c.do(ctx, http.MethodPost, "/api/content/script", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateShotlist requests shotlist generation.
func (c *Client) GenerateShotlist(ctx context.Context, req ShotlistRequest) (*ShotlistResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, errPromptRequired
	}
	var result ShotlistResult
	if err := c.do(ctx, http.MethodPost, "/api/content/shotlist", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateVoiceover requests voiceover generation.
func (c *Client) GenerateVoiceover(ctx context.Context, req VoiceoverRequest) (*VoiceoverResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, errPromptRequired
	}
	var result VoiceoverResult
	if err := c.do(ctx, http.MethodPost, "/api/content/voiceover", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateCaption requests caption generation.
func (c *Client) GenerateCaption(ctx context.Context, req CaptionRequest) (*CaptionResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, errPromptRequired
	}
	var result CaptionResult
	if err := c.do(ctx, http.MethodPost, "/api/content/caption", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateBRoll requests B-roll idea generation.
func (c *Client) GenerateBRoll(ctx context.Context, req BRollRequest) (*BRollResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, errPromptRequired
	}
	var result BRollResult
	if err := c.do(ctx, http.MethodPost, "/api/content/broll", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateCalendar requests 30-day calendar generation.
func (c *Client) GenerateCalendar(ctx context.Context, req CalendarRequest) (*CalendarResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, errPromptRequired
	}
	var result CalendarResult
	if err := c.do(ctx, http.MethodPost, "/api/content/calendar", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// History fetches the full generation history for the current user.
func (c *Client) History(ctx context.Context) ([]ContentItem, error) {
	var items []ContentItem
	if err := c.do(ctx, http.MethodGet, "/api/content/history", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
