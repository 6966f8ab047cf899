package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/btccrack27/ai-reels/internal/api"
)

type cliTestEnv struct {
	server     *httptest.Server
	backend    *fakeBackend
	configPath string
	baseDir    string
}

// fakeBackend is a minimal in-memory rendition of the REST API. Handlers
// check the bearer token against accessToken and answer canned payloads.
type fakeBackend struct {
	accessToken  string
	refreshToken string
	user         api.User

	historyItems  []api.ContentItem
	historyStatus int

	generateCalls int
	lastBody      map[string]any
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		accessToken:  "access-1",
		refreshToken: "refresh-1",
		user: api.User{
			ID:       "user-1",
			Email:    "creator@example.com",
			Name:     "Creator",
			Role:     "user",
			IsActive: true,
		},
	}
}

func (b *fakeBackend) authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+b.accessToken
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != b.user.Email || req.Password != "hunter2" {
			writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		_ = json.NewEncoder(w).Encode(api.Credentials{
			User:   b.user,
			Tokens: api.Tokens{AccessToken: b.accessToken, RefreshToken: b.refreshToken},
		})
	})

	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		user := b.user
		user.Email = req.Email
		user.Name = req.Name
		_ = json.NewEncoder(w).Encode(api.Credentials{
			User:   user,
			Tokens: api.Tokens{AccessToken: b.accessToken, RefreshToken: b.refreshToken},
		})
	})

	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		_ = json.NewEncoder(w).Encode(b.user)
	})

	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusUnauthorized, "Refresh not available")
	})

	generate := func(kind api.ContentKind, build func(body map[string]any) any) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !b.authorized(r) {
				writeDetail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			body := map[string]any{}
			_ = json.NewDecoder(r.Body).Decode(&body)
			b.generateCalls++
			b.lastBody = body
			_ = json.NewEncoder(w).Encode(build(body))
		}
	}

	mux.HandleFunc("/api/content/hook", generate(api.KindHook, func(body map[string]any) any {
		return api.HookResult{
			ID:        "hook-1",
			Hooks:     []string{"Stop scrolling right now", "You are doing this wrong"},
			Prompt:    fmt.Sprint(body["prompt"]),
			CreatedAt: time.Now().UTC(),
		}
	}))
	mux.HandleFunc("/api/content/script", generate(api.KindScript, func(body map[string]any) any {
		return api.ScriptResult{
			ID: "script-1",
			Scenes: []api.Scene{
				{SceneNumber: 1, Type: "hook", Text: "Open on the problem", VisualDescription: "Close-up", DurationSeconds: 5},
			},
			CTA:           "Follow for part two",
			TotalDuration: 15,
			Prompt:        fmt.Sprint(body["prompt"]),
		}
	}))
	mux.HandleFunc("/api/content/shotlist", generate(api.KindShotlist, func(body map[string]any) any {
		return api.ShotlistResult{ID: "shot-1", Shots: []string{"Wide establishing shot"}}
	}))
	mux.HandleFunc("/api/content/voiceover", generate(api.KindVoiceover, func(body map[string]any) any {
		return api.VoiceoverResult{ID: "voice-1", Text: "Here is the thing nobody tells you.", EstimatedDuration: 12}
	}))
	mux.HandleFunc("/api/content/caption", generate(api.KindCaption, func(body map[string]any) any {
		return api.CaptionResult{ID: "caption-1", Caption: "Less hustle, more systems.", Hashtags: []string{"productivity"}}
	}))
	mux.HandleFunc("/api/content/broll", generate(api.KindBRoll, func(body map[string]any) any {
		return api.BRollResult{ID: "broll-1", Ideas: []string{"Coffee pour close-up"}}
	}))
	mux.HandleFunc("/api/content/calendar", generate(api.KindCalendar, func(body map[string]any) any {
		return api.CalendarResult{
			ID:   "calendar-1",
			Days: []api.CalendarDay{{Day: 1, Hook: "Day one hook", Theme: "Introductions"}},
		}
	}))

	mux.HandleFunc("/api/content/history", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if b.historyStatus != 0 {
			writeDetail(w, b.historyStatus, "Not found")
			return
		}
		_ = json.NewEncoder(w).Encode(b.historyItems)
	})

	mux.HandleFunc("/api/subscription/status", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		_ = json.NewEncoder(w).Encode(api.Subscription{Plan: "pro", Status: "active"})
	})
	mux.HandleFunc("/api/subscription/usage", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		_ = json.NewEncoder(w).Encode(api.Usage{
			"hooks":       {Used: 5, Limit: 10},
			"pdf_exports": {Used: 1, Limit: -1},
		})
	})
	mux.HandleFunc("/api/subscription/checkout", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"checkout_url": "https://checkout.example.com/session"})
	})
	mux.HandleFunc("/api/subscription/portal", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"portal_url": "https://billing.example.com/portal"})
	})

	mux.HandleFunc("/api/export/pdf/", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 test"))
	})

	return mux
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	backend := newFakeBackend()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("REELS_API_URL", "")

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[api]
base_url = %q

[paths]
state_dir = %q
download_dir = %q
log_dir = %q

[output]
color = false

[logging]
level = "warn"
`,
		server.URL,
		filepath.Join(base, "state"),
		filepath.Join(base, "downloads"),
		filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{
		server:     server,
		backend:    backend,
		configPath: configPath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func mustLogin(t *testing.T, env *cliTestEnv) {
	t.Helper()
	out, _, err := runCLI(t, env, "login", "--email", "creator@example.com", "--password", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	requireContains(t, out, "Logged in as Creator")
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
