package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateHookRendersTable(t *testing.T) {
	env := setupCLITestEnv(t)
	mustLogin(t, env)

	out, _, err := runCLI(t, env, "generate", "hook", "--prompt", "morning routine")
	if err != nil {
		t.Fatalf("generate hook: %v", err)
	}
	requireContains(t, out, "Stop scrolling right now")
	requireContains(t, out, "You are doing this wrong")
	requireContains(t, out, "reels export hook-1")
	if env.backend.lastBody["prompt"] != "morning routine" {
		t.Fatalf("unexpected request body: %#v", env.backend.lastBody)
	}
}

func TestGenerateHookJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	mustLogin(t, env)

	out, _, err := runCLI(t, env, "generate", "hook", "--prompt", "morning routine", "--json")
	if err != nil {
		t.Fatalf("generate hook --json: %v", err)
	}
	var payload struct {
		ID    string   `json:"id"`
		Hooks []string `json:"hooks"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("parse JSON output: %v\n%s", err, out)
	}
	if payload.ID != "hook-1" || len(payload.Hooks) != 2 {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestGenerateRequiresPrompt(t *testing.T) {
	env := setupCLITestEnv(t)
	mustLogin(t, env)

	_, _, err := runCLI(t, env, "generate", "hook")
	if err == nil {
		t.Fatal("expected error without --prompt")
	}
	requireContains(t, err.Error(), "--prompt is required")
	if env.backend.generateCalls != 0 {
		t.Fatalf("expected no backend call, got %d", env.backend.generateCalls)
	}
}

func TestGenerateScriptValidatesDuration(t *testing.T) {
	env := setupCLITestEnv(t)
	mustLogin(t, env)

	_, _, err := runCLI(t, env, "generate", "script", "--prompt", "topic", "--duration", "45")
	if err == nil {
		t.Fatal("expected error for unsupported duration")
	}
	requireContains(t, err.Error(), "unsupported duration")

	out, _, err := runCLI(t, env, "generate", "script", "--prompt", "topic", "--duration", "20")
	if err != nil {
		t.Fatalf("generate script: %v", err)
	}
	requireContains(t, out, "Follow for part two")
	if env.backend.lastBody["duration_seconds"] != float64(20) {
		t.Fatalf("duration not sent: %#v", env.backend.lastBody)
	}
}

func TestGenerateScriptOmitsDefaultDuration(t *testing.T) {
	env := setupCLITestEnv(t)
	mustLogin(t, env)

	_, _, err := runCLI(t, env, "generate", "script", "--prompt", "topic")
	if err != nil {
		t.Fatalf("generate script: %v", err)
	}
	// The server applies its own 15s default when the field is absent.
	if _, present := env.backend.lastBody["duration_seconds"]; present {
		t.Fatalf("expected duration_seconds omitted, got %#v", env.backend.lastBody)
	}
}

func TestGenerateCaptionNoEmojis(t *testing.T) {
	env := setupCLITestEnv(t)
	mustLogin(t, env)

	_, _, err := runCLI(t, env, "generate", "caption", "--prompt", "topic", "--no-emojis")
	if err != nil {
		t.Fatalf("generate caption: %v", err)
	}
	if env.backend.lastBody["include_emojis"] != false {
		t.Fatalf("expected include_emojis=false, got %#v", env.backend.lastBody)
	}
}

func TestGenerateCaptionDefaultsEmojisToServer(t *testing.T) {
	env := setupCLITestEnv(t)
	mustLogin(t, env)

	_, _, err := runCLI(t, env, "generate", "caption", "--prompt", "topic")
	if err != nil {
		t.Fatalf("generate caption: %v", err)
	}
	// Emoji behavior is the server's default unless explicitly disabled.
	if _, present := env.backend.lastBody["include_emojis"]; present {
		t.Fatalf("expected include_emojis omitted, got %#v", env.backend.lastBody)
	}
}

func TestGenerateWithExportSavesPDF(t *testing.T) {
	env := setupCLITestEnv(t)
	mustLogin(t, env)

	out, _, err := runCLI(t, env, "generate", "voiceover", "--prompt", "topic", "--export")
	if err != nil {
		t.Fatalf("generate voiceover --export: %v", err)
	}
	requireContains(t, out, "Saved PDF to")

	pdfPath := filepath.Join(env.baseDir, "downloads", "voiceover_voice-1.pdf")
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		t.Fatalf("expected PDF at %s: %v", pdfPath, err)
	}
	if string(data) != "%PDF-1.4 test" {
		t.Fatalf("unexpected PDF payload: %q", data)
	}
}

func TestGenerateCalendarSendsNiche(t *testing.T) {
	env := setupCLITestEnv(t)
	mustLogin(t, env)

	out, _, err := runCLI(t, env, "generate", "calendar", "--prompt", "fitness", "--niche", "home workouts")
	if err != nil {
		t.Fatalf("generate calendar: %v", err)
	}
	requireContains(t, out, "Day one hook")
	if env.backend.lastBody["niche"] != "home workouts" {
		t.Fatalf("niche not sent: %#v", env.backend.lastBody)
	}
}
