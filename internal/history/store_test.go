package history_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/btccrack27/ai-reels/internal/api"
	"github.com/btccrack27/ai-reels/internal/testsupport"
)

func TestStoreRecordAndRecent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	base := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)
	hooks := api.HookResult{ID: "h1", Hooks: []string{"Stop scrolling"}}
	if err := store.Record(ctx, "h1", api.KindHook, "coffee shop opening", "Stop scrolling", hooks, base); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(ctx, "s1", api.KindScript, "coffee shop tour", "", api.ScriptResult{ID: "s1"}, base.Add(time.Minute)); err != nil {
		t.Fatalf("Record: %v", err)
	}

	items, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "s1" || items[1].ID != "h1" {
		t.Fatalf("expected newest first, got %#v", items)
	}
	if items[1].Type != api.KindHook || items[1].Preview != "Stop scrolling" {
		t.Fatalf("unexpected item fields: %#v", items[1])
	}
	if !items[1].CreatedAt.Equal(base) {
		t.Fatalf("timestamp not preserved: %v", items[1].CreatedAt)
	}
}

func TestStoreRecentHonorsLimit(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, id := range []string{"a", "b", "c"} {
		err := store.Record(ctx, id, api.KindCaption, "prompt "+id, "", map[string]string{"id": id}, base.Add(time.Duration(i)*time.Second))
		if err != nil {
			t.Fatalf("Record %s: %v", id, err)
		}
	}

	items, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(items) != 2 || items[0].ID != "c" || items[1].ID != "b" {
		t.Fatalf("unexpected limited items: %#v", items)
	}
}

func TestStoreRecordOverwritesSameID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.Record(ctx, "x", api.KindVoiceover, "first prompt", "", map[string]int{"v": 1}, time.Now()); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(ctx, "x", api.KindVoiceover, "second prompt", "", map[string]int{"v": 2}, time.Now()); err != nil {
		t.Fatalf("Record again: %v", err)
	}

	items, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(items) != 1 || items[0].Prompt != "second prompt" {
		t.Fatalf("expected single overwritten row, got %#v", items)
	}

	raw, err := store.Result(ctx, "x")
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	var payload map[string]int
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if payload["v"] != 2 {
		t.Fatalf("expected latest payload, got %#v", payload)
	}
}

func TestStoreRejectsEmptyID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if err := store.Record(context.Background(), "", api.KindHook, "p", "", nil, time.Now()); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestStoreResultMissingID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := store.Result(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for uncached id")
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.Record(ctx, "keep", api.KindBRoll, "city timelapse", "", api.BRollResult{ID: "keep"}, time.Now()); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	items, err := reopened.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent after reopen: %v", err)
	}
	if len(items) != 1 || items[0].ID != "keep" {
		t.Fatalf("expected persisted item, got %#v", items)
	}
}
