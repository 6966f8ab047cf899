package history_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/btccrack27/ai-reels/internal/api"
	"github.com/btccrack27/ai-reels/internal/history"
)

func sampleItems() []api.ContentItem {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	return []api.ContentItem{
		{ID: "1", Type: api.KindHook, Prompt: "Morning Routine Hacks", CreatedAt: base},
		{ID: "2", Type: api.KindScript, Prompt: "morning routine for founders", CreatedAt: base.Add(time.Hour)},
		{ID: "3", Type: api.KindHook, Prompt: "Straßenfotografie Tipps", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "4", Type: api.KindCaption, Prompt: "Fitness motivation", CreatedAt: base.Add(3 * time.Hour)},
	}
}

func TestFilterByKind(t *testing.T) {
	got := history.Filter(sampleItems(), api.KindHook, "")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected hook items: %#v", got)
	}
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := history.Filter(sampleItems(), "", "MORNING")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %#v", got)
	}

	// Case folding, not just lowercasing: ß matches SS.
	got = history.Filter(sampleItems(), "", "STRASSEN")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected folded match for item 3, got %#v", got)
	}
}

func TestFilterCriteriaAreOrderIndependent(t *testing.T) {
	items := sampleItems()

	kindFirst := history.Filter(history.Filter(items, api.KindHook, ""), "", "morning")
	searchFirst := history.Filter(history.Filter(items, "", "morning"), api.KindHook, "")
	combined := history.Filter(items, api.KindHook, "morning")

	if !reflect.DeepEqual(kindFirst, searchFirst) {
		t.Fatalf("kind-first %#v != search-first %#v", kindFirst, searchFirst)
	}
	if !reflect.DeepEqual(combined, kindFirst) {
		t.Fatalf("combined %#v != sequential %#v", combined, kindFirst)
	}
	if len(combined) != 1 || combined[0].ID != "1" {
		t.Fatalf("unexpected combined result: %#v", combined)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	items := sampleItems()
	snapshot := make([]api.ContentItem, len(items))
	copy(snapshot, items)

	_ = history.Filter(items, api.KindCaption, "fitness")
	_ = history.Filter(items, "", "")

	if !reflect.DeepEqual(items, snapshot) {
		t.Fatalf("input mutated: %#v", items)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	once := history.Filter(sampleItems(), api.KindHook, "morning")
	twice := history.Filter(once, api.KindHook, "morning")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second application changed the result: %#v vs %#v", once, twice)
	}
}

func TestKindLabel(t *testing.T) {
	cases := map[api.ContentKind]string{
		api.KindHook:     "Hook",
		api.KindShotlist: "Shot List",
		api.KindBRoll:    "B-Roll",
		api.KindCalendar: "Content Calendar",
	}
	for kind, want := range cases {
		if got := history.KindLabel(kind); got != want {
			t.Errorf("KindLabel(%s) = %q, want %q", kind, got, want)
		}
	}
}
