package history

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/btccrack27/ai-reels/internal/api"
)

var (
	foldCaser  = cases.Fold()
	titleCaser = cases.Title(language.English)
)

// Filter narrows items to a content kind and a free-text query without
// mutating the input. An empty kind keeps all kinds; an empty query keeps
// all prompts. The two criteria are independent, so applying them in either
// order yields the same result.
func Filter(items []api.ContentItem, kind api.ContentKind, query string) []api.ContentItem {
	needle := foldCaser.String(strings.TrimSpace(query))
	filtered := make([]api.ContentItem, 0, len(items))
	for _, item := range items {
		if kind != "" && item.Type != kind {
			continue
		}
		if needle != "" && !strings.Contains(foldCaser.String(item.Prompt), needle) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// KindLabel renders a content kind for table output, e.g. "b-roll" becomes
// "B-Roll" and "shotlist" becomes "Shot List".
func KindLabel(kind api.ContentKind) string {
	switch kind {
	case api.KindShotlist:
		return "Shot List"
	case api.KindBRoll:
		return "B-Roll"
	case api.KindCalendar:
		return "Content Calendar"
	default:
		return titleCaser.String(string(kind))
	}
}
