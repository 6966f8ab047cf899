package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/btccrack27/ai-reels/internal/api"
)

func renderHooks(w io.Writer, res *api.HookResult) {
	rows := make([][]string, 0, len(res.Hooks))
	for i, hook := range res.Hooks {
		rows = append(rows, []string{strconv.Itoa(i + 1), hook})
	}
	fmt.Fprintln(w, renderTable([]string{"#", "Hook"}, rows, []columnAlignment{alignRight, alignLeft}))
}

func renderScript(w io.Writer, res *api.ScriptResult) {
	rows := make([][]string, 0, len(res.Scenes))
	for _, scene := range res.Scenes {
		rows = append(rows, []string{
			strconv.Itoa(scene.SceneNumber),
			scene.Type,
			scene.Text,
			scene.VisualDescription,
			fmt.Sprintf("%ds", scene.DurationSeconds),
		})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Scene", "Type", "Text", "Visual", "Length"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight},
	))
	if res.CTA != "" {
		fmt.Fprintf(w, "CTA: %s\n", res.CTA)
	}
	if res.TotalDuration > 0 {
		fmt.Fprintf(w, "Total duration: %ds\n", res.TotalDuration)
	}
}

func renderShotlist(w io.Writer, res *api.ShotlistResult) {
	rows := make([][]string, 0, len(res.Shots))
	for i, shot := range res.Shots {
		rows = append(rows, []string{strconv.Itoa(i + 1), shot})
	}
	fmt.Fprintln(w, renderTable([]string{"Shot", "Description"}, rows, []columnAlignment{alignRight, alignLeft}))
}

func renderVoiceover(w io.Writer, res *api.VoiceoverResult) {
	fmt.Fprintln(w, res.Text)
	if res.EstimatedDuration > 0 {
		fmt.Fprintf(w, "\nEstimated duration: %ds\n", res.EstimatedDuration)
	}
}

func renderCaption(w io.Writer, res *api.CaptionResult) {
	fmt.Fprintln(w, res.Caption)
	if len(res.Hashtags) > 0 {
		tags := make([]string, 0, len(res.Hashtags))
		for _, tag := range res.Hashtags {
			if !strings.HasPrefix(tag, "#") {
				tag = "#" + tag
			}
			tags = append(tags, tag)
		}
		fmt.Fprintf(w, "\n%s\n", strings.Join(tags, " "))
	}
}

func renderBRoll(w io.Writer, res *api.BRollResult) {
	rows := make([][]string, 0, len(res.Ideas))
	for i, idea := range res.Ideas {
		rows = append(rows, []string{strconv.Itoa(i + 1), idea})
	}
	fmt.Fprintln(w, renderTable([]string{"#", "B-Roll Idea"}, rows, []columnAlignment{alignRight, alignLeft}))
}

func renderCalendar(w io.Writer, res *api.CalendarResult) {
	if res.Niche != "" {
		fmt.Fprintf(w, "Niche: %s\n", res.Niche)
	}
	rows := make([][]string, 0, len(res.Days))
	for _, day := range res.Days {
		rows = append(rows, []string{strconv.Itoa(day.Day), day.Theme, day.Hook})
	}
	fmt.Fprintln(w, renderTable([]string{"Day", "Theme", "Hook"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
}
