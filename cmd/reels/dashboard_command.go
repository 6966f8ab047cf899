package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/btccrack27/ai-reels/internal/api"
	"github.com/btccrack27/ai-reels/internal/history"
)

const dashboardRecentLimit = 5

type dashboardSummary struct {
	User      *api.User         `json:"user"`
	Plan      string            `json:"plan,omitempty"`
	Total     int               `json:"total"`
	ThisMonth int               `json:"this_month"`
	ByKind    map[string]int    `json:"by_kind"`
	Recent    []api.ContentItem `json:"recent"`
}

func newDashboardCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show account activity at a glance",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.requireUser(cmd.Context())
			if err != nil {
				return err
			}
			user, err := client.CurrentUser(cmd.Context())
			if err != nil {
				return fmt.Errorf("dashboard: %s", api.Detail(err, "could not load account"))
			}

			items, err := loadHistory(ctx, cmd)
			if err != nil {
				return err
			}

			summary := buildDashboardSummary(user, items, time.Now())
			if sub, subErr := client.SubscriptionStatus(cmd.Context()); subErr == nil {
				summary.Plan = sub.Plan
			}

			if asJSON {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Welcome back, %s\n", user.Name)
			if summary.Plan != "" {
				fmt.Fprintf(out, "Plan: %s\n", summary.Plan)
			}
			fmt.Fprintf(out, "Generated: %d total, %d this month\n\n", summary.Total, summary.ThisMonth)

			kindRows := make([][]string, 0, len(api.Kinds()))
			for _, kind := range api.Kinds() {
				if count := summary.ByKind[string(kind)]; count > 0 {
					kindRows = append(kindRows, []string{history.KindLabel(kind), fmt.Sprintf("%d", count)})
				}
			}
			if len(kindRows) > 0 {
				fmt.Fprintln(out, renderTable([]string{"Type", "Count"}, kindRows, []columnAlignment{alignLeft, alignRight}))
			}

			if len(summary.Recent) > 0 {
				recentRows := make([][]string, 0, len(summary.Recent))
				for _, item := range summary.Recent {
					created := ""
					if !item.CreatedAt.IsZero() {
						created = item.CreatedAt.Local().Format("2006-01-02 15:04")
					}
					recentRows = append(recentRows, []string{
						history.KindLabel(item.Type),
						truncate(item.Prompt, 48),
						created,
					})
				}
				fmt.Fprintln(out, renderTable([]string{"Recent", "Prompt", "Created"}, recentRows, nil))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a report")
	return cmd
}

func buildDashboardSummary(user *api.User, items []api.ContentItem, now time.Time) dashboardSummary {
	summary := dashboardSummary{
		User:   user,
		Total:  len(items),
		ByKind: make(map[string]int),
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for _, item := range items {
		summary.ByKind[string(item.Type)]++
		if !item.CreatedAt.Before(monthStart) {
			summary.ThisMonth++
		}
	}
	limit := dashboardRecentLimit
	if len(items) < limit {
		limit = len(items)
	}
	summary.Recent = items[:limit]
	return summary
}
