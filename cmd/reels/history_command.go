package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/btccrack27/ai-reels/internal/api"
	"github.com/btccrack27/ai-reels/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var kindFlag, searchFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse previously generated content",
		RunE: func(cmd *cobra.Command, args []string) error {
			if kindFlag != "" && !api.ValidKind(kindFlag) {
				return fmt.Errorf("unknown content type %q (choose one of %s)", kindFlag, kindList())
			}

			items, err := loadHistory(ctx, cmd)
			if err != nil {
				return err
			}

			items = history.Filter(items, api.ContentKind(kindFlag), searchFlag)

			if asJSON {
				return writeJSON(cmd, items)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No content yet")
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, item := range items {
				created := ""
				if !item.CreatedAt.IsZero() {
					created = item.CreatedAt.Local().Format("2006-01-02 15:04")
				}
				rows = append(rows, []string{
					item.ID,
					history.KindLabel(item.Type),
					truncate(item.Prompt, 48),
					truncate(item.Preview, 48),
					created,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Type", "Prompt", "Preview", "Created"},
				rows,
				nil,
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "type", "t", "", "Only show one content type")
	cmd.Flags().StringVarP(&searchFlag, "search", "s", "", "Filter prompts by a search term")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

// loadHistory prefers the backend list and falls back to the local cache when
// the endpoint is missing, so history keeps working against older servers.
func loadHistory(ctx *commandContext, cmd *cobra.Command) ([]api.ContentItem, error) {
	client, err := ctx.requireUser(cmd.Context())
	if err != nil {
		return nil, err
	}

	items, err := client.History(cmd.Context())
	if err == nil {
		return items, nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) && (apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusNotImplemented) {
		ctx.ensureLogger().Debug("history endpoint unavailable, using local cache", "status", apiErr.Status)
		store, storeErr := ctx.ensureHistoryStore()
		if storeErr != nil {
			return nil, fmt.Errorf("history: %s", api.Detail(err, "could not load history"))
		}
		cached, cacheErr := store.Recent(cmd.Context(), 0)
		if cacheErr != nil {
			return nil, fmt.Errorf("history cache: %w", cacheErr)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Server history unavailable; showing locally cached content")
		return cached, nil
	}
	return nil, fmt.Errorf("history: %s", api.Detail(err, "could not load history"))
}

func kindList() string {
	out := ""
	for i, kind := range api.Kinds() {
		if i > 0 {
			out += ", "
		}
		out += string(kind)
	}
	return out
}

func truncate(value string, limit int) string {
	if limit <= 3 || len([]rune(value)) <= limit {
		return value
	}
	runes := []rune(value)
	return string(runes[:limit-3]) + "..."
}
