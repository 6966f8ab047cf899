package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/btccrack27/ai-reels/internal/api"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "export <content-id>",
		Short: "Download a generated item as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contentID := args[0]
			if kindFlag != "" && !api.ValidKind(kindFlag) {
				return fmt.Errorf("unknown content type %q (choose one of %s)", kindFlag, kindList())
			}

			client, err := ctx.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			kind := api.ContentKind(kindFlag)
			if kind == "" {
				kind = lookupCachedKind(ctx, cmd, contentID)
			}

			path, err := exportContent(ctx, cmd.Context(), client, kind, contentID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved PDF to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "type", "t", "", "Content type used in the output filename")
	return cmd
}

// lookupCachedKind recovers the content type from the local cache so export
// filenames stay descriptive without a --type flag.
func lookupCachedKind(ctx *commandContext, cmd *cobra.Command, contentID string) api.ContentKind {
	store, err := ctx.ensureHistoryStore()
	if err != nil {
		return "content"
	}
	items, err := store.Recent(cmd.Context(), 0)
	if err != nil {
		return "content"
	}
	for _, item := range items {
		if item.ID == contentID {
			return item.Type
		}
	}
	return "content"
}
