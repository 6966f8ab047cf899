package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/btccrack27/ai-reels/internal/api"
)

func newSubscriptionCommand(ctx *commandContext) *cobra.Command {
	subCmd := &cobra.Command{
		Use:     "subscription",
		Aliases: []string{"sub"},
		Short:   "Manage the subscription and view usage",
	}

	subCmd.AddCommand(newSubscriptionStatusCommand(ctx))
	subCmd.AddCommand(newSubscriptionCheckoutCommand(ctx))
	subCmd.AddCommand(newSubscriptionPortalCommand(ctx))

	return subCmd
}

func newSubscriptionStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show plan, billing state, and usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			sub, err := client.SubscriptionStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("subscription status: %s", api.Detail(err, "could not load subscription"))
			}
			usage, err := client.UsageStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("usage stats: %s", api.Detail(err, "could not load usage"))
			}

			if asJSON {
				return writeJSON(cmd, map[string]any{"subscription": sub, "usage": usage})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Plan:   %s\n", sub.Plan)
			fmt.Fprintf(out, "Status: %s\n", sub.Status)
			if !sub.CurrentPeriodEnd.IsZero() {
				fmt.Fprintf(out, "Renews: %s\n", sub.CurrentPeriodEnd.Local().Format("2006-01-02"))
			}
			if sub.CancelAtPeriodEnd {
				fmt.Fprintln(out, "Cancels at period end")
			}
			fmt.Fprintln(out)

			features := make([]string, 0, len(usage))
			for feature := range usage {
				features = append(features, feature)
			}
			sort.Strings(features)

			rows := make([][]string, 0, len(features))
			for _, feature := range features {
				entry := usage[feature]
				rows = append(rows, []string{
					feature,
					strconv.Itoa(entry.Used),
					limitLabel(entry.Limit),
					usageBar(entry.Used, entry.Limit),
				})
			}
			if len(rows) > 0 {
				fmt.Fprintln(out, renderTable(
					[]string{"Feature", "Used", "Limit", "Usage"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
				))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a report")
	return cmd
}

func newSubscriptionCheckoutCommand(ctx *commandContext) *cobra.Command {
	var plan, successURL, cancelURL string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Create a checkout session for a plan upgrade",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(plan) == "" {
				return errors.New("checkout: --plan is required")
			}
			client, err := ctx.requireUser(cmd.Context())
			if err != nil {
				return err
			}
			url, err := client.CreateCheckoutSession(cmd.Context(), plan, successURL, cancelURL)
			if err != nil {
				return fmt.Errorf("checkout: %s", api.Detail(err, "could not start checkout"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Open this URL to complete checkout:\n%s\n", url)
			return nil
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "Plan identifier to subscribe to")
	cmd.Flags().StringVar(&successURL, "success-url", "", "Where the browser lands after payment")
	cmd.Flags().StringVar(&cancelURL, "cancel-url", "", "Where the browser lands on cancel")
	return cmd
}

func newSubscriptionPortalCommand(ctx *commandContext) *cobra.Command {
	var returnURL string

	cmd := &cobra.Command{
		Use:   "portal",
		Short: "Open the billing portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.requireUser(cmd.Context())
			if err != nil {
				return err
			}
			url, err := client.CreatePortalSession(cmd.Context(), returnURL)
			if err != nil {
				return fmt.Errorf("portal: %s", api.Detail(err, "could not open billing portal"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Open this URL to manage billing:\n%s\n", url)
			return nil
		},
	}

	cmd.Flags().StringVar(&returnURL, "return-url", "", "Where the browser lands after the portal")
	return cmd
}

const usageBarWidth = 20

// usagePercent maps consumption to a 0-100 bar value. Unlimited plans
// (limit -1) always show a full bar; bounded plans cap at 100 even when the
// backend reports overage.
func usagePercent(used, limit int) int {
	if limit < 0 {
		return 100
	}
	if limit == 0 {
		if used > 0 {
			return 100
		}
		return 0
	}
	percent := used * 100 / limit
	if percent > 100 {
		return 100
	}
	return percent
}

func usageBar(used, limit int) string {
	percent := usagePercent(used, limit)
	filled := percent * usageBarWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", usageBarWidth-filled)
}

func limitLabel(limit int) string {
	if limit < 0 {
		return "∞"
	}
	return strconv.Itoa(limit)
}
