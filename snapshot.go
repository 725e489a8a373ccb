package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"nexuraPortal/internal/access"
	"nexuraPortal/internal/onetime"
	"nexuraPortal/services"
)

// snapshotCmd fetches one view from the backend and prints the derived
// result as JSON. It needs an absolute backend URL since there is no
// request origin to resolve against.
func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print a derived view as JSON",
	}
	cmd.AddCommand(
		snapshotSubcommand("campaigns", "Active and upcoming campaigns", func(ctx context.Context, a *app) (any, error) {
			return services.NewCampaignService(a.client, a.logger).Board(ctx)
		}),
		snapshotSubcommand("quests", "Active quests", func(ctx context.Context, a *app) (any, error) {
			qs := services.NewQuestService(a.client, onetime.NewStore(a.cfg.SessionTTL), a.logger)
			return qs.ActiveQuests(ctx)
		}),
		snapshotSubcommand("leaderboard", "Podium and ranked list", func(ctx context.Context, a *app) (any, error) {
			return services.NewLeaderboardService(a.client, a.logger).View(ctx, access.Principal{})
		}),
	)
	return cmd
}

func snapshotSubcommand(name, short string, fetch func(context.Context, *app) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			if a.cfg.ResolvedBackendURL() == "" {
				return fmt.Errorf("snapshot %s: %w", name, services.ErrNoOrigin)
			}
			v, err := fetch(cmd.Context(), a)
			if err != nil {
				return fmt.Errorf("snapshot %s: %w", name, err)
			}
			return writeJSON(cmd.OutOrStdout(), v)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
