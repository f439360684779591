package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssanjae/offline-store/internal/domains/catalog/adapters/fixture"
	catalogpostgres "github.com/ssanjae/offline-store/internal/domains/catalog/adapters/persistence/postgres"
	catalogdomain "github.com/ssanjae/offline-store/internal/domains/catalog/domain"
)

func newSeedCommand(opts *options) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "Upsert products, pickup dates and notices from a YAML fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := fixture.Load(args[0])
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "fixture ok: %s\n", describe(*snapshot))
				return nil
			}
			ctx, db, cleanup, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			if err := catalogpostgres.NewRepository(db).Seed(ctx, *snapshot); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", describe(*snapshot))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the fixture without touching the database")
	return cmd
}

func describe(s catalogdomain.Snapshot) string {
	return fmt.Sprintf("%d products, %d pickup dates, %d notices", len(s.Products), len(s.PickupDates), len(s.Notices))
}
