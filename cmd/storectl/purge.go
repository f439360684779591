package main

import (
	"fmt"

	"github.com/spf13/cobra"

	authpostgres "github.com/ssanjae/offline-store/internal/domains/auth/adapters/persistence/postgres"
	authapp "github.com/ssanjae/offline-store/internal/domains/auth/application"
)

func newPurgeSessionsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-sessions",
		Short: "Delete sessions whose expiry has passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, db, cleanup, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			purged, err := authapp.NewService(authpostgres.NewSessionStore(db)).PurgeExpired(ctx)
			if err != nil {
				return fmt.Errorf("purge-sessions: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d sessions\n", purged)
			return nil
		},
	}
}
