package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssanjae/offline-store/internal/platform/migrations"
)

func newMigrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog and session tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, cleanup, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			if err := migrations.Run(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}
