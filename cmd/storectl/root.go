package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	platformpostgres "github.com/ssanjae/offline-store/internal/platform/postgres"
)

// options holds flags shared by every subcommand.
type options struct {
	dsn     string
	timeout time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Administer the offline store database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}
	root.PersistentFlags().StringVar(&opts.dsn, "dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL DSN (default: $POSTGRES_DSN)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Deadline for the whole command")

	root.AddCommand(
		newMigrateCommand(opts),
		newSeedCommand(opts),
		newPurgeSessionsCommand(opts),
	)
	return root
}

var errMissingDSN = errors.New("no database configured: pass --dsn or set POSTGRES_DSN")

// connect opens the database for one command and returns a context bounded by --timeout.
func (o *options) connect(parent context.Context) (context.Context, *gorm.DB, func(), error) {
	if strings.TrimSpace(o.dsn) == "" {
		return nil, nil, nil, errMissingDSN
	}
	ctx, cancel := context.WithTimeout(parent, o.timeout)
	db, err := platformpostgres.Connect(ctx, o.dsn)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		cancel()
	}
	return ctx, db, cleanup, nil
}
