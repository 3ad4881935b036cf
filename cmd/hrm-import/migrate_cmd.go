package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/iota-uz/hrm-import/modules/hrm/infrastructure/persistence"
	"github.com/iota-uz/hrm-import/pkg/composables"
	"github.com/iota-uz/hrm-import/pkg/configuration"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the import subsystem schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			conf := configuration.Use()

			pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer pool.Close()

			if err := persistence.Migrate(composables.WithPool(ctx, pool)); err != nil {
				return err
			}
			conf.Logger().Info("schema applied")
			return nil
		},
	}
}
