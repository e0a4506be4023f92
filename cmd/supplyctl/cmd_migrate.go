package main

import (
	"context"
	"fmt"

	"supplyhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// supplyctl migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the store schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUsecases(cmd.Context(), func(ctx context.Context, uc *usecases) error {
			models := model.All()
			if err := uc.db.WithContext(ctx).AutoMigrate(models...); err != nil {
				return errors.Wrap(err, "auto migrate")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d tables\n", len(models))

			return nil
		})
	},
}
