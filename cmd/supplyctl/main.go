// Command supplyctl is the operator CLI: it prints order views and dashboard
// statistics and seeds the catalog from a fixtures file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"supplyhub/config"
	"supplyhub/internal/domain/lifecycle"
	"supplyhub/internal/infra/auth"
	logs "supplyhub/internal/infra/log"
	"supplyhub/internal/infra/metrics"
	"supplyhub/internal/infra/persistence/postgres"
	"supplyhub/internal/usecase"
	"supplyhub/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "supplyctl",
	Short:         "supplyhub operator CLI",
	Long:          "Inspect orders and dashboard statistics, and seed catalog fixtures, against the configured store.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(migrateCmd)
}

// usecases is the subset of the application the CLI drives.
type usecases struct {
	db        *gorm.DB
	views     usecase.OrderViewUsecase
	dashboard usecase.DashboardUsecase
	catalog   usecase.CatalogUsecase
	suppliers usecase.SupplierUsecase
	branches  usecase.BranchUsecase
}

// withUsecases boots the store-backed part of the application, runs fn and shuts it down again.
// The product cache is not wired: the CLI always reads through to the store.
func withUsecases(ctx context.Context, fn func(ctx context.Context, uc *usecases) error) error {
	var uc usecases
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			metrics.New,
			auth.NewBcryptHasher,
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewSupplierRepository,
			postgres.NewHolidayRepository,
			postgres.NewIntegrationRepository,
			postgres.NewBranchRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
			impl.NewOrderViewService,
			impl.NewDashboardService,
			impl.NewCatalogService,
			impl.NewSupplierService,
			impl.NewBranchService,
		),
		fx.Populate(&uc.db, &uc.views, &uc.dashboard, &uc.catalog, &uc.suppliers, &uc.branches),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(ctx, &uc)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
