package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// supplyctl stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dashboard statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUsecases(cmd.Context(), func(ctx context.Context, uc *usecases) error {
			stats, err := uc.dashboard.GetStats(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), stats)
		})
	},
}

// supplyctl orders ...
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Print order views",
}

var ordersGroupedCmd = &cobra.Command{
	Use:   "grouped",
	Short: "Print all orders grouped by supplier",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUsecases(cmd.Context(), func(ctx context.Context, uc *usecases) error {
			groups, err := uc.views.GetOrdersGroupedBySupplier(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), groups)
		})
	},
}

var ordersSupplierCmd = &cobra.Command{
	Use:   "supplier <supplier-id>",
	Short: "Print the orders of one supplier, reduced to its lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		supplierID, err := parseIDArg("supplier", args[0])
		if err != nil {
			return err
		}

		return withUsecases(cmd.Context(), func(ctx context.Context, uc *usecases) error {
			views, err := uc.views.GetOrdersBySupplier(ctx, supplierID)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), views)
		})
	},
}

var ordersBranchCmd = &cobra.Command{
	Use:   "branch <branch-id>",
	Short: "Print the orders of one branch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		branchID, err := parseIDArg("branch", args[0])
		if err != nil {
			return err
		}

		return withUsecases(cmd.Context(), func(ctx context.Context, uc *usecases) error {
			views, err := uc.views.GetOrdersForBranch(ctx, branchID)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), views)
		})
	},
}

func init() {
	ordersCmd.AddCommand(ordersGroupedCmd)
	ordersCmd.AddCommand(ordersSupplierCmd)
	ordersCmd.AddCommand(ordersBranchCmd)
}

func parseIDArg(kind, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.Errorf("invalid %s id %q", kind, value)
	}

	return id, nil
}
