// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"supplyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PlaceOrderInput defines the data required for a branch to place an order.
type PlaceOrderInput struct {
	BranchID     uuid.UUID
	SupplierID   *uuid.UUID // Optional; enables the delivery area check.
	Items        []entity.LineItem
	DeliveryDate time.Time
	DeliveryArea string
}

// PricingUsecase prices line items against the current catalog.
type PricingUsecase interface {
	// ComputeOrderTotal resolves every product and returns the snapshot prices and the total.
	// It fails on the first product that cannot be resolved.
	ComputeOrderTotal(ctx context.Context, items []entity.LineItem) (*entity.PricedOrder, error)
}

// OrderUsecase defines the write path for orders.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)
}

// OrderViewUsecase defines the read-only projections over stored orders.
// Lookups that match nothing return an empty result rather than an error.
type OrderViewUsecase interface {
	// GetAllOrders returns every order with its branch and products resolved.
	GetAllOrders(ctx context.Context) ([]*entity.OrderView, error)

	// GetOrder returns one order with products and their suppliers resolved, or nil.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.OrderView, error)

	// GetOrdersBySupplier returns the orders containing the supplier's products,
	// each reduced to that supplier's lines.
	GetOrdersBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.OrderView, error)

	// GetOrdersGroupedBySupplier returns one group per supplier appearing in any order.
	GetOrdersGroupedBySupplier(ctx context.Context) ([]*entity.SupplierOrderGroup, error)

	// GetSupplierOrder returns the order reduced to the supplier's lines, or nil.
	GetSupplierOrder(ctx context.Context, supplierID, orderID uuid.UUID) (*entity.SupplierOrderView, error)

	// GetOrdersForBranch returns the branch's orders with products and their suppliers resolved.
	GetOrdersForBranch(ctx context.Context, branchID uuid.UUID) ([]*entity.OrderView, error)
}

// DashboardUsecase summarizes the store for the admin dashboard.
type DashboardUsecase interface {
	GetStats(ctx context.Context) (*entity.DashboardStats, error)
}
