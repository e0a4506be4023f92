package repository

import (
	"context"
	"errors"

	"supplyhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows an order listing. Nil fields do not filter.
type OrderFilter struct {
	BranchID *uuid.UUID

	// SupplierID keeps orders having at least one line whose product belongs to the supplier.
	// Lines are not filtered.
	SupplierID *uuid.UUID
}

// OrderRepository persists orders together with their line items.
type OrderRepository interface {
	// Create persists the order and its items. ID and CreatedAt must already be set.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns ErrOrderNotFound when no order matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns orders ordered by creation time then ID, items in submitted order.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	Count(ctx context.Context) (int64, error)

	// SumTotalPrice sums the total price of every order, zero when there are none.
	SumTotalPrice(ctx context.Context) (decimal.Decimal, error)
}
