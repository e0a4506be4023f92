package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDetail is a resolved product, optionally carrying its resolved supplier.
type ProductDetail struct {
	Product
	Supplier *Supplier `json:"supplier,omitempty"`
}

// OrderLine is one resolved line of an order view. Product is nil when the
// referenced product no longer resolves.
type OrderLine struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Product   *ProductDetail  `json:"product"`
}

// OrderView is an order with its branch and line items resolved.
type OrderView struct {
	ID           uuid.UUID       `json:"id"`
	BranchID     uuid.UUID       `json:"branchId"`
	Branch       *Branch         `json:"branch"`
	SupplierID   *uuid.UUID      `json:"supplierId,omitempty"`
	Products     []OrderLine     `json:"products"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	DeliveryDate time.Time       `json:"deliveryDate"`
	DeliveryArea string          `json:"deliveryArea,omitempty"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// SupplierOrderLine is a line item attributed to one supplier.
type SupplierOrderLine struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Details   *Product        `json:"details"`
}

// SupplierOrderView is an order reduced to the lines of a single supplier.
// TotalPrice remains the whole-order total.
type SupplierOrderView struct {
	ID           uuid.UUID           `json:"id"`
	SupplierID   uuid.UUID           `json:"supplierId"`
	BranchID     uuid.UUID           `json:"branchId"`
	Branch       *Branch             `json:"branch"`
	Products     []SupplierOrderLine `json:"products"`
	TotalPrice   decimal.Decimal     `json:"totalPrice"`
	DeliveryDate time.Time           `json:"deliveryDate"`
	DeliveryArea string              `json:"deliveryArea,omitempty"`
	Status       OrderStatus         `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// OrderSummary is the compact order representation used by grouped views.
type OrderSummary struct {
	ID           uuid.UUID       `json:"id"`
	BranchID     uuid.UUID       `json:"branchId"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	DeliveryDate time.Time       `json:"deliveryDate"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// SupplierOrderGroup collects every order containing at least one line from a supplier.
// TotalSales sums whole-order totals, so an order spanning several suppliers
// contributes its full total to each of their groups.
type SupplierOrderGroup struct {
	SupplierID uuid.UUID       `json:"supplierId"`
	Orders     []OrderSummary  `json:"orders"`
	TotalSales decimal.Decimal `json:"totalSales"`
}

// Summary returns the compact representation of the order.
func (o *Order) Summary() OrderSummary {
	return OrderSummary{
		ID:           o.ID,
		BranchID:     o.BranchID,
		TotalPrice:   o.TotalPrice,
		DeliveryDate: o.DeliveryDate,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
	}
}
