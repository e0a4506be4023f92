package impl

import (
	"io"
	"log/slog"
	"time"

	"supplyhub/internal/domain/entity"
	"supplyhub/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(nil)
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// orderFixture models two suppliers sharing one order:
//
//	orderMixed  (branchOne): productA x2 @ 10.00 + productB x3 @ 5.50 = 36.50
//	orderBOnly  (branchTwo): productB x1 @ 5.50                      =  5.50
type orderFixture struct {
	supplierA, supplierB *entity.Supplier
	productA, productB   *entity.Product
	branchOne, branchTwo *entity.Branch
	orderMixed           *entity.Order
	orderBOnly           *entity.Order
}

func newOrderFixture() orderFixture {
	supplierA := &entity.Supplier{ID: uuid.New(), Name: "Alpha Foods", Email: "alpha@example.com"}
	supplierB := &entity.Supplier{ID: uuid.New(), Name: "Beta Drinks", Email: "beta@example.com"}
	productA := &entity.Product{ID: uuid.New(), SupplierID: supplierA.ID, Name: "Flour", Price: mustDecimal("10.00")}
	productB := &entity.Product{ID: uuid.New(), SupplierID: supplierB.ID, Name: "Juice", Price: mustDecimal("5.50")}
	branchOne := &entity.Branch{ID: uuid.New(), FirstName: "Downtown", Email: "one@example.com", Role: entity.RoleBranch}
	branchTwo := &entity.Branch{ID: uuid.New(), FirstName: "Harbor", Email: "two@example.com", Role: entity.RoleBranch}

	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	orderMixed := &entity.Order{
		ID:       uuid.New(),
		BranchID: branchOne.ID,
		Items: []entity.OrderItem{
			{ProductID: productA.ID, Quantity: 2, UnitPrice: productA.Price},
			{ProductID: productB.ID, Quantity: 3, UnitPrice: productB.Price},
		},
		TotalPrice:   mustDecimal("36.50"),
		DeliveryDate: created.AddDate(0, 0, 2),
		Status:       entity.OrderStatusPending,
		CreatedAt:    created,
	}
	orderBOnly := &entity.Order{
		ID:       uuid.New(),
		BranchID: branchTwo.ID,
		Items: []entity.OrderItem{
			{ProductID: productB.ID, Quantity: 1, UnitPrice: productB.Price},
		},
		TotalPrice:   mustDecimal("5.50"),
		DeliveryDate: created.AddDate(0, 0, 3),
		Status:       entity.OrderStatusPending,
		CreatedAt:    created.Add(time.Hour),
	}

	return orderFixture{
		supplierA:  supplierA,
		supplierB:  supplierB,
		productA:   productA,
		productB:   productB,
		branchOne:  branchOne,
		branchTwo:  branchTwo,
		orderMixed: orderMixed,
		orderBOnly: orderBOnly,
	}
}

func (f orderFixture) products() map[uuid.UUID]*entity.Product {
	return map[uuid.UUID]*entity.Product{f.productA.ID: f.productA, f.productB.ID: f.productB}
}

func (f orderFixture) suppliers() map[uuid.UUID]*entity.Supplier {
	return map[uuid.UUID]*entity.Supplier{f.supplierA.ID: f.supplierA, f.supplierB.ID: f.supplierB}
}

func (f orderFixture) branches() map[uuid.UUID]*entity.Branch {
	return map[uuid.UUID]*entity.Branch{f.branchOne.ID: f.branchOne, f.branchTwo.ID: f.branchTwo}
}
