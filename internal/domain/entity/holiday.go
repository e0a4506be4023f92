package entity

import (
	"time"

	"github.com/google/uuid"
)

// Holiday lists the dates on which a supplier does not fulfill orders.
// It is informational only and never consulted during order placement.
type Holiday struct {
	ID         uuid.UUID   `json:"id"`
	SupplierID uuid.UUID   `json:"supplierId"`
	Dates      []time.Time `json:"dates"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// SupplierWithHolidays is a supplier listing row carrying its holiday dates.
type SupplierWithHolidays struct {
	Supplier
	Holidays []time.Time `json:"holidays"`
}
