package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SupplierStatus represents the lifecycle state of a supplier.
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

// Supplier is an upstream vendor providing products to branches.
type Supplier struct {
	ID            uuid.UUID      `json:"id"`                      // The Global Unique Identifier (GUID) for the supplier.
	Name          string         `json:"name"`                    // Display name of the supplier.
	Email         string         `json:"email"`                   // Unique contact email.
	Phone         string         `json:"phone,omitempty"`         // Contact phone number.
	Icon          string         `json:"icon,omitempty"`          // Opaque image reference.
	Address       Address        `json:"address"`                 // Postal address of the supplier.
	DeliveryAreas []string       `json:"deliveryAreas"`           // Areas the supplier delivers to. Empty means no restriction.
	HolidayID     *uuid.UUID     `json:"holidayId,omitempty"`     // Reference to the supplier's holiday record.
	IntegrationID *uuid.UUID     `json:"integrationId,omitempty"` // Reference to the opaque payment integration.
	Status        SupplierStatus `json:"status"`                  // Lifecycle state.
	CreatedAt     time.Time      `json:"createdAt"`               // Timestamp of when the supplier was created.
	UpdatedAt     time.Time      `json:"updatedAt"`               // Timestamp of the last modification.
}

// DeliversTo reports whether the supplier serves the given area.
// A supplier without declared delivery areas serves every area.
func (s *Supplier) DeliversTo(area string) bool {
	if len(s.DeliveryAreas) == 0 {
		return true
	}

	area = strings.TrimSpace(area)
	for _, candidate := range s.DeliveryAreas {
		if strings.EqualFold(strings.TrimSpace(candidate), area) {
			return true
		}
	}

	return false
}
