package entity

import (
	"time"

	"github.com/google/uuid"
)

// Integration is an opaque payment integration record owned by a supplier.
type Integration struct {
	ID          uuid.UUID              `json:"id"`
	SupplierID  uuid.UUID              `json:"supplierId"`
	CardPayment bool                   `json:"cardPayment"`
	Credentials IntegrationCredentials `json:"credentials"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// IntegrationCredentials is the credential bundle of an integration.
// Key and secret are write-only.
type IntegrationCredentials struct {
	APIURL    string `json:"apiUrl"`
	APIKey    string `json:"-"`
	APISecret string `json:"-"`
}
