package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// AddressColumns is embedded into tables that carry a postal address.
type AddressColumns struct {
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Country    string `gorm:"type:varchar(100)"`
}

// SupplierModel mirrors the 'suppliers' table.
type SupplierModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name          string                      `gorm:"type:varchar(255);not null"`
	Email         string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone         string                      `gorm:"type:varchar(50)"`
	Icon          string                      `gorm:"type:text"`
	Address       AddressColumns              `gorm:"embedded;embeddedPrefix:address_"`
	DeliveryAreas datatypes.JSONSlice[string] `gorm:"not null"`
	HolidayID     *uuid.UUID                  `gorm:"type:uuid"`
	IntegrationID *uuid.UUID                  `gorm:"type:uuid"`
	Status        string                      `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "suppliers"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SupplierID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	SKU         string          `gorm:"type:varchar(100)"`
	VAT         decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	Image       string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric;not null;check:price >= 0"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// HolidayModel mirrors the 'holidays' table. One row per supplier.
type HolidayModel struct {
	ID         uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	SupplierID uuid.UUID                      `gorm:"type:uuid;uniqueIndex;not null"`
	Dates      datatypes.JSONSlice[time.Time] `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (HolidayModel) TableName() string {
	return "holidays"
}

// IntegrationModel mirrors the 'integrations' table. One row per supplier.
type IntegrationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CardPayment bool      `gorm:"not null;default:false"`
	APIURL      string    `gorm:"column:api_url;type:text"`
	APIKey      string    `gorm:"column:api_key;type:text"`
	APISecret   string    `gorm:"column:api_secret;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (IntegrationModel) TableName() string {
	return "integrations"
}
