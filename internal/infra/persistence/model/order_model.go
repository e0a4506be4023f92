package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel mirrors the 'users' table. Branches are users with role 'branch'.
type UserModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	FirstName     string         `gorm:"type:varchar(100);not null"`
	LastName      string         `gorm:"type:varchar(100)"`
	Email         string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string         `gorm:"type:varchar(255);not null"`
	Role          string         `gorm:"type:varchar(20);not null;index"`
	Status        string         `gorm:"type:varchar(20);not null;default:active"`
	PaymentMethod string         `gorm:"type:varchar(50)"`
	Address       AddressColumns `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BranchID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	SupplierID   *uuid.UUID      `gorm:"type:uuid;index"`
	TotalPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	DeliveryDate time.Time       `gorm:"not null"`
	DeliveryArea string          `gorm:"type:varchar(100)"`
	Status       string          `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt    time.Time       `gorm:"not null;index"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Position preserves submission order.
type OrderItemModel struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null;check:quantity >= 0"`
	UnitPrice decimal.Decimal `gorm:"type:numeric;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
