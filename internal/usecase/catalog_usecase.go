package usecase

import (
	"context"
	"time"

	"supplyhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddCategoryInput defines the data required to create a category.
type AddCategoryInput struct {
	Name        string
	Description string
	Icon        string
}

// AddProductInput defines the data required to add a product to a supplier's catalog.
type AddProductInput struct {
	SupplierID  uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Description string
	SKU         string
	VAT         decimal.Decimal
	Image       string
	Price       decimal.Decimal
	Stock       int
}

// UpdateProductInput carries the product fields to change. Nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
}

// CatalogUsecase manages categories and products.
type CatalogUsecase interface {
	AddCategory(ctx context.Context, input *AddCategoryInput) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	ListProductsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
}

// CreateSupplierInput defines the data required to register a supplier.
type CreateSupplierInput struct {
	Name          string
	Email         string
	Phone         string
	Icon          string
	Address       entity.Address
	DeliveryAreas []string
	Holidays      []time.Time
}

// UpdateSupplierInput carries the supplier fields to change. Nil fields are left untouched.
type UpdateSupplierInput struct {
	Name          *string
	Phone         *string
	Icon          *string
	Address       *entity.Address
	DeliveryAreas []string
	Status        *entity.SupplierStatus
}

// SetIntegrationInput defines the opaque payment integration of a supplier.
type SetIntegrationInput struct {
	CardPayment bool
	APIURL      string
	APIKey      string
	APISecret   string
}

// SupplierUsecase manages suppliers together with their holidays and integration.
type SupplierUsecase interface {
	CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error)
	ListSuppliers(ctx context.Context) ([]*entity.SupplierWithHolidays, error)
	GetSupplier(ctx context.Context, supplierID uuid.UUID) (*entity.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID uuid.UUID, input *UpdateSupplierInput) (*entity.Supplier, error)
	SetHolidays(ctx context.Context, supplierID uuid.UUID, dates []time.Time) (*entity.Holiday, error)
	SetIntegration(ctx context.Context, supplierID uuid.UUID, input *SetIntegrationInput) (*entity.Integration, error)
}

// CreateBranchInput defines the data required to register a branch account.
type CreateBranchInput struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	PaymentMethod string
	Address       entity.Address
}

// BranchUsecase manages branch accounts.
type BranchUsecase interface {
	CreateBranch(ctx context.Context, input *CreateBranchInput) (*entity.Branch, error)
	ListBranches(ctx context.Context) ([]*entity.Branch, error)
}
