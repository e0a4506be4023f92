package repository

import (
	"context"
	"errors"

	"supplyhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrSupplierNotFound is returned when a supplier is not found.
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrSupplierEmailTaken is returned when another supplier already uses the email.
	ErrSupplierEmailTaken = errors.New("supplier email already exists")

	// ErrHolidayNotFound is returned when a supplier has no holiday record.
	ErrHolidayNotFound = errors.New("holiday not found")

	// ErrIntegrationNotFound is returned when a supplier has no integration record.
	ErrIntegrationNotFound = errors.New("integration not found")
)

// SupplierRepository defines the standard operations for supplier persistence.
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// FindByIDs retrieves the suppliers that exist among ids, keyed by ID.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Supplier, error)

	// FindAll lists suppliers ordered by name.
	FindAll(ctx context.Context) ([]*entity.Supplier, error)

	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
	Count(ctx context.Context) (int64, error)
}

// HolidayRepository persists the informational holiday calendar of suppliers.
type HolidayRepository interface {
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) (*entity.Holiday, error)

	// FindBySuppliers retrieves holiday records keyed by supplier ID.
	FindBySuppliers(ctx context.Context, supplierIDs []uuid.UUID) (map[uuid.UUID]*entity.Holiday, error)

	// Upsert creates the supplier's holiday record or replaces its dates.
	Upsert(ctx context.Context, holiday *entity.Holiday) error
}

// IntegrationRepository persists opaque payment integration records.
type IntegrationRepository interface {
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) (*entity.Integration, error)

	// Upsert creates the supplier's integration or replaces its settings.
	Upsert(ctx context.Context, integration *entity.Integration) error
}
