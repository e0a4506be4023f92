package postgres

import (
	"context"

	"supplyhub/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute delegates to gorm's Transaction, which also rolls back when fn panics.
// Errors returned by fn come back unwrapped so callers can match domain errors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return errors.Wrap(err, "transaction")
	default:
		return nil
	}
}

// txRepositories builds repositories on one *gorm.DB transaction handle.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f txRepositories) NewSupplierRepository() repository.SupplierRepository {
	return NewSupplierRepository(f.tx)
}

func (f txRepositories) NewHolidayRepository() repository.HolidayRepository {
	return NewHolidayRepository(f.tx)
}

func (f txRepositories) NewIntegrationRepository() repository.IntegrationRepository {
	return NewIntegrationRepository(f.tx)
}
