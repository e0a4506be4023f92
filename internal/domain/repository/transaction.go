package repository

import "context"

// TransactionManager runs fn inside one store transaction. A non-nil error
// from fn rolls back everything fn wrote through the factory.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
// Only the aggregates written together appear here.
type RepositoryFactory interface {
	NewOrderRepository() OrderRepository
	NewSupplierRepository() SupplierRepository
	NewHolidayRepository() HolidayRepository
	NewIntegrationRepository() IntegrationRepository
}
