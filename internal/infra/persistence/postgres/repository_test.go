package postgres

import (
	"context"
	"testing"
	"time"

	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/repository"
	"supplyhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection would otherwise get its own in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

type RepositorySuite struct {
	suite.Suite

	ctx       context.Context
	db        *gorm.DB
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	branches  repository.BranchRepository
	orders    repository.OrderRepository
	holidays  repository.HolidayRepository
	txManager repository.TransactionManager

	supplierA *entity.Supplier
	supplierB *entity.Supplier
	productA  *entity.Product
	productB  *entity.Product
	branch    *entity.Branch
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = newTestDB(s.T())
	s.suppliers = NewSupplierRepository(s.db)
	s.products = NewProductRepository(s.db)
	s.branches = NewBranchRepository(s.db)
	s.orders = NewOrderRepository(s.db)
	s.holidays = NewHolidayRepository(s.db)
	s.txManager = NewTransactionManager(s.db)

	s.supplierA = s.createSupplier("Alpha Foods", "alpha@example.com", "North")
	s.supplierB = s.createSupplier("Beta Drinks", "beta@example.com")
	categoryID := s.createCategory("Dry goods")
	s.productA = s.createProduct(s.supplierA.ID, categoryID, "Rice", "10.00")
	s.productB = s.createProduct(s.supplierB.ID, categoryID, "Water", "5.50")

	s.branch = &entity.Branch{
		ID:        uuid.New(),
		FirstName: "Downtown",
		Email:     "downtown@example.com",
		Status:    "active",
	}
	s.Require().NoError(s.branches.Create(s.ctx, s.branch))
}

func (s *RepositorySuite) createSupplier(name, email string, areas ...string) *entity.Supplier {
	supplier := &entity.Supplier{
		ID:            uuid.New(),
		Name:          name,
		Email:         email,
		DeliveryAreas: areas,
		Status:        entity.SupplierStatusActive,
	}
	s.Require().NoError(s.suppliers.Create(s.ctx, supplier))

	return supplier
}

func (s *RepositorySuite) createCategory(name string) uuid.UUID {
	category := &entity.Category{ID: uuid.New(), Name: name}
	s.Require().NoError(NewCategoryRepository(s.db).Create(s.ctx, category))

	return category.ID
}

func (s *RepositorySuite) createProduct(supplierID, categoryID uuid.UUID, name, price string) *entity.Product {
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		CategoryID: categoryID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Stock:      10,
	}
	s.Require().NoError(s.products.Create(s.ctx, product))

	return product
}

func (s *RepositorySuite) createOrder(createdAt time.Time, total string, items ...entity.OrderItem) *entity.Order {
	order := &entity.Order{
		ID:           uuid.New(),
		BranchID:     s.branch.ID,
		Items:        items,
		TotalPrice:   decimal.RequireFromString(total),
		DeliveryDate: createdAt.Add(48 * time.Hour),
		Status:       entity.OrderStatusPending,
		CreatedAt:    createdAt,
	}
	s.Require().NoError(s.orders.Create(s.ctx, order))

	return order
}

func (s *RepositorySuite) TestSupplier_RoundTripAndDuplicateEmail() {
	found, err := s.suppliers.FindByID(s.ctx, s.supplierA.ID)
	s.Require().NoError(err)
	s.Equal("Alpha Foods", found.Name)
	s.Equal([]string{"North"}, found.DeliveryAreas)

	dup := &entity.Supplier{ID: uuid.New(), Name: "Copy", Email: "alpha@example.com"}
	err = s.suppliers.Create(s.ctx, dup)
	s.ErrorIs(err, repository.ErrSupplierEmailTaken)

	_, err = s.suppliers.FindByID(s.ctx, uuid.New())
	s.ErrorIs(err, repository.ErrSupplierNotFound)
}

func (s *RepositorySuite) TestProduct_FindByIDsSkipsMissing() {
	missing := uuid.New()
	products, err := s.products.FindByIDs(s.ctx, []uuid.UUID{s.productA.ID, missing, s.productA.ID})
	s.Require().NoError(err)

	s.Len(products, 1)
	s.True(products[s.productA.ID].Price.Equal(decimal.RequireFromString("10")))
	s.NotContains(products, missing)
}

func (s *RepositorySuite) TestProduct_UpdateMissingReturnsNotFound() {
	ghost := &entity.Product{ID: uuid.New(), Name: "ghost", Price: decimal.NewFromInt(1)}
	s.ErrorIs(s.products.Update(s.ctx, ghost), repository.ErrProductNotFound)
}

func (s *RepositorySuite) TestProduct_NegativePriceRejected() {
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: s.supplierA.ID,
		CategoryID: uuid.New(),
		Name:       "Broken",
		Price:      decimal.NewFromInt(-1),
	}
	s.ErrorIs(s.products.Create(s.ctx, product), domainerrors.ErrValidationFailed)
}

func (s *RepositorySuite) TestBranch_FilteredByRole() {
	admin := &model.UserModel{
		ID:           uuid.New(),
		FirstName:    "Admin",
		Email:        "admin@example.com",
		PasswordHash: "x",
		Role:         entity.RoleAdmin.String(),
	}
	s.Require().NoError(s.db.Create(admin).Error)

	count, err := s.branches.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	_, err = s.branches.FindByID(s.ctx, admin.ID)
	s.ErrorIs(err, repository.ErrBranchNotFound)

	found, err := s.branches.FindByID(s.ctx, s.branch.ID)
	s.Require().NoError(err)
	s.Equal(entity.RoleBranch, found.Role)
}

func (s *RepositorySuite) TestOrder_ListFilters() {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mixed := s.createOrder(base, "36.50",
		entity.OrderItem{ProductID: s.productA.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
		entity.OrderItem{ProductID: s.productB.ID, Quantity: 3, UnitPrice: decimal.RequireFromString("5.50")},
	)
	onlyB := s.createOrder(base.Add(time.Hour), "5.50",
		entity.OrderItem{ProductID: s.productB.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("5.50")},
	)

	all, err := s.orders.List(s.ctx, repository.OrderFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(mixed.ID, all[0].ID)
	s.Equal(onlyB.ID, all[1].ID)
	s.Require().Len(all[0].Items, 2)
	s.Equal(s.productA.ID, all[0].Items[0].ProductID)
	s.Equal(s.productB.ID, all[0].Items[1].ProductID)

	forA, err := s.orders.List(s.ctx, repository.OrderFilter{SupplierID: &s.supplierA.ID})
	s.Require().NoError(err)
	s.Require().Len(forA, 1)
	s.Equal(mixed.ID, forA[0].ID)
	// The supplier filter selects orders, it does not trim their items.
	s.Len(forA[0].Items, 2)

	forB, err := s.orders.List(s.ctx, repository.OrderFilter{SupplierID: &s.supplierB.ID})
	s.Require().NoError(err)
	s.Len(forB, 2)

	otherBranch := uuid.New()
	none, err := s.orders.List(s.ctx, repository.OrderFilter{BranchID: &otherBranch})
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *RepositorySuite) TestOrder_CountAndSum() {
	total, err := s.orders.SumTotalPrice(s.ctx)
	s.Require().NoError(err)
	s.True(total.IsZero())

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s.createOrder(base, "36.50", entity.OrderItem{ProductID: s.productA.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(10)})
	s.createOrder(base.Add(time.Minute), "5.50", entity.OrderItem{ProductID: s.productB.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("5.50")})

	count, err := s.orders.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), count)

	total, err = s.orders.SumTotalPrice(s.ctx)
	s.Require().NoError(err)
	s.Equal("42", total.String())
}

func (s *RepositorySuite) TestOrder_FindByIDNotFound() {
	_, err := s.orders.FindByID(s.ctx, uuid.New())
	s.ErrorIs(err, repository.ErrOrderNotFound)
}

func (s *RepositorySuite) TestTransaction_RollsBackOnError() {
	boom := assert.AnError
	order := &entity.Order{
		ID:         uuid.New(),
		BranchID:   s.branch.ID,
		TotalPrice: decimal.NewFromInt(1),
		Status:     entity.OrderStatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	err := s.txManager.Execute(s.ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().Create(s.ctx, order); err != nil {
			return err
		}

		return boom
	})
	s.ErrorIs(err, boom)

	count, err := s.orders.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *RepositorySuite) TestTransaction_RollsBackOnPanic() {
	order := &entity.Order{
		ID:         uuid.New(),
		BranchID:   s.branch.ID,
		TotalPrice: decimal.NewFromInt(1),
		Status:     entity.OrderStatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	s.Panics(func() {
		_ = s.txManager.Execute(s.ctx, func(factory repository.RepositoryFactory) error {
			s.Require().NoError(factory.NewOrderRepository().Create(s.ctx, order))
			panic("handler bug")
		})
	})

	count, err := s.orders.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *RepositorySuite) TestHoliday_UpsertKeepsSingleRow() {
	first := &entity.Holiday{
		ID:         uuid.New(),
		SupplierID: s.supplierA.ID,
		Dates:      []time.Time{time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
	}
	s.Require().NoError(s.holidays.Upsert(s.ctx, first))

	second := &entity.Holiday{
		ID:         uuid.New(),
		SupplierID: s.supplierA.ID,
		Dates: []time.Time{
			time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	s.Require().NoError(s.holidays.Upsert(s.ctx, second))
	s.Equal(first.ID, second.ID)

	found, err := s.holidays.FindBySupplier(s.ctx, s.supplierA.ID)
	s.Require().NoError(err)
	s.Len(found.Dates, 2)

	bySupplier, err := s.holidays.FindBySuppliers(s.ctx, []uuid.UUID{s.supplierA.ID, s.supplierB.ID})
	s.Require().NoError(err)
	s.Len(bySupplier, 1)
}

func (s *RepositorySuite) TestIntegration_Upsert() {
	integrations := NewIntegrationRepository(s.db)
	integration := &entity.Integration{
		ID:          uuid.New(),
		SupplierID:  s.supplierB.ID,
		CardPayment: true,
		Credentials: entity.IntegrationCredentials{APIURL: "https://pay.example.com", APIKey: "k", APISecret: "s"},
	}
	s.Require().NoError(integrations.Upsert(s.ctx, integration))

	found, err := integrations.FindBySupplier(s.ctx, s.supplierB.ID)
	s.Require().NoError(err)
	s.True(found.CardPayment)
	s.Equal("k", found.Credentials.APIKey)

	_, err = integrations.FindBySupplier(s.ctx, s.supplierA.ID)
	s.ErrorIs(err, repository.ErrIntegrationNotFound)
}
