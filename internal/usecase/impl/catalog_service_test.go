package impl

import (
	"context"
	"testing"

	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/repository"
	mockRepo "supplyhub/internal/mocks/repository"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	supplierRepo *mockRepo.MockSupplierRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		supplierRepo: mockRepo.NewMockSupplierRepository(t),
	}
	fx.service = NewCatalogService(CatalogServiceParams{
		ProductRepo:  fx.productRepo,
		CategoryRepo: fx.categoryRepo,
		SupplierRepo: fx.supplierRepo,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestCatalogService_AddCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := fx.service.AddCategory(ctx, &usecase.AddCategoryInput{Name: "  Bakery ", Icon: "bread.png"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, category.ID)
	assert.Equal(t, "Bakery", category.Name)
}

func TestCatalogService_AddProduct(t *testing.T) {
	supplierID := uuid.New()
	categoryID := uuid.New()

	validInput := func() *usecase.AddProductInput {
		return &usecase.AddProductInput{
			SupplierID: supplierID,
			CategoryID: categoryID,
			Name:       "Rye bread",
			Price:      mustDecimal("3.20"),
			Stock:      10,
		}
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.supplierRepo.EXPECT().FindByID(ctx, supplierID).Return(&entity.Supplier{ID: supplierID}, nil)
		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
		fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		product, err := fx.service.AddProduct(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, supplierID, product.SupplierID)
		assert.True(t, product.Price.Equal(mustDecimal("3.2")))
	})

	t.Run("negative price", func(t *testing.T) {
		fx := createTestCatalogService(t)
		input := validInput()
		input.Price = decimal.NewFromInt(-1)

		_, err := fx.service.AddProduct(context.Background(), input)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unknown supplier", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.supplierRepo.EXPECT().FindByID(ctx, supplierID).Return(nil, repository.ErrSupplierNotFound)

		_, err := fx.service.AddProduct(ctx, validInput())
		assert.True(t, errors.Is(err, domainerrors.ErrSupplierNotFound))
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.supplierRepo.EXPECT().FindByID(ctx, supplierID).Return(&entity.Supplier{ID: supplierID}, nil)
		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

		_, err := fx.service.AddProduct(ctx, validInput())
		assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
		fx.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, productID)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Juice", Price: mustDecimal("5.50"), Stock: 4}
	newPrice := mustDecimal("6.00")
	newStock := 12

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Price.Equal(newPrice) && p.Stock == newStock && p.Name == "Juice"
		})).
		Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, product.ID, &usecase.UpdateProductInput{Price: &newPrice, Stock: &newStock})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
}

func TestCatalogService_UpdateProduct_NegativeStock(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Price: mustDecimal("1")}
	stock := -3

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.UpdateProduct(ctx, product.ID, &usecase.UpdateProductInput{Stock: &stock})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_ListProductsBySupplier(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	supplierID := uuid.New()
	products := []*entity.Product{{ID: uuid.New(), SupplierID: supplierID}}

	fx.supplierRepo.EXPECT().FindByID(ctx, supplierID).Return(&entity.Supplier{ID: supplierID}, nil)
	fx.productRepo.EXPECT().FindBySupplier(ctx, supplierID).Return(products, nil)

	got, err := fx.service.ListProductsBySupplier(ctx, supplierID)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}
