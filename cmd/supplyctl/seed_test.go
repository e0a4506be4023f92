package main

import (
	"context"
	"testing"
	"time"

	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	mockUC "supplyhub/internal/mocks/usecase"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const fixturesYAML = `
categories:
  - key: bakery
    name: Bakery
suppliers:
  - key: mill
    name: North Mill
    email: orders@northmill.test
    deliveryAreas: [north, centre]
    holidays: ["2024-12-25"]
products:
  - supplier: mill
    category: bakery
    name: Flour 25kg
    price: "10.00"
    vat: "0.055"
    stock: 40
branches:
  - firstName: Centre
    email: centre@shop.test
    password: change-me-please
`

func TestParseFixtures(t *testing.T) {
	fixtures, err := parseFixtures([]byte(fixturesYAML))

	require.NoError(t, err)
	require.Len(t, fixtures.Suppliers, 1)
	assert.Equal(t, []string{"north", "centre"}, fixtures.Suppliers[0].DeliveryAreas)
	require.Len(t, fixtures.Products, 1)
	assert.Equal(t, "10.00", fixtures.Products[0].Price)
	assert.Equal(t, "mill", fixtures.Products[0].Supplier)
}

func TestParseFixtures_Malformed(t *testing.T) {
	_, err := parseFixtures([]byte("categories: [unclosed"))

	assert.Error(t, err)
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	catalog := mockUC.NewMockCatalogUsecase(t)
	suppliers := mockUC.NewMockSupplierUsecase(t)
	branches := mockUC.NewMockBranchUsecase(t)

	fixtures, err := parseFixtures([]byte(fixturesYAML))
	require.NoError(t, err)

	categoryID := uuid.New()
	supplierID := uuid.New()

	catalog.EXPECT().AddCategory(ctx, &usecase.AddCategoryInput{Name: "Bakery"}).
		Return(&entity.Category{ID: categoryID, Name: "Bakery"}, nil)
	suppliers.EXPECT().
		CreateSupplier(ctx, mock.MatchedBy(func(in *usecase.CreateSupplierInput) bool {
			return in.Email == "orders@northmill.test" &&
				len(in.Holidays) == 1 &&
				in.Holidays[0].Equal(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC))
		})).
		Return(&entity.Supplier{ID: supplierID}, nil)
	catalog.EXPECT().
		AddProduct(ctx, mock.MatchedBy(func(in *usecase.AddProductInput) bool {
			return in.SupplierID == supplierID &&
				in.CategoryID == categoryID &&
				in.Price.Equal(decimal.RequireFromString("10")) &&
				in.VAT.Equal(decimal.RequireFromString("0.055")) &&
				in.Stock == 40
		})).
		Return(&entity.Product{ID: uuid.New()}, nil)
	branches.EXPECT().
		CreateBranch(ctx, mock.MatchedBy(func(in *usecase.CreateBranchInput) bool {
			return in.Email == "centre@shop.test"
		})).
		Return(&entity.Branch{ID: uuid.New()}, nil)

	report, err := newSeeder(catalog, suppliers, branches).Run(ctx, fixtures)

	require.NoError(t, err)
	assert.Equal(t, &SeedReport{Categories: 1, Suppliers: 1, Products: 1, Branches: 1}, report)
}

func TestSeeder_Run_UnknownSupplierKey(t *testing.T) {
	ctx := context.Background()
	catalog := mockUC.NewMockCatalogUsecase(t)

	fixtures := &Fixtures{
		Products: []ProductFixture{{Supplier: "missing", Category: "bakery", Name: "Rye", Price: "1"}},
	}

	report, err := newSeeder(catalog, mockUC.NewMockSupplierUsecase(t), mockUC.NewMockBranchUsecase(t)).Run(ctx, fixtures)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown supplier key "missing"`)
	assert.Zero(t, report.Products)
}

func TestSeeder_Run_StopsOnFailure(t *testing.T) {
	ctx := context.Background()
	suppliers := mockUC.NewMockSupplierUsecase(t)

	fixtures := &Fixtures{Suppliers: []SupplierFixture{
		{Key: "a", Name: "A", Email: "a@x.test"},
		{Key: "b", Name: "B", Email: "b@x.test"},
	}}

	suppliers.EXPECT().CreateSupplier(ctx, mock.Anything).Return(nil, domainerrors.ErrSupplierAlreadyExists).Once()

	report, err := newSeeder(mockUC.NewMockCatalogUsecase(t), suppliers, mockUC.NewMockBranchUsecase(t)).Run(ctx, fixtures)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSupplierAlreadyExists))
	assert.Zero(t, report.Suppliers)
}

func TestParseIDArg(t *testing.T) {
	id := uuid.New()

	got, err := parseIDArg("supplier", id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = parseIDArg("supplier", "abc")
	assert.EqualError(t, err, `invalid supplier id "abc"`)
}
