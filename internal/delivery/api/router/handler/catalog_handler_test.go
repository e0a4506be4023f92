package handler

import (
	"net/http"
	"testing"

	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	mockUC "supplyhub/internal/mocks/usecase"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogHandler(t *testing.T) (*echo.Echo, *mockUC.MockCatalogUsecase) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/categories", h.AddCategory)
	e.GET("/categories", h.ListCategories)
	e.POST("/products", h.AddProduct)
	e.GET("/products/:id", h.GetProduct)
	e.PUT("/products/:id", h.UpdateProduct)
	e.GET("/suppliers/:supplierId/products", h.ListSupplierProducts)

	return e, catalogUC
}

func TestCatalogHandler_AddProduct(t *testing.T) {
	supplierID := uuid.New()
	categoryID := uuid.New()

	t.Run("accepts decimal strings", func(t *testing.T) {
		e, catalogUC := createTestCatalogHandler(t)

		catalogUC.EXPECT().
			AddProduct(mock.Anything, mock.MatchedBy(func(in *usecase.AddProductInput) bool {
				return in.SupplierID == supplierID &&
					in.CategoryID == categoryID &&
					in.Price.Equal(decimal.RequireFromString("5.50")) &&
					in.Stock == 12
			})).
			Return(&entity.Product{ID: uuid.New(), SupplierID: supplierID}, nil)

		rec := doRequest(e, http.MethodPost, "/products", `{"supplierId":"`+supplierID.String()+
			`","categoryId":"`+categoryID.String()+`","name":"Flour","price":"5.50","stock":12}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("price is required", func(t *testing.T) {
		e, _ := createTestCatalogHandler(t)

		rec := doRequest(e, http.MethodPost, "/products", `{"supplierId":"`+supplierID.String()+
			`","categoryId":"`+categoryID.String()+`","name":"Flour"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("unknown category", func(t *testing.T) {
		e, catalogUC := createTestCatalogHandler(t)

		catalogUC.EXPECT().AddProduct(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrCategoryNotFound)

		rec := doRequest(e, http.MethodPost, "/products", `{"supplierId":"`+supplierID.String()+
			`","categoryId":"`+categoryID.String()+`","name":"Flour","price":1}`)

		requireErrorCode(t, rec, http.StatusNotFound, "CATEGORY_NOT_FOUND")
	})
}

func TestCatalogHandler_UpdateProduct(t *testing.T) {
	e, catalogUC := createTestCatalogHandler(t)
	productID := uuid.New()

	catalogUC.EXPECT().
		UpdateProduct(mock.Anything, productID, mock.MatchedBy(func(in *usecase.UpdateProductInput) bool {
			return in.Name == nil && in.Price != nil && in.Price.Equal(decimal.NewFromInt(7)) && in.Stock == nil
		})).
		Return(&entity.Product{ID: productID, Price: decimal.NewFromInt(7)}, nil)

	rec := doRequest(e, http.MethodPut, "/products/"+productID.String(), `{"price":7}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	e, catalogUC := createTestCatalogHandler(t)
	productID := uuid.New()

	catalogUC.EXPECT().GetProduct(mock.Anything, productID).Return(nil, domainerrors.ErrProductNotFound)

	rec := doRequest(e, http.MethodGet, "/products/"+productID.String(), "")

	requireErrorCode(t, rec, http.StatusNotFound, "PRODUCT_NOT_FOUND")
}

func TestCatalogHandler_Categories(t *testing.T) {
	e, catalogUC := createTestCatalogHandler(t)

	catalogUC.EXPECT().
		AddCategory(mock.Anything, &usecase.AddCategoryInput{Name: "Dairy"}).
		Return(&entity.Category{ID: uuid.New(), Name: "Dairy"}, nil)
	catalogUC.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{}, nil)

	rec := doRequest(e, http.MethodPost, "/categories", `{"name":"Dairy"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPost, "/categories", `{"name":""}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}
