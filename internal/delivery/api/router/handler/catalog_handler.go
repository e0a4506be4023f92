package handler

import (
	"log/slog"
	"net/http"

	"supplyhub/internal/delivery/api/response"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for category and product administration
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// AddCategoryRequest represents the request body for creating a category
type AddCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description" validate:"max=1024"`
	Icon        string `json:"icon" validate:"max=1024"`
}

// AddProductRequest represents the request body for adding a product
type AddProductRequest struct {
	SupplierID  string           `json:"supplierId" validate:"required,uuid"`
	CategoryID  string           `json:"categoryId" validate:"required,uuid"`
	Name        string           `json:"name" validate:"required,max=255"`
	Description string           `json:"description" validate:"max=4096"`
	SKU         string           `json:"sku" validate:"max=64"`
	VAT         decimal.Decimal  `json:"vat"`
	Image       string           `json:"image" validate:"max=1024"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       int              `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest represents the request body for changing a product. Omitted fields are kept.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=4096"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
}

// AddCategory handles category creation
func (h *CatalogHandler) AddCategory(c echo.Context) error {
	var req AddCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	category, err := h.catalogUC.AddCategory(c.Request().Context(), &usecase.AddCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// ListCategories handles listing all categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// AddProduct handles adding a product to a supplier's catalog
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	product, err := h.catalogUC.AddProduct(c.Request().Context(), &usecase.AddProductInput{
		SupplierID:  uuid.MustParse(req.SupplierID),
		CategoryID:  uuid.MustParse(req.CategoryID),
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		VAT:         req.VAT,
		Image:       req.Image,
		Price:       *req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// GetProduct handles fetching a single product
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// UpdateProduct handles partial product updates
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	productID, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "product ID")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), productID, &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ListSupplierProducts handles listing the catalog of one supplier
func (h *CatalogHandler) ListSupplierProducts(c echo.Context) error {
	supplierID, ok := uuidParam(c, "supplierId")
	if !ok {
		return response.InvalidID(c, "supplier ID")
	}

	products, err := h.catalogUC.ListProductsBySupplier(c.Request().Context(), supplierID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}
