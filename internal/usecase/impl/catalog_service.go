package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "supplyhub/internal/delivery/context"
	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/repository"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	SupplierRepo repository.SupplierRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		supplierRepo: params.SupplierRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddCategory creates a new product category.
func (srv *catalogService) AddCategory(ctx context.Context, input *usecase.AddCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Icon:        input.Icon,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.String("name", category.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// ListCategories returns every category ordered by name.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// AddProduct adds a product to a supplier's catalog. Supplier and category must exist.
func (srv *catalogService) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*entity.Product, error) {
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}

	if err := srv.ensureSupplier(ctx, input.SupplierID); err != nil {
		return nil, err
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WithDetails(input.CategoryID.String())
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New(),
		SupplierID:  input.SupplierID,
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		SKU:         input.SKU,
		VAT:         input.VAT,
		Image:       input.Image,
		Price:       input.Price,
		Stock:       input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("supplierID", input.SupplierID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product added", slog.String("productID", product.ID.String()), slog.String("supplierID", product.SupplierID.String()))

	return product, nil
}

// GetProduct returns a single product.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(productID.String())
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProductsBySupplier returns the catalog of an existing supplier.
func (srv *catalogService) ListProductsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Product, error) {
	if err := srv.ensureSupplier(ctx, supplierID); err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list supplier products")
	}

	return products, nil
}

// UpdateProduct applies the given changes. Orders already placed keep their snapshot prices.
func (srv *catalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
		}
		product.Price = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
		}
		product.Stock = *input.Stock
	}
	product.UpdatedAt = time.Now().UTC()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(productID.String())
		}
		srv.log(ctx).Error("Failed to update product", slog.String("productID", productID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (srv *catalogService) ensureSupplier(ctx context.Context, supplierID uuid.UUID) error {
	if _, err := srv.supplierRepo.FindByID(ctx, supplierID); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return domainerrors.ErrSupplierNotFound.WithDetails(supplierID.String())
		}

		return errors.Wrap(err, "failed to find supplier")
	}

	return nil
}
