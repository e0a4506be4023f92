// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "supplyhub/internal/delivery/context"
	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/repository"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// pricingService implements the PricingUsecase interface.
type pricingService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// PricingServiceParams holds dependencies for PricingService, injected by Fx.
type PricingServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewPricingService is the constructor for pricingService.
func NewPricingService(params PricingServiceParams) usecase.PricingUsecase {
	return &pricingService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *pricingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ComputeOrderTotal prices every line item with the product's current price.
func (srv *pricingService) ComputeOrderTotal(ctx context.Context, items []entity.LineItem) (*entity.PricedOrder, error) {
	priced := &entity.PricedOrder{
		Total: decimal.Zero,
		Items: make([]entity.PricedItem, 0, len(items)),
	}
	if len(items) == 0 {
		return priced, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.Quantity < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative for product " + item.ProductID.String())
		}
		ids = append(ids, item.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve products for pricing", slog.Int("items", len(items)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve products for pricing")
	}

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			srv.log(ctx).Warn("Product not found during pricing", slog.String("productID", item.ProductID.String()))

			return nil, domainerrors.ErrProductNotFound.WithDetails(item.ProductID.String())
		}

		priced.Items = append(priced.Items, entity.PricedItem{
			ProductID:  product.ID,
			SupplierID: product.SupplierID,
			Quantity:   item.Quantity,
			UnitPrice:  product.Price,
		})
		priced.Total = priced.Total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return priced, nil
}
