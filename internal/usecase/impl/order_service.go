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
	"supplyhub/internal/domain/service"
	"supplyhub/internal/infra/metrics"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	branchRepo   repository.BranchRepository
	supplierRepo repository.SupplierRepository
	pricing      usecase.PricingUsecase
	publisher    service.EventPublisher
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BranchRepo   repository.BranchRepository
	SupplierRepo repository.SupplierRepository
	Pricing      usecase.PricingUsecase
	Publisher    service.EventPublisher
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:    params.TxManager,
		branchRepo:   params.BranchRepo,
		supplierRepo: params.SupplierRepo,
		pricing:      params.Pricing,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the branch and optional supplier, prices the items and
// persists the order. Nothing is written when any step before persistence fails.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if _, err := srv.branchRepo.FindByID(ctx, input.BranchID); err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			return nil, domainerrors.ErrBranchNotFound.WithDetails(input.BranchID.String())
		}

		return nil, errors.Wrap(err, "failed to find branch")
	}

	if input.SupplierID != nil {
		if err := srv.checkDeliveryArea(ctx, *input.SupplierID, input.DeliveryArea); err != nil {
			return nil, err
		}
	}

	priced, err := srv.pricing.ComputeOrderTotal(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:           uuid.New(),
		BranchID:     input.BranchID,
		SupplierID:   input.SupplierID,
		Items:        priced.OrderItems(),
		TotalPrice:   priced.Total,
		DeliveryDate: input.DeliveryDate,
		DeliveryArea: strings.TrimSpace(input.DeliveryArea),
		Status:       entity.OrderStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewOrderRepository().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist order", slog.String("branchID", input.BranchID.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed, err.Error())
	}

	srv.metrics.OrderPlaced()
	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID.String()),
		slog.String("branchID", order.BranchID.String()),
		slog.String("total", order.TotalPrice.String()),
		slog.Int("items", len(order.Items)),
	)

	srv.publishOrderPlaced(ctx, order, priced.SupplierIDs())

	return order, nil
}

func (srv *orderService) checkDeliveryArea(ctx context.Context, supplierID uuid.UUID, area string) error {
	supplier, err := srv.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return domainerrors.ErrSupplierNotFound.WithDetails(supplierID.String())
		}

		return errors.Wrap(err, "failed to find supplier")
	}

	if !supplier.DeliversTo(area) {
		srv.log(ctx).Warn("Supplier does not deliver to area",
			slog.String("supplierID", supplierID.String()),
			slog.String("area", area),
		)

		return domainerrors.ErrDeliveryAreaViolation.WithDetails(area)
	}

	return nil
}

// publishOrderPlaced runs after commit; a failure is logged and the order stands.
func (srv *orderService) publishOrderPlaced(ctx context.Context, order *entity.Order, supplierIDs []uuid.UUID) {
	event := &service.OrderPlacedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:      order.ID,
		BranchID:     order.BranchID,
		SupplierIDs:  supplierIDs,
		TotalPrice:   order.TotalPrice,
		DeliveryDate: order.DeliveryDate,
		CreatedAt:    order.CreatedAt,
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.metrics.EventPublishFailed()
		srv.log(ctx).Warn("Failed to publish order placed event",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}
}
