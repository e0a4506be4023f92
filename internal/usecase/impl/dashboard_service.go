package impl

import (
	"context"
	"log/slog"

	deliverycontext "supplyhub/internal/delivery/context"
	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/repository"
	"supplyhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	supplierRepo repository.SupplierRepository
	branchRepo   repository.BranchRepository
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	SupplierRepo repository.SupplierRepository
	BranchRepo   repository.BranchRepository
	OrderRepo    repository.OrderRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		supplierRepo: params.SupplierRepo,
		branchRepo:   params.BranchRepo,
		orderRepo:    params.OrderRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStats counts every collection and sums order totals. The queries are independent
// and run concurrently.
func (srv *dashboardService) GetStats(ctx context.Context) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.SupplierCount, err = srv.supplierRepo.Count(gctx)
		return errors.Wrap(err, "failed to count suppliers")
	})
	g.Go(func() (err error) {
		stats.BranchCount, err = srv.branchRepo.Count(gctx)
		return errors.Wrap(err, "failed to count branches")
	})
	g.Go(func() (err error) {
		stats.OrderCount, err = srv.orderRepo.Count(gctx)
		return errors.Wrap(err, "failed to count orders")
	})
	g.Go(func() (err error) {
		stats.ProductCount, err = srv.productRepo.Count(gctx)
		return errors.Wrap(err, "failed to count products")
	})
	g.Go(func() (err error) {
		stats.TotalSales, err = srv.orderRepo.SumTotalPrice(gctx)
		return errors.Wrap(err, "failed to sum order totals")
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to compute dashboard stats", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrAggregationFailed, err.Error())
	}

	return stats, nil
}
