package main

import (
	"context"
	"log/slog"
	"os"

	"supplyhub/config"
	"supplyhub/internal/delivery"
	"supplyhub/internal/delivery/api"
	"supplyhub/internal/delivery/api/router/handler"
	"supplyhub/internal/domain/repository"
	"supplyhub/internal/infra/auth"
	"supplyhub/internal/infra/cache"
	logs "supplyhub/internal/infra/log"
	"supplyhub/internal/infra/metrics"
	"supplyhub/internal/infra/persistence/postgres"
	"supplyhub/internal/infra/pubsub"
	"supplyhub/internal/infra/qrcode"
	"supplyhub/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewClient,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewSupplierRepository,
			postgres.NewHolidayRepository,
			postgres.NewIntegrationRepository,
			postgres.NewBranchRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

// newProductRepository puts the Redis cache in front of the catalog store when Redis is configured.
func newProductRepository(
	db *gorm.DB,
	client *redis.Client,
	cfg *config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) repository.ProductRepository {
	repo := postgres.NewProductRepository(db)
	if client == nil {
		// A typed nil would defeat the nil check inside the decorator.
		return repo
	}

	return cache.NewCacheAsideProductRepo(repo, client, cfg.Redis.ProductTTL, m, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			qrcode.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPricingService,
			impl.NewOrderService,
			impl.NewOrderViewService,
			impl.NewDashboardService,
			impl.NewCatalogService,
			impl.NewSupplierService,
			impl.NewBranchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
			handler.NewSupplierHandler,
			handler.NewCatalogHandler,
			handler.NewBranchHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
