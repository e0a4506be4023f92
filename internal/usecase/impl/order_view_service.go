package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "supplyhub/internal/delivery/context"
	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/repository"
	"supplyhub/internal/infra/metrics"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	viewAll               = "all"
	viewDetail            = "detail"
	viewBySupplier        = "by_supplier"
	viewGroupedBySupplier = "grouped_by_supplier"
	viewSupplierOrder     = "supplier_order"
	viewForBranch         = "for_branch"
)

// orderViewService implements the OrderViewUsecase interface.
// Orders come back from the repository ordered by creation time then ID and
// every view keeps that order. Lines keep their submitted position.
type orderViewService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	branchRepo   repository.BranchRepository
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// OrderViewServiceParams holds dependencies for OrderViewService, injected by Fx.
type OrderViewServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	ProductRepo  repository.ProductRepository
	SupplierRepo repository.SupplierRepository
	BranchRepo   repository.BranchRepository
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// NewOrderViewService is the constructor for orderViewService.
func NewOrderViewService(params OrderViewServiceParams) usecase.OrderViewUsecase {
	return &orderViewService{
		orderRepo:    params.OrderRepo,
		productRepo:  params.ProductRepo,
		supplierRepo: params.SupplierRepo,
		branchRepo:   params.BranchRepo,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (srv *orderViewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveOptions selects which references a view needs besides products.
type resolveOptions struct {
	branches  bool
	suppliers bool
}

// orderRefs holds the resolved references of a batch of orders.
// Missing entries stand for references that no longer resolve.
type orderRefs struct {
	branches  map[uuid.UUID]*entity.Branch
	products  map[uuid.UUID]*entity.Product
	suppliers map[uuid.UUID]*entity.Supplier
}

func (refs *orderRefs) productDetail(productID uuid.UUID, withSupplier bool) *entity.ProductDetail {
	product, ok := refs.products[productID]
	if !ok {
		return nil
	}

	detail := &entity.ProductDetail{Product: *product}
	if withSupplier {
		detail.Supplier = refs.suppliers[product.SupplierID]
	}

	return detail
}

// belongsTo reports whether the line's product resolves to the supplier.
func (refs *orderRefs) belongsTo(item entity.OrderItem, supplierID uuid.UUID) bool {
	product, ok := refs.products[item.ProductID]

	return ok && product.SupplierID == supplierID
}

// resolve fetches products and branches concurrently, then the suppliers of the resolved products.
func (srv *orderViewService) resolve(ctx context.Context, orders []*entity.Order, opts resolveOptions) (*orderRefs, error) {
	refs := &orderRefs{
		branches:  map[uuid.UUID]*entity.Branch{},
		products:  map[uuid.UUID]*entity.Product{},
		suppliers: map[uuid.UUID]*entity.Supplier{},
	}
	if len(orders) == 0 {
		return refs, nil
	}

	productIDs, branchIDs := collectReferenceIDs(orders)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := srv.productRepo.FindByIDs(gctx, productIDs)
		if err != nil {
			return errors.Wrap(err, "failed to resolve products")
		}
		refs.products = products

		return nil
	})
	if opts.branches {
		g.Go(func() error {
			branches, err := srv.branchRepo.FindByIDs(gctx, branchIDs)
			if err != nil {
				return errors.Wrap(err, "failed to resolve branches")
			}
			refs.branches = branches

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.suppliers && len(refs.products) > 0 {
		supplierIDs := make([]uuid.UUID, 0, len(refs.products))
		seen := make(map[uuid.UUID]struct{}, len(refs.products))
		for _, id := range productIDs {
			product, ok := refs.products[id]
			if !ok {
				continue
			}
			if _, dup := seen[product.SupplierID]; dup {
				continue
			}
			seen[product.SupplierID] = struct{}{}
			supplierIDs = append(supplierIDs, product.SupplierID)
		}

		suppliers, err := srv.supplierRepo.FindByIDs(ctx, supplierIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve suppliers")
		}
		refs.suppliers = suppliers
	}

	return refs, nil
}

// collectReferenceIDs returns the distinct product and branch ids in traversal order.
func collectReferenceIDs(orders []*entity.Order) (productIDs, branchIDs []uuid.UUID) {
	seenProducts := map[uuid.UUID]struct{}{}
	seenBranches := map[uuid.UUID]struct{}{}

	for _, order := range orders {
		if _, ok := seenBranches[order.BranchID]; !ok {
			seenBranches[order.BranchID] = struct{}{}
			branchIDs = append(branchIDs, order.BranchID)
		}
		for _, item := range order.Items {
			if _, ok := seenProducts[item.ProductID]; ok {
				continue
			}
			seenProducts[item.ProductID] = struct{}{}
			productIDs = append(productIDs, item.ProductID)
		}
	}

	return productIDs, branchIDs
}

// aggregationFailed logs the underlying fault and hides it behind AggregationFailed.
func (srv *orderViewService) aggregationFailed(ctx context.Context, view string, err error) error {
	srv.log(ctx).Error("Failed to aggregate orders", slog.String("view", view), slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrAggregationFailed, err.Error())
}

// buildView assembles an order view. A non-nil keep drops the lines it rejects.
func buildView(order *entity.Order, refs *orderRefs, withSupplier bool, keep func(entity.OrderItem) bool) *entity.OrderView {
	view := &entity.OrderView{
		ID:           order.ID,
		BranchID:     order.BranchID,
		Branch:       refs.branches[order.BranchID],
		SupplierID:   order.SupplierID,
		Products:     make([]entity.OrderLine, 0, len(order.Items)),
		TotalPrice:   order.TotalPrice,
		DeliveryDate: order.DeliveryDate,
		DeliveryArea: order.DeliveryArea,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}

	for _, item := range order.Items {
		if keep != nil && !keep(item) {
			continue
		}
		view.Products = append(view.Products, entity.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Product:   refs.productDetail(item.ProductID, withSupplier),
		})
	}

	return view
}

// GetAllOrders returns every order with its branch and products resolved.
func (srv *orderViewService) GetAllOrders(ctx context.Context) (views []*entity.OrderView, err error) {
	defer srv.metrics.ObserveView(viewAll, time.Now(), &err)

	return srv.listViews(ctx, viewAll, repository.OrderFilter{}, resolveOptions{branches: true})
}

// GetOrdersForBranch returns the branch's orders with products and their suppliers resolved.
func (srv *orderViewService) GetOrdersForBranch(ctx context.Context, branchID uuid.UUID) (views []*entity.OrderView, err error) {
	defer srv.metrics.ObserveView(viewForBranch, time.Now(), &err)

	return srv.listViews(ctx, viewForBranch, repository.OrderFilter{BranchID: &branchID}, resolveOptions{branches: true, suppliers: true})
}

func (srv *orderViewService) listViews(ctx context.Context, view string, filter repository.OrderFilter, opts resolveOptions) ([]*entity.OrderView, error) {
	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, srv.aggregationFailed(ctx, view, errors.Wrap(err, "failed to list orders"))
	}

	refs, err := srv.resolve(ctx, orders, opts)
	if err != nil {
		return nil, srv.aggregationFailed(ctx, view, err)
	}

	views := make([]*entity.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, buildView(order, refs, opts.suppliers, nil))
	}

	return views, nil
}

// GetOrder returns one order with products and their suppliers resolved.
// An unknown order yields nil without error.
func (srv *orderViewService) GetOrder(ctx context.Context, orderID uuid.UUID) (view *entity.OrderView, err error) {
	defer srv.metrics.ObserveView(viewDetail, time.Now(), &err)

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, srv.aggregationFailed(ctx, viewDetail, errors.Wrap(err, "failed to find order"))
	}

	refs, err := srv.resolve(ctx, []*entity.Order{order}, resolveOptions{branches: true, suppliers: true})
	if err != nil {
		return nil, srv.aggregationFailed(ctx, viewDetail, err)
	}

	return buildView(order, refs, true, nil), nil
}

// GetOrdersBySupplier returns the orders holding at least one of the supplier's
// products, each reduced to that supplier's lines.
func (srv *orderViewService) GetOrdersBySupplier(ctx context.Context, supplierID uuid.UUID) (views []*entity.OrderView, err error) {
	defer srv.metrics.ObserveView(viewBySupplier, time.Now(), &err)

	orders, err := srv.orderRepo.List(ctx, repository.OrderFilter{SupplierID: &supplierID})
	if err != nil {
		return nil, srv.aggregationFailed(ctx, viewBySupplier, errors.Wrap(err, "failed to list orders"))
	}

	refs, err := srv.resolve(ctx, orders, resolveOptions{branches: true})
	if err != nil {
		return nil, srv.aggregationFailed(ctx, viewBySupplier, err)
	}

	keep := func(item entity.OrderItem) bool { return refs.belongsTo(item, supplierID) }

	views = make([]*entity.OrderView, 0, len(orders))
	for _, order := range orders {
		view := buildView(order, refs, false, keep)
		if len(view.Products) == 0 {
			continue
		}
		views = append(views, view)
	}

	return views, nil
}

// GetOrdersGroupedBySupplier returns one group per supplier in order of first
// appearance. An order spanning several suppliers is listed, with its whole
// total, in each of their groups.
func (srv *orderViewService) GetOrdersGroupedBySupplier(ctx context.Context) (groups []*entity.SupplierOrderGroup, err error) {
	defer srv.metrics.ObserveView(viewGroupedBySupplier, time.Now(), &err)

	orders, err := srv.orderRepo.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, srv.aggregationFailed(ctx, viewGroupedBySupplier, errors.Wrap(err, "failed to list orders"))
	}

	refs, err := srv.resolve(ctx, orders, resolveOptions{})
	if err != nil {
		return nil, srv.aggregationFailed(ctx, viewGroupedBySupplier, err)
	}

	groups = make([]*entity.SupplierOrderGroup, 0)
	bySupplier := map[uuid.UUID]*entity.SupplierOrderGroup{}

	for _, order := range orders {
		counted := map[uuid.UUID]struct{}{}
		for _, item := range order.Items {
			product, ok := refs.products[item.ProductID]
			if !ok {
				continue
			}
			if _, done := counted[product.SupplierID]; done {
				continue
			}
			counted[product.SupplierID] = struct{}{}

			group, ok := bySupplier[product.SupplierID]
			if !ok {
				group = &entity.SupplierOrderGroup{
					SupplierID: product.SupplierID,
					Orders:     []entity.OrderSummary{},
					TotalSales: decimal.Zero,
				}
				bySupplier[product.SupplierID] = group
				groups = append(groups, group)
			}

			group.Orders = append(group.Orders, order.Summary())
			group.TotalSales = group.TotalSales.Add(order.TotalPrice)
		}
	}

	return groups, nil
}

// GetSupplierOrder returns the order reduced to the supplier's lines. It
// yields nil without error when the order is unknown or has none of them.
func (srv *orderViewService) GetSupplierOrder(ctx context.Context, supplierID, orderID uuid.UUID) (view *entity.SupplierOrderView, err error) {
	defer srv.metrics.ObserveView(viewSupplierOrder, time.Now(), &err)

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, srv.aggregationFailed(ctx, viewSupplierOrder, errors.Wrap(err, "failed to find order"))
	}

	refs, err := srv.resolve(ctx, []*entity.Order{order}, resolveOptions{branches: true})
	if err != nil {
		return nil, srv.aggregationFailed(ctx, viewSupplierOrder, err)
	}

	lines := make([]entity.SupplierOrderLine, 0, len(order.Items))
	for _, item := range order.Items {
		if !refs.belongsTo(item, supplierID) {
			continue
		}
		details := *refs.products[item.ProductID]
		lines = append(lines, entity.SupplierOrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Details:   &details,
		})
	}

	if len(lines) == 0 {
		srv.log(ctx).Debug("Order has no lines for supplier",
			slog.String("orderID", orderID.String()),
			slog.String("supplierID", supplierID.String()),
		)

		return nil, nil
	}

	return &entity.SupplierOrderView{
		ID:           order.ID,
		SupplierID:   supplierID,
		BranchID:     order.BranchID,
		Branch:       refs.branches[order.BranchID],
		Products:     lines,
		TotalPrice:   order.TotalPrice,
		DeliveryDate: order.DeliveryDate,
		DeliveryArea: order.DeliveryArea,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}, nil
}
