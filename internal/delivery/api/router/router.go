// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"supplyhub/config"
	"supplyhub/internal/delivery/api/router/handler"
	"supplyhub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler     *handler.OrderHandler
	SupplierHandler  *handler.SupplierHandler
	CatalogHandler   *handler.CatalogHandler
	BranchHandler    *handler.BranchHandler
	DashboardHandler *handler.DashboardHandler
	Metrics          *metrics.Metrics
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler     *handler.OrderHandler
	supplierHandler  *handler.SupplierHandler
	catalogHandler   *handler.CatalogHandler
	branchHandler    *handler.BranchHandler
	dashboardHandler *handler.DashboardHandler
	metrics          *metrics.Metrics
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:     params.OrderHandler,
		supplierHandler:  params.SupplierHandler,
		catalogHandler:   params.CatalogHandler,
		branchHandler:    params.BranchHandler,
		dashboardHandler: params.DashboardHandler,
		metrics:          params.Metrics,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/grouped-by-supplier", r.orderHandler.ListOrdersGroupedBySupplier)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
	}

	suppliersGroup := apiV1.Group("/suppliers")
	{
		suppliersGroup.POST("", r.supplierHandler.CreateSupplier)
		suppliersGroup.GET("", r.supplierHandler.ListSuppliers)
		suppliersGroup.GET("/:supplierId", r.supplierHandler.GetSupplier)
		suppliersGroup.PUT("/:supplierId", r.supplierHandler.UpdateSupplier)
		suppliersGroup.PUT("/:supplierId/holidays", r.supplierHandler.SetHolidays)
		suppliersGroup.PUT("/:supplierId/integration", r.supplierHandler.SetIntegration)
		suppliersGroup.GET("/:supplierId/products", r.catalogHandler.ListSupplierProducts)

		// Supplier-scoped order views
		suppliersGroup.GET("/:supplierId/orders", r.orderHandler.ListSupplierOrders)
		suppliersGroup.GET("/:supplierId/orders/:orderId", r.orderHandler.GetSupplierOrder)
		suppliersGroup.GET("/:supplierId/orders/:orderId/slip", r.orderHandler.GetSupplierOrderSlip)
	}

	branchesGroup := apiV1.Group("/branches")
	{
		branchesGroup.POST("", r.branchHandler.CreateBranch)
		branchesGroup.GET("", r.branchHandler.ListBranches)
		branchesGroup.GET("/:branchId/orders", r.orderHandler.ListBranchOrders)
	}

	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.POST("", r.catalogHandler.AddCategory)
		categoriesGroup.GET("", r.catalogHandler.ListCategories)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.POST("", r.catalogHandler.AddProduct)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
		productsGroup.PUT("/:id", r.catalogHandler.UpdateProduct)
	}

	apiV1.GET("/dashboard/stats", r.dashboardHandler.GetStats)
}
