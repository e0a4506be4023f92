package handler

import (
	"log/slog"
	"net/http"

	"supplyhub/internal/delivery/api/response"
	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/service"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC     usecase.OrderUsecase
	OrderViewUC usecase.OrderViewUsecase
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// OrderHandler holds dependencies for order placement and the order views
type OrderHandler struct {
	orderUC     usecase.OrderUsecase
	orderViewUC usecase.OrderViewUsecase
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:     params.OrderUC,
		orderViewUC: params.OrderViewUC,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

// LineItemRequest is one requested (product, quantity) pair
type LineItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// PlaceOrderRequest represents the request body for placing an order
type PlaceOrderRequest struct {
	BranchID     string            `json:"branchId" validate:"required,uuid"`
	SupplierID   string            `json:"supplierId" validate:"omitempty,uuid"`
	Products     []LineItemRequest `json:"products" validate:"required,min=1,dive"`
	DeliveryDate string            `json:"deliveryDate" validate:"required"`
	DeliveryArea string            `json:"deliveryArea" validate:"max=128"`
}

// PlaceOrder handles order creation
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	deliveryDate, err := parseDate(req.DeliveryDate)
	if err != nil {
		return response.ValidationFailed(c, err)
	}

	items := make([]entity.LineItem, len(req.Products))
	for i, p := range req.Products {
		items[i] = entity.LineItem{ProductID: uuid.MustParse(p.ProductID), Quantity: p.Quantity}
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		BranchID:     uuid.MustParse(req.BranchID),
		SupplierID:   parseOptionalUUID(req.SupplierID),
		Items:        items,
		DeliveryDate: deliveryDate,
		DeliveryArea: req.DeliveryArea,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListOrders handles listing every order with branch and products resolved
func (h *OrderHandler) ListOrders(c echo.Context) error {
	views, err := h.orderViewUC.GetAllOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// GetOrder handles the single order detail view. An unknown order yields null data.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "order ID")
	}

	view, err := h.orderViewUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ListOrdersGroupedBySupplier handles the per-supplier grouping of all orders
func (h *OrderHandler) ListOrdersGroupedBySupplier(c echo.Context) error {
	groups, err := h.orderViewUC.GetOrdersGroupedBySupplier(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups)
}

// ListSupplierOrders handles the orders of one supplier, reduced to its lines
func (h *OrderHandler) ListSupplierOrders(c echo.Context) error {
	supplierID, ok := uuidParam(c, "supplierId")
	if !ok {
		return response.InvalidID(c, "supplier ID")
	}

	views, err := h.orderViewUC.GetOrdersBySupplier(c.Request().Context(), supplierID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// GetSupplierOrder handles one order reduced to a supplier's lines. No match yields null data.
func (h *OrderHandler) GetSupplierOrder(c echo.Context) error {
	supplierID, orderID, ok := supplierOrderParams(c)
	if !ok {
		return response.InvalidID(c, "supplier or order ID")
	}

	view, err := h.orderViewUC.GetSupplierOrder(c.Request().Context(), supplierID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// GetSupplierOrderSlip renders the delivery slip QR code of a supplier's part of an order
func (h *OrderHandler) GetSupplierOrderSlip(c echo.Context) error {
	supplierID, orderID, ok := supplierOrderParams(c)
	if !ok {
		return response.InvalidID(c, "supplier or order ID")
	}

	view, err := h.orderViewUC.GetSupplierOrder(c.Request().Context(), supplierID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if view == nil {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound.WithDetails("no lines for this supplier"))
	}

	png, err := h.qrService.GenerateDeliverySlipQR(service.DeliverySlip{OrderID: view.ID, SupplierID: view.SupplierID})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListBranchOrders handles the orders of one branch with products and suppliers resolved
func (h *OrderHandler) ListBranchOrders(c echo.Context) error {
	branchID, ok := uuidParam(c, "branchId")
	if !ok {
		return response.InvalidID(c, "branch ID")
	}

	views, err := h.orderViewUC.GetOrdersForBranch(c.Request().Context(), branchID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

func supplierOrderParams(c echo.Context) (supplierID, orderID uuid.UUID, ok bool) {
	if supplierID, ok = uuidParam(c, "supplierId"); !ok {
		return uuid.Nil, uuid.Nil, false
	}
	if orderID, ok = uuidParam(c, "orderId"); !ok {
		return uuid.Nil, uuid.Nil, false
	}

	return supplierID, orderID, true
}
