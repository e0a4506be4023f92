package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/service"
	mockSvc "supplyhub/internal/mocks/service"
	mockUC "supplyhub/internal/mocks/usecase"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderHandlerFixtures struct {
	e           *echo.Echo
	orderUC     *mockUC.MockOrderUsecase
	orderViewUC *mockUC.MockOrderViewUsecase
	qrService   *mockSvc.MockQRCodeService
}

func createTestOrderHandler(t *testing.T) orderHandlerFixtures {
	orderUC := mockUC.NewMockOrderUsecase(t)
	orderViewUC := mockUC.NewMockOrderViewUsecase(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	h := NewOrderHandler(OrderHandlerParams{
		OrderUC:     orderUC,
		OrderViewUC: orderViewUC,
		QRService:   qrService,
		Logger:      newDiscardLogger(),
	})

	e := newTestEcho()
	e.POST("/orders", h.PlaceOrder)
	e.GET("/orders", h.ListOrders)
	e.GET("/orders/grouped-by-supplier", h.ListOrdersGroupedBySupplier)
	e.GET("/orders/:id", h.GetOrder)
	e.GET("/suppliers/:supplierId/orders", h.ListSupplierOrders)
	e.GET("/suppliers/:supplierId/orders/:orderId", h.GetSupplierOrder)
	e.GET("/suppliers/:supplierId/orders/:orderId/slip", h.GetSupplierOrderSlip)
	e.GET("/branches/:branchId/orders", h.ListBranchOrders)

	return orderHandlerFixtures{
		e:           e,
		orderUC:     orderUC,
		orderViewUC: orderViewUC,
		qrService:   qrService,
	}
}

func TestOrderHandler_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderHandler(t)

	branchID := uuid.New()
	productID := uuid.New()
	body := `{"branchId":"` + branchID.String() + `","products":[{"productId":"` + productID.String() +
		`","quantity":2}],"deliveryDate":"2024-05-01","deliveryArea":"north"}`

	order := &entity.Order{
		ID:         uuid.New(),
		BranchID:   branchID,
		Items:      []entity.OrderItem{{ProductID: productID, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")}},
		TotalPrice: decimal.RequireFromString("20.00"),
		Status:     entity.OrderStatusPending,
	}

	fx.orderUC.EXPECT().
		PlaceOrder(mock.Anything, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return in.BranchID == branchID &&
				in.SupplierID == nil &&
				len(in.Items) == 1 &&
				in.Items[0].ProductID == productID &&
				in.Items[0].Quantity == 2 &&
				in.DeliveryDate.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) &&
				in.DeliveryArea == "north"
		})).
		Return(order, nil)

	rec := doRequest(fx.e, http.MethodPost, "/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)

	var got entity.Order
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, order.ID, got.ID)
	assert.True(t, order.TotalPrice.Equal(got.TotalPrice))
}

func TestOrderHandler_PlaceOrder_RejectsInvalidInput(t *testing.T) {
	branchID := uuid.NewString()
	productID := uuid.NewString()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "no products",
			body: `{"branchId":"` + branchID + `","products":[],"deliveryDate":"2024-05-01"}`,
		},
		{
			name: "malformed branch id",
			body: `{"branchId":"branch-1","products":[{"productId":"` + productID + `","quantity":1}],"deliveryDate":"2024-05-01"}`,
		},
		{
			name: "negative quantity",
			body: `{"branchId":"` + branchID + `","products":[{"productId":"` + productID + `","quantity":-1}],"deliveryDate":"2024-05-01"}`,
		},
		{
			name: "malformed delivery date",
			body: `{"branchId":"` + branchID + `","products":[{"productId":"` + productID + `","quantity":1}],"deliveryDate":"01/05/2024"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderHandler(t)

			rec := doRequest(fx.e, http.MethodPost, "/orders", tt.body)

			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}
}

func TestOrderHandler_PlaceOrder_MalformedJSON(t *testing.T) {
	fx := createTestOrderHandler(t)

	rec := doRequest(fx.e, http.MethodPost, "/orders", `{"branchId":`)

	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
}

func TestOrderHandler_PlaceOrder_DomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unknown product", domainerrors.ErrProductNotFound.WithDetails("p-9"), http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{"unknown branch", domainerrors.ErrBranchNotFound, http.StatusNotFound, "BRANCH_NOT_FOUND"},
		{"delivery area", domainerrors.ErrDeliveryAreaViolation.WithDetails("south"), http.StatusBadRequest, "SUPPLIER_DELIVERY_AREA_VIOLATION"},
		{"store failure", errors.Wrap(domainerrors.ErrPersistenceFailed, "insert"), http.StatusInternalServerError, "PERSISTENCE_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderHandler(t)
			body := `{"branchId":"` + uuid.NewString() + `","products":[{"productId":"` + uuid.NewString() +
				`","quantity":1}],"deliveryDate":"2024-05-01T10:00:00Z"}`

			fx.orderUC.EXPECT().PlaceOrder(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(fx.e, http.MethodPost, "/orders", body)

			env := requireErrorCode(t, rec, tt.status, tt.code)
			if tt.status >= http.StatusInternalServerError {
				assert.Nil(t, env.Error.Details)
			}
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestOrderHandler(t)
		orderID := uuid.New()

		fx.orderViewUC.EXPECT().GetOrder(mock.Anything, orderID).
			Return(&entity.OrderView{ID: orderID, Products: []entity.OrderLine{}}, nil)

		rec := doRequest(fx.e, http.MethodGet, "/orders/"+orderID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		var view entity.OrderView
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
		assert.Equal(t, orderID, view.ID)
	})

	t.Run("unknown order yields null data", func(t *testing.T) {
		fx := createTestOrderHandler(t)
		orderID := uuid.New()

		fx.orderViewUC.EXPECT().GetOrder(mock.Anything, orderID).Return(nil, nil)

		rec := doRequest(fx.e, http.MethodGet, "/orders/"+orderID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", string(decodeEnvelope(t, rec).Data))
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestOrderHandler(t)

		rec := doRequest(fx.e, http.MethodGet, "/orders/not-a-uuid", "")

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_ID")
	})
}

func TestOrderHandler_ListOrders_AggregationFailure(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderViewUC.EXPECT().GetAllOrders(mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrAggregationFailed, "orders: connection reset"))

	rec := doRequest(fx.e, http.MethodGet, "/orders", "")

	env := requireErrorCode(t, rec, http.StatusInternalServerError, "AGGREGATION_FAILED")
	assert.Nil(t, env.Error.Details)
}

func TestOrderHandler_ListOrders_UnknownErrorIsHidden(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderViewUC.EXPECT().GetAllOrders(mock.Anything).Return(nil, errors.New("boom"))

	rec := doRequest(fx.e, http.MethodGet, "/orders", "")

	env := requireErrorCode(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
	assert.NotContains(t, env.Error.Message, "boom")
}

func TestOrderHandler_ListOrdersGroupedBySupplier(t *testing.T) {
	fx := createTestOrderHandler(t)
	supplierID := uuid.New()

	fx.orderViewUC.EXPECT().GetOrdersGroupedBySupplier(mock.Anything).Return([]*entity.SupplierOrderGroup{
		{SupplierID: supplierID, Orders: []entity.OrderSummary{{ID: uuid.New()}}, TotalSales: decimal.RequireFromString("36.5")},
	}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/orders/grouped-by-supplier", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var groups []entity.SupplierOrderGroup
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, supplierID, groups[0].SupplierID)
	assert.Equal(t, "36.5", groups[0].TotalSales.String())
}

func TestOrderHandler_ListSupplierAndBranchOrders(t *testing.T) {
	fx := createTestOrderHandler(t)
	supplierID := uuid.New()
	branchID := uuid.New()

	fx.orderViewUC.EXPECT().GetOrdersBySupplier(mock.Anything, supplierID).Return([]*entity.OrderView{}, nil)
	fx.orderViewUC.EXPECT().GetOrdersForBranch(mock.Anything, branchID).Return([]*entity.OrderView{}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/suppliers/"+supplierID.String()+"/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(decodeEnvelope(t, rec).Data))

	rec = doRequest(fx.e, http.MethodGet, "/branches/"+branchID.String()+"/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(decodeEnvelope(t, rec).Data))

	rec = doRequest(fx.e, http.MethodGet, "/branches/nope/orders", "")
	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_ID")
}

func TestOrderHandler_GetSupplierOrderSlip(t *testing.T) {
	supplierID := uuid.New()
	orderID := uuid.New()
	target := "/suppliers/" + supplierID.String() + "/orders/" + orderID.String() + "/slip"

	t.Run("renders png", func(t *testing.T) {
		fx := createTestOrderHandler(t)
		png := []byte{0x89, 'P', 'N', 'G'}

		fx.orderViewUC.EXPECT().GetSupplierOrder(mock.Anything, supplierID, orderID).
			Return(&entity.SupplierOrderView{ID: orderID, SupplierID: supplierID}, nil)
		fx.qrService.EXPECT().
			GenerateDeliverySlipQR(service.DeliverySlip{OrderID: orderID, SupplierID: supplierID}).
			Return(png, nil)

		rec := doRequest(fx.e, http.MethodGet, target, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("no lines for supplier", func(t *testing.T) {
		fx := createTestOrderHandler(t)

		fx.orderViewUC.EXPECT().GetSupplierOrder(mock.Anything, supplierID, orderID).Return(nil, nil)

		rec := doRequest(fx.e, http.MethodGet, target, "")

		requireErrorCode(t, rec, http.StatusNotFound, "ORDER_NOT_FOUND")
	})
}

func TestOrderHandler_GetSupplierOrder_PassesContext(t *testing.T) {
	fx := createTestOrderHandler(t)
	supplierID := uuid.New()
	orderID := uuid.New()

	fx.orderViewUC.EXPECT().
		GetSupplierOrder(mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil }), supplierID, orderID).
		Return(nil, nil)

	rec := doRequest(fx.e, http.MethodGet, "/suppliers/"+supplierID.String()+"/orders/"+orderID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(decodeEnvelope(t, rec).Data))
}
