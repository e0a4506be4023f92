package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	mockUC "supplyhub/internal/mocks/usecase"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSupplierHandler(t *testing.T) (*echo.Echo, *mockUC.MockSupplierUsecase) {
	supplierUC := mockUC.NewMockSupplierUsecase(t)
	h := NewSupplierHandler(SupplierHandlerParams{SupplierUC: supplierUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/suppliers", h.CreateSupplier)
	e.GET("/suppliers", h.ListSuppliers)
	e.GET("/suppliers/:supplierId", h.GetSupplier)
	e.PUT("/suppliers/:supplierId", h.UpdateSupplier)
	e.PUT("/suppliers/:supplierId/holidays", h.SetHolidays)
	e.PUT("/suppliers/:supplierId/integration", h.SetIntegration)

	return e, supplierUC
}

func TestSupplierHandler_CreateSupplier(t *testing.T) {
	e, supplierUC := createTestSupplierHandler(t)
	created := &entity.Supplier{ID: uuid.New(), Name: "Fresh Farms", Email: "orders@freshfarms.test"}

	supplierUC.EXPECT().
		CreateSupplier(mock.Anything, mock.MatchedBy(func(in *usecase.CreateSupplierInput) bool {
			return in.Name == "Fresh Farms" &&
				in.Address.City == "Lyon" &&
				len(in.DeliveryAreas) == 2 &&
				len(in.Holidays) == 1 &&
				in.Holidays[0].Equal(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC))
		})).
		Return(created, nil)

	rec := doRequest(e, http.MethodPost, "/suppliers", `{
		"name": "Fresh Farms",
		"email": "orders@freshfarms.test",
		"address": {"city": "Lyon"},
		"deliveryAreas": ["north", "south"],
		"holidays": ["2024-12-25"]
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got entity.Supplier
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, created.ID, got.ID)
}

func TestSupplierHandler_CreateSupplier_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.test"}`},
		{"bad email", `{"name":"A","email":"not-an-email"}`},
		{"bad holiday", `{"name":"A","email":"a@b.test","holidays":["25/12/2024"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestSupplierHandler(t)

			rec := doRequest(e, http.MethodPost, "/suppliers", tt.body)

			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}
}

func TestSupplierHandler_CreateSupplier_Conflict(t *testing.T) {
	e, supplierUC := createTestSupplierHandler(t)

	supplierUC.EXPECT().CreateSupplier(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrSupplierAlreadyExists)

	rec := doRequest(e, http.MethodPost, "/suppliers", `{"name":"A","email":"a@b.test"}`)

	requireErrorCode(t, rec, http.StatusConflict, "SUPPLIER_ALREADY_EXISTS")
}

func TestSupplierHandler_UpdateSupplier(t *testing.T) {
	t.Run("maps optional fields", func(t *testing.T) {
		e, supplierUC := createTestSupplierHandler(t)
		supplierID := uuid.New()

		supplierUC.EXPECT().
			UpdateSupplier(mock.Anything, supplierID, mock.MatchedBy(func(in *usecase.UpdateSupplierInput) bool {
				return in.Name == nil &&
					in.Phone != nil && *in.Phone == "+33 1 00" &&
					in.Status != nil && *in.Status == entity.SupplierStatusInactive &&
					in.Address == nil
			})).
			Return(&entity.Supplier{ID: supplierID, Status: entity.SupplierStatusInactive}, nil)

		rec := doRequest(e, http.MethodPut, "/suppliers/"+supplierID.String(), `{"phone":"+33 1 00","status":"inactive"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("unknown status", func(t *testing.T) {
		e, _ := createTestSupplierHandler(t)

		rec := doRequest(e, http.MethodPut, "/suppliers/"+uuid.NewString(), `{"status":"paused"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("unknown supplier", func(t *testing.T) {
		e, supplierUC := createTestSupplierHandler(t)

		supplierUC.EXPECT().UpdateSupplier(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrSupplierNotFound)

		rec := doRequest(e, http.MethodPut, "/suppliers/"+uuid.NewString(), `{"name":"B"}`)

		requireErrorCode(t, rec, http.StatusNotFound, "SUPPLIER_NOT_FOUND")
	})
}

func TestSupplierHandler_SetHolidays(t *testing.T) {
	t.Run("parses dates", func(t *testing.T) {
		e, supplierUC := createTestSupplierHandler(t)
		supplierID := uuid.New()
		want := []time.Time{
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
		}

		supplierUC.EXPECT().SetHolidays(mock.Anything, supplierID, want).
			Return(&entity.Holiday{ID: uuid.New(), SupplierID: supplierID, Dates: want}, nil)

		rec := doRequest(e, http.MethodPut, "/suppliers/"+supplierID.String()+"/holidays",
			`{"dates":["2024-01-01","2024-12-25"]}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("malformed date", func(t *testing.T) {
		e, _ := createTestSupplierHandler(t)

		rec := doRequest(e, http.MethodPut, "/suppliers/"+uuid.NewString()+"/holidays", `{"dates":["tomorrow"]}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestSupplierHandler_SetIntegration_HidesCredentials(t *testing.T) {
	e, supplierUC := createTestSupplierHandler(t)
	supplierID := uuid.New()

	supplierUC.EXPECT().
		SetIntegration(mock.Anything, supplierID, &usecase.SetIntegrationInput{
			CardPayment: true,
			APIURL:      "https://pay.example.test",
			APIKey:      "key-1",
			APISecret:   "secret-1",
		}).
		Return(&entity.Integration{
			ID:          uuid.New(),
			SupplierID:  supplierID,
			CardPayment: true,
			Credentials: entity.IntegrationCredentials{APIURL: "https://pay.example.test", APIKey: "key-1", APISecret: "secret-1"},
		}, nil)

	rec := doRequest(e, http.MethodPut, "/suppliers/"+supplierID.String()+"/integration",
		`{"cardPayment":true,"apiUrl":"https://pay.example.test","apiKey":"key-1","apiSecret":"secret-1"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret-1")
	assert.NotContains(t, rec.Body.String(), "key-1")
}

func TestSupplierHandler_ListSuppliers(t *testing.T) {
	e, supplierUC := createTestSupplierHandler(t)

	supplierUC.EXPECT().ListSuppliers(mock.Anything).Return([]*entity.SupplierWithHolidays{
		{Supplier: entity.Supplier{ID: uuid.New(), Name: "A"}, Holidays: []time.Time{}},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/suppliers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"holidays":[]`)
}
