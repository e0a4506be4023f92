package handler

import (
	"log/slog"
	"net/http"
	"time"

	"supplyhub/internal/delivery/api/response"
	"supplyhub/internal/domain/entity"
	"supplyhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SupplierHandlerParams holds dependencies for SupplierHandler, injected by Fx.
type SupplierHandlerParams struct {
	fx.In

	SupplierUC usecase.SupplierUsecase
	Logger     *slog.Logger
}

// SupplierHandler holds dependencies for supplier administration
type SupplierHandler struct {
	supplierUC usecase.SupplierUsecase
	logger     *slog.Logger
}

// NewSupplierHandler is the constructor for SupplierHandler
func NewSupplierHandler(params SupplierHandlerParams) *SupplierHandler {
	return &SupplierHandler{
		supplierUC: params.SupplierUC,
		logger:     params.Logger,
	}
}

// AddressRequest is the postal address shared by supplier and branch requests
type AddressRequest struct {
	Street     string `json:"street" validate:"max=255"`
	City       string `json:"city" validate:"max=128"`
	PostalCode string `json:"postalCode" validate:"max=32"`
	Country    string `json:"country" validate:"max=64"`
}

func (r AddressRequest) toEntity() entity.Address {
	return entity.Address{
		Street:     r.Street,
		City:       r.City,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// CreateSupplierRequest represents the request body for registering a supplier
type CreateSupplierRequest struct {
	Name          string         `json:"name" validate:"required,max=255"`
	Email         string         `json:"email" validate:"required,email"`
	Phone         string         `json:"phone" validate:"max=64"`
	Icon          string         `json:"icon" validate:"max=1024"`
	Address       AddressRequest `json:"address"`
	DeliveryAreas []string       `json:"deliveryAreas" validate:"dive,max=128"`
	Holidays      []string       `json:"holidays"`
}

// UpdateSupplierRequest represents the request body for changing a supplier. Omitted fields are kept.
type UpdateSupplierRequest struct {
	Name          *string         `json:"name" validate:"omitempty,min=1,max=255"`
	Phone         *string         `json:"phone" validate:"omitempty,max=64"`
	Icon          *string         `json:"icon" validate:"omitempty,max=1024"`
	Address       *AddressRequest `json:"address"`
	DeliveryAreas []string        `json:"deliveryAreas" validate:"omitempty,dive,max=128"`
	Status        *string         `json:"status" validate:"omitempty,oneof=active inactive"`
}

// SetHolidaysRequest represents the request body for replacing a supplier's holiday dates
type SetHolidaysRequest struct {
	Dates []string `json:"dates"`
}

// SetIntegrationRequest represents the request body for a supplier's payment integration
type SetIntegrationRequest struct {
	CardPayment bool   `json:"cardPayment"`
	APIURL      string `json:"apiUrl" validate:"omitempty,url"`
	APIKey      string `json:"apiKey" validate:"max=512"`
	APISecret   string `json:"apiSecret" validate:"max=512"`
}

// CreateSupplier handles supplier registration
func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	var req CreateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	holidays, err := parseDates(req.Holidays)
	if err != nil {
		return response.ValidationFailed(c, err)
	}

	supplier, err := h.supplierUC.CreateSupplier(c.Request().Context(), &usecase.CreateSupplierInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Icon:          req.Icon,
		Address:       req.Address.toEntity(),
		DeliveryAreas: req.DeliveryAreas,
		Holidays:      holidays,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, supplier)
}

// ListSuppliers handles listing suppliers with their holiday dates
func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	suppliers, err := h.supplierUC.ListSuppliers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suppliers)
}

// GetSupplier handles fetching a single supplier
func (h *SupplierHandler) GetSupplier(c echo.Context) error {
	supplierID, ok := uuidParam(c, "supplierId")
	if !ok {
		return response.InvalidID(c, "supplier ID")
	}

	supplier, err := h.supplierUC.GetSupplier(c.Request().Context(), supplierID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, supplier)
}

// UpdateSupplier handles partial supplier updates
func (h *SupplierHandler) UpdateSupplier(c echo.Context) error {
	supplierID, ok := uuidParam(c, "supplierId")
	if !ok {
		return response.InvalidID(c, "supplier ID")
	}

	var req UpdateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	input := &usecase.UpdateSupplierInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Icon:          req.Icon,
		DeliveryAreas: req.DeliveryAreas,
	}
	if req.Address != nil {
		address := req.Address.toEntity()
		input.Address = &address
	}
	if req.Status != nil {
		status := entity.SupplierStatus(*req.Status)
		input.Status = &status
	}

	supplier, err := h.supplierUC.UpdateSupplier(c.Request().Context(), supplierID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, supplier)
}

// SetHolidays handles replacing a supplier's holiday dates
func (h *SupplierHandler) SetHolidays(c echo.Context) error {
	supplierID, ok := uuidParam(c, "supplierId")
	if !ok {
		return response.InvalidID(c, "supplier ID")
	}

	var req SetHolidaysRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid holidays input")
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		return response.ValidationFailed(c, err)
	}

	holiday, err := h.supplierUC.SetHolidays(c.Request().Context(), supplierID, dates)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, holiday)
}

// SetIntegration handles creating or replacing a supplier's payment integration
func (h *SupplierHandler) SetIntegration(c echo.Context) error {
	supplierID, ok := uuidParam(c, "supplierId")
	if !ok {
		return response.InvalidID(c, "supplier ID")
	}

	var req SetIntegrationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid integration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	integration, err := h.supplierUC.SetIntegration(c.Request().Context(), supplierID, &usecase.SetIntegrationInput{
		CardPayment: req.CardPayment,
		APIURL:      req.APIURL,
		APIKey:      req.APIKey,
		APISecret:   req.APISecret,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, integration)
}

func parseDates(values []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(values))
	for _, v := range values {
		d, err := parseDate(v)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, nil
}
