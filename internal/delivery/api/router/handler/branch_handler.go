package handler

import (
	"log/slog"
	"net/http"

	"supplyhub/internal/delivery/api/response"
	"supplyhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BranchHandlerParams holds dependencies for BranchHandler, injected by Fx.
type BranchHandlerParams struct {
	fx.In

	BranchUC usecase.BranchUsecase
	Logger   *slog.Logger
}

// BranchHandler holds dependencies for branch account administration
type BranchHandler struct {
	branchUC usecase.BranchUsecase
	logger   *slog.Logger
}

// NewBranchHandler is the constructor for BranchHandler
func NewBranchHandler(params BranchHandlerParams) *BranchHandler {
	return &BranchHandler{
		branchUC: params.BranchUC,
		logger:   params.Logger,
	}
}

// CreateBranchRequest represents the request body for registering a branch
type CreateBranchRequest struct {
	FirstName     string         `json:"firstName" validate:"required,max=128"`
	LastName      string         `json:"lastName" validate:"max=128"`
	Email         string         `json:"email" validate:"required,email"`
	Password      string         `json:"password" validate:"required,min=8,max=72"`
	PaymentMethod string         `json:"paymentMethod" validate:"max=64"`
	Address       AddressRequest `json:"address"`
}

// CreateBranch handles branch registration
func (h *BranchHandler) CreateBranch(c echo.Context) error {
	var req CreateBranchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branch input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	branch, err := h.branchUC.CreateBranch(c.Request().Context(), &usecase.CreateBranchInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Password:      req.Password,
		PaymentMethod: req.PaymentMethod,
		Address:       req.Address.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, branch)
}

// ListBranches handles listing all branch accounts
func (h *BranchHandler) ListBranches(c echo.Context) error {
	branches, err := h.branchUC.ListBranches(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, branches)
}
