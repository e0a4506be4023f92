package handler

import (
	"net/http"
	"testing"

	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	mockUC "supplyhub/internal/mocks/usecase"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBranchHandler(t *testing.T) (*echo.Echo, *mockUC.MockBranchUsecase) {
	branchUC := mockUC.NewMockBranchUsecase(t)
	h := NewBranchHandler(BranchHandlerParams{BranchUC: branchUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/branches", h.CreateBranch)
	e.GET("/branches", h.ListBranches)

	return e, branchUC
}

func TestBranchHandler_CreateBranch_NeverReturnsPassword(t *testing.T) {
	e, branchUC := createTestBranchHandler(t)

	branchUC.EXPECT().
		CreateBranch(mock.Anything, mock.MatchedBy(func(in *usecase.CreateBranchInput) bool {
			return in.Email == "north@shop.test" && in.Password == "correct-horse"
		})).
		Return(&entity.Branch{
			ID:           uuid.New(),
			FirstName:    "North",
			Email:        "north@shop.test",
			PasswordHash: "$2a$10$hash",
			Role:         entity.RoleBranch,
		}, nil)

	rec := doRequest(e, http.MethodPost, "/branches",
		`{"firstName":"North","email":"north@shop.test","password":"correct-horse"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
	assert.NotContains(t, rec.Body.String(), "correct-horse")
}

func TestBranchHandler_CreateBranch_Errors(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		e, _ := createTestBranchHandler(t)

		rec := doRequest(e, http.MethodPost, "/branches", `{"firstName":"N","email":"n@shop.test","password":"short"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("duplicate email", func(t *testing.T) {
		e, branchUC := createTestBranchHandler(t)

		branchUC.EXPECT().CreateBranch(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrBranchAlreadyExists)

		rec := doRequest(e, http.MethodPost, "/branches", `{"firstName":"N","email":"n@shop.test","password":"long-enough"}`)

		requireErrorCode(t, rec, http.StatusConflict, "BRANCH_ALREADY_EXISTS")
	})
}

func TestDashboardHandler_GetStats(t *testing.T) {
	dashboardUC := mockUC.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(DashboardHandlerParams{DashboardUC: dashboardUC})
	e := newTestEcho()
	e.GET("/dashboard/stats", h.GetStats)
	e.GET("/health", HealthCheck)

	dashboardUC.EXPECT().GetStats(mock.Anything).Return(&entity.DashboardStats{
		SupplierCount: 2,
		BranchCount:   1,
		OrderCount:    3,
		ProductCount:  4,
		TotalSales:    decimal.RequireFromString("78.50"),
	}, nil)

	rec := doRequest(e, http.MethodGet, "/dashboard/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"supplierCount":2,"branchCount":1,"orderCount":3,"productCount":4,"totalSales":"78.5"}`,
		string(decodeEnvelope(t, rec).Data))

	rec = doRequest(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
