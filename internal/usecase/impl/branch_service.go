package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "supplyhub/internal/delivery/context"
	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/repository"
	"supplyhub/internal/domain/service"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const branchStatusActive = "active"

// branchService implements the BranchUsecase interface.
type branchService struct {
	branchRepo repository.BranchRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// BranchServiceParams holds dependencies for BranchService, injected by Fx.
type BranchServiceParams struct {
	fx.In

	BranchRepo repository.BranchRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewBranchService is the constructor for branchService.
func NewBranchService(params BranchServiceParams) usecase.BranchUsecase {
	return &branchService{
		branchRepo: params.BranchRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (srv *branchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBranch registers a branch account with a hashed initial password.
func (srv *branchService) CreateBranch(ctx context.Context, input *usecase.CreateBranchInput) (*entity.Branch, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash branch password", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	now := time.Now().UTC()
	branch := &entity.Branch{
		ID:            uuid.New(),
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		Email:         email,
		PasswordHash:  hashedPassword,
		Role:          entity.RoleBranch,
		Status:        branchStatusActive,
		PaymentMethod: input.PaymentMethod,
		Address:       input.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.branchRepo.Create(ctx, branch); err != nil {
		if errors.Is(err, repository.ErrBranchEmailTaken) {
			srv.log(ctx).Warn("Branch email already registered", slog.String("email", email))

			return nil, domainerrors.ErrBranchAlreadyExists
		}
		srv.log(ctx).Error("Failed to create branch", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create branch")
	}

	srv.log(ctx).Info("Branch created", slog.String("branchID", branch.ID.String()))

	return branch, nil
}

// ListBranches returns every branch account.
func (srv *branchService) ListBranches(ctx context.Context) ([]*entity.Branch, error) {
	branches, err := srv.branchRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list branches")
	}

	return branches, nil
}
