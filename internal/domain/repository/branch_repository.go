package repository

import (
	"context"
	"errors"

	"supplyhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrBranchNotFound is returned when no user with role branch matches.
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchEmailTaken is returned when another account already uses the email.
	ErrBranchEmailTaken = errors.New("branch email already exists")
)

// BranchRepository reads and writes user accounts with role "branch".
type BranchRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)

	// FindByIDs retrieves the branches that exist among ids, keyed by ID.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Branch, error)

	FindAll(ctx context.Context) ([]*entity.Branch, error)
	Create(ctx context.Context, branch *entity.Branch) error
	Count(ctx context.Context) (int64, error)
}
