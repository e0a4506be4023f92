package postgres

import (
	"context"

	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/repository"
	"supplyhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// branchRepository implements the domain.BranchRepository interface on top of the users table.
type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository is the constructor for branchRepository.
func NewBranchRepository(db *gorm.DB) repository.BranchRepository {
	return &branchRepository{db: db}
}

func (repo *branchRepository) branches(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("role = ?", entity.RoleBranch.String())
}

func (repo *branchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	var userM model.UserModel
	if err := repo.branches(ctx).Where("id = ?", id).Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBranchNotFound
		}

		return nil, errors.Wrap(err, "failed to find branch by ID")
	}

	return toBranchDomain(&userM), nil
}

func (repo *branchRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Branch, error) {
	branches := make(map[uuid.UUID]*entity.Branch, len(ids))
	if len(ids) == 0 {
		return branches, nil
	}

	var userModels []*model.UserModel
	if err := repo.branches(ctx).Where("id IN ?", uniqueIDs(ids)).Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find branches by IDs")
	}

	for _, userM := range userModels {
		branches[userM.ID] = toBranchDomain(userM)
	}

	return branches, nil
}

func (repo *branchRepository) FindAll(ctx context.Context) ([]*entity.Branch, error) {
	var userModels []*model.UserModel
	if err := repo.branches(ctx).Order("first_name ASC").Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list branches")
	}

	branches := make([]*entity.Branch, 0, len(userModels))
	for _, userM := range userModels {
		branches = append(branches, toBranchDomain(userM))
	}

	return branches, nil
}

func (repo *branchRepository) Create(ctx context.Context, branch *entity.Branch) error {
	userM := fromBranchDomain(branch)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrBranchEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create branch")
	}

	branch.Role = entity.RoleBranch
	branch.CreatedAt = userM.CreatedAt
	branch.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *branchRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.branches(ctx).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count branches")
	}

	return count, nil
}
