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

// supplierRepository implements the domain.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository is the constructor for supplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

func (repo *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.SupplierModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&supplierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by ID")
	}

	return toSupplierDomain(&supplierM), nil
}

func (repo *supplierRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Supplier, error) {
	suppliers := make(map[uuid.UUID]*entity.Supplier, len(ids))
	if len(ids) == 0 {
		return suppliers, nil
	}

	var supplierModels []*model.SupplierModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", uniqueIDs(ids)).Find(&supplierModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find suppliers by IDs")
	}

	for _, supplierM := range supplierModels {
		suppliers[supplierM.ID] = toSupplierDomain(supplierM)
	}

	return suppliers, nil
}

func (repo *supplierRepository) FindAll(ctx context.Context) ([]*entity.Supplier, error) {
	var supplierModels []*model.SupplierModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&supplierModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for _, supplierM := range supplierModels {
		suppliers = append(suppliers, toSupplierDomain(supplierM))
	}

	return suppliers, nil
}

func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Create(supplierM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSupplierEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier")
	}

	supplier.CreatedAt = supplierM.CreatedAt
	supplier.UpdatedAt = supplierM.UpdatedAt

	return nil
}

func (repo *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	result := repo.db.WithContext(ctx).Model(supplierM).Select("*").Omit("created_at").Updates(supplierM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrSupplierEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update supplier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	supplier.UpdatedAt = supplierM.UpdatedAt

	return nil
}

func (repo *supplierRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SupplierModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count suppliers")
	}

	return count, nil
}
