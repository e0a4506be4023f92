package postgres

import (
	"context"
	"time"

	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/repository"
	"supplyhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// holidayRepository implements the domain.HolidayRepository interface.
type holidayRepository struct {
	db *gorm.DB
}

// NewHolidayRepository is the constructor for holidayRepository.
func NewHolidayRepository(db *gorm.DB) repository.HolidayRepository {
	return &holidayRepository{db: db}
}

func (repo *holidayRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) (*entity.Holiday, error) {
	var holidayM model.HolidayModel
	if err := repo.db.WithContext(ctx).Where("supplier_id = ?", supplierID).Take(&holidayM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHolidayNotFound
		}

		return nil, errors.Wrap(err, "failed to find holiday by supplier")
	}

	return toHolidayDomain(&holidayM), nil
}

func (repo *holidayRepository) FindBySuppliers(ctx context.Context, supplierIDs []uuid.UUID) (map[uuid.UUID]*entity.Holiday, error) {
	holidays := make(map[uuid.UUID]*entity.Holiday, len(supplierIDs))
	if len(supplierIDs) == 0 {
		return holidays, nil
	}

	var holidayModels []*model.HolidayModel
	if err := repo.db.WithContext(ctx).Where("supplier_id IN ?", uniqueIDs(supplierIDs)).Find(&holidayModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find holidays by suppliers")
	}

	for _, holidayM := range holidayModels {
		holidays[holidayM.SupplierID] = toHolidayDomain(holidayM)
	}

	return holidays, nil
}

// Upsert keeps a single holiday row per supplier. An existing row keeps its ID.
func (repo *holidayRepository) Upsert(ctx context.Context, holiday *entity.Holiday) error {
	db := repo.db.WithContext(ctx)

	dates := make(datatypes.JSONSlice[time.Time], len(holiday.Dates))
	copy(dates, holiday.Dates)

	var existing model.HolidayModel
	err := db.Where("supplier_id = ?", holiday.SupplierID).Take(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		holidayM := &model.HolidayModel{
			ID:         holiday.ID,
			SupplierID: holiday.SupplierID,
			Dates:      dates,
			CreatedAt:  holiday.CreatedAt,
			UpdatedAt:  holiday.UpdatedAt,
		}
		if err := db.Create(holidayM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create holiday")
		}
		holiday.CreatedAt = holidayM.CreatedAt
		holiday.UpdatedAt = holidayM.UpdatedAt

		return nil
	case err != nil:
		return errors.Wrap(err, "failed to find holiday by supplier")
	}

	existing.Dates = dates
	if err := db.Save(&existing).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update holiday")
	}

	holiday.ID = existing.ID
	holiday.CreatedAt = existing.CreatedAt
	holiday.UpdatedAt = existing.UpdatedAt

	return nil
}

// integrationRepository implements the domain.IntegrationRepository interface.
type integrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository is the constructor for integrationRepository.
func NewIntegrationRepository(db *gorm.DB) repository.IntegrationRepository {
	return &integrationRepository{db: db}
}

func (repo *integrationRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) (*entity.Integration, error) {
	var integrationM model.IntegrationModel
	if err := repo.db.WithContext(ctx).Where("supplier_id = ?", supplierID).Take(&integrationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIntegrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find integration by supplier")
	}

	return toIntegrationDomain(&integrationM), nil
}

// Upsert keeps a single integration row per supplier. An existing row keeps its ID.
func (repo *integrationRepository) Upsert(ctx context.Context, integration *entity.Integration) error {
	db := repo.db.WithContext(ctx)

	integrationM := model.IntegrationModel{
		ID:          integration.ID,
		SupplierID:  integration.SupplierID,
		CardPayment: integration.CardPayment,
		APIURL:      integration.Credentials.APIURL,
		APIKey:      integration.Credentials.APIKey,
		APISecret:   integration.Credentials.APISecret,
		CreatedAt:   integration.CreatedAt,
		UpdatedAt:   integration.UpdatedAt,
	}

	var existing model.IntegrationModel
	err := db.Where("supplier_id = ?", integration.SupplierID).Take(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := db.Create(&integrationM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create integration")
		}
	case err != nil:
		return errors.Wrap(err, "failed to find integration by supplier")
	default:
		integrationM.ID = existing.ID
		integrationM.CreatedAt = existing.CreatedAt
		if err := db.Save(&integrationM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update integration")
		}
	}

	integration.ID = integrationM.ID
	integration.CreatedAt = integrationM.CreatedAt
	integration.UpdatedAt = integrationM.UpdatedAt

	return nil
}
