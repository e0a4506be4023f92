package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "supplyhub/internal/delivery/context"
	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/repository"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// supplierService implements the SupplierUsecase interface.
type supplierService struct {
	txManager    repository.TransactionManager
	supplierRepo repository.SupplierRepository
	holidayRepo  repository.HolidayRepository
	logger       *slog.Logger
}

// SupplierServiceParams holds dependencies for SupplierService, injected by Fx.
type SupplierServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SupplierRepo repository.SupplierRepository
	HolidayRepo  repository.HolidayRepository
	Logger       *slog.Logger
}

// NewSupplierService is the constructor for supplierService.
func NewSupplierService(params SupplierServiceParams) usecase.SupplierUsecase {
	return &supplierService{
		txManager:    params.TxManager,
		supplierRepo: params.SupplierRepo,
		holidayRepo:  params.HolidayRepo,
		logger:       params.Logger,
	}
}

func (srv *supplierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSupplier registers the supplier together with its holiday record in one transaction.
func (srv *supplierService) CreateSupplier(ctx context.Context, input *usecase.CreateSupplierInput) (*entity.Supplier, error) {
	now := time.Now().UTC()
	holiday := &entity.Holiday{
		ID:        uuid.New(),
		Dates:     normalizeDates(input.Holidays),
		CreatedAt: now,
		UpdatedAt: now,
	}
	supplier := &entity.Supplier{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(input.Name),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:         input.Phone,
		Icon:          input.Icon,
		Address:       input.Address,
		DeliveryAreas: normalizeAreas(input.DeliveryAreas),
		HolidayID:     &holiday.ID,
		Status:        entity.SupplierStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	holiday.SupplierID = supplier.ID

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewSupplierRepository().Create(ctx, supplier); err != nil {
			return err
		}

		return factory.NewHolidayRepository().Upsert(ctx, holiday)
	})
	if err != nil {
		if errors.Is(err, repository.ErrSupplierEmailTaken) {
			srv.log(ctx).Warn("Supplier email already registered", slog.String("email", supplier.Email))

			return nil, domainerrors.ErrSupplierAlreadyExists
		}
		srv.log(ctx).Error("Failed to create supplier", slog.String("email", supplier.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute supplier creation transaction")
	}

	srv.log(ctx).Info("Supplier created", slog.String("supplierID", supplier.ID.String()))

	return supplier, nil
}

// ListSuppliers returns every supplier with its holiday dates.
func (srv *supplierService) ListSuppliers(ctx context.Context) ([]*entity.SupplierWithHolidays, error) {
	suppliers, err := srv.supplierRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	ids := make([]uuid.UUID, len(suppliers))
	for i, supplier := range suppliers {
		ids[i] = supplier.ID
	}

	holidays := map[uuid.UUID]*entity.Holiday{}
	if len(ids) > 0 {
		holidays, err = srv.holidayRepo.FindBySuppliers(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list supplier holidays")
		}
	}

	result := make([]*entity.SupplierWithHolidays, 0, len(suppliers))
	for _, supplier := range suppliers {
		row := &entity.SupplierWithHolidays{Supplier: *supplier, Holidays: []time.Time{}}
		if holiday, ok := holidays[supplier.ID]; ok {
			row.Holidays = holiday.Dates
		}
		result = append(result, row)
	}

	return result, nil
}

// GetSupplier returns a single supplier.
func (srv *supplierService) GetSupplier(ctx context.Context, supplierID uuid.UUID) (*entity.Supplier, error) {
	supplier, err := srv.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound.WithDetails(supplierID.String())
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	return supplier, nil
}

// UpdateSupplier applies the given changes. A non-nil DeliveryAreas replaces the list.
func (srv *supplierService) UpdateSupplier(ctx context.Context, supplierID uuid.UUID, input *usecase.UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := srv.GetSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		supplier.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		supplier.Phone = *input.Phone
	}
	if input.Icon != nil {
		supplier.Icon = *input.Icon
	}
	if input.Address != nil {
		supplier.Address = *input.Address
	}
	if input.DeliveryAreas != nil {
		supplier.DeliveryAreas = normalizeAreas(input.DeliveryAreas)
	}
	if input.Status != nil {
		if *input.Status != entity.SupplierStatusActive && *input.Status != entity.SupplierStatusInactive {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown supplier status " + string(*input.Status))
		}
		supplier.Status = *input.Status
	}
	supplier.UpdatedAt = time.Now().UTC()

	if err := srv.supplierRepo.Update(ctx, supplier); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound.WithDetails(supplierID.String())
		}

		return nil, errors.Wrap(err, "failed to update supplier")
	}

	return supplier, nil
}

// SetHolidays replaces the supplier's holiday dates. Dates are informational and
// never consulted when orders are placed.
func (srv *supplierService) SetHolidays(ctx context.Context, supplierID uuid.UUID, dates []time.Time) (*entity.Holiday, error) {
	supplier, err := srv.GetSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	holiday := &entity.Holiday{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Dates:      normalizeDates(dates),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewHolidayRepository().Upsert(ctx, holiday); err != nil {
			return err
		}
		if supplier.HolidayID != nil && *supplier.HolidayID == holiday.ID {
			return nil
		}
		supplier.HolidayID = &holiday.ID
		supplier.UpdatedAt = now

		return factory.NewSupplierRepository().Update(ctx, supplier)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to set supplier holidays", slog.String("supplierID", supplierID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute holiday transaction")
	}

	return holiday, nil
}

// SetIntegration stores the supplier's opaque payment integration and links it.
func (srv *supplierService) SetIntegration(ctx context.Context, supplierID uuid.UUID, input *usecase.SetIntegrationInput) (*entity.Integration, error) {
	supplier, err := srv.GetSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	integration := &entity.Integration{
		ID:          uuid.New(),
		SupplierID:  supplierID,
		CardPayment: input.CardPayment,
		Credentials: entity.IntegrationCredentials{
			APIURL:    input.APIURL,
			APIKey:    input.APIKey,
			APISecret: input.APISecret,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewIntegrationRepository().Upsert(ctx, integration); err != nil {
			return err
		}
		if supplier.IntegrationID != nil && *supplier.IntegrationID == integration.ID {
			return nil
		}
		supplier.IntegrationID = &integration.ID
		supplier.UpdatedAt = now

		return factory.NewSupplierRepository().Update(ctx, supplier)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to set supplier integration", slog.String("supplierID", supplierID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute integration transaction")
	}

	return integration, nil
}

// normalizeDates truncates to UTC calendar days, sorts and removes duplicates.
func normalizeDates(dates []time.Time) []time.Time {
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		d = d.UTC()
		days = append(days, time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC))
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	return slices.CompactFunc(days, func(a, b time.Time) bool { return a.Equal(b) })
}

// normalizeAreas trims entries and drops blanks and case-insensitive duplicates.
func normalizeAreas(areas []string) []string {
	result := make([]string, 0, len(areas))
	seen := make(map[string]struct{}, len(areas))
	for _, area := range areas {
		area = strings.TrimSpace(area)
		key := strings.ToLower(area)
		if area == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, area)
	}

	return result
}
