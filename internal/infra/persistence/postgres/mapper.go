package postgres

import (
	"time"

	"supplyhub/internal/domain/entity"
	"supplyhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// --- Mapper Functions ---

func toAddressDomain(data model.AddressColumns) entity.Address {
	return entity.Address{
		Street:     data.Street,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
	}
}

func fromAddressDomain(data entity.Address) model.AddressColumns {
	return model.AddressColumns{
		Street:     data.Street,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
	}
}

func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	if data == nil {
		return nil
	}

	areas := make([]string, len(data.DeliveryAreas))
	copy(areas, data.DeliveryAreas)

	return &entity.Supplier{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		Icon:          data.Icon,
		Address:       toAddressDomain(data.Address),
		DeliveryAreas: areas,
		HolidayID:     data.HolidayID,
		IntegrationID: data.IntegrationID,
		Status:        entity.SupplierStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromSupplierDomain(data *entity.Supplier) *model.SupplierModel {
	if data == nil {
		return nil
	}

	areas := make(datatypes.JSONSlice[string], len(data.DeliveryAreas))
	copy(areas, data.DeliveryAreas)

	return &model.SupplierModel{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		Icon:          data.Icon,
		Address:       fromAddressDomain(data.Address),
		DeliveryAreas: areas,
		HolidayID:     data.HolidayID,
		IntegrationID: data.IntegrationID,
		Status:        string(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		SupplierID:  data.SupplierID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		SKU:         data.SKU,
		VAT:         data.VAT,
		Image:       data.Image,
		Price:       data.Price,
		Stock:       data.Stock,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		SupplierID:  data.SupplierID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		SKU:         data.SKU,
		VAT:         data.VAT,
		Image:       data.Image,
		Price:       data.Price,
		Stock:       data.Stock,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Icon:        data.Icon,
		CreatedAt:   data.CreatedAt,
	}
}

func toBranchDomain(data *model.UserModel) *entity.Branch {
	if data == nil {
		return nil
	}

	return &entity.Branch{
		ID:            data.ID,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Email:         data.Email,
		PasswordHash:  data.PasswordHash,
		Role:          entity.Role(data.Role),
		Status:        data.Status,
		PaymentMethod: data.PaymentMethod,
		Address:       toAddressDomain(data.Address),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromBranchDomain(data *entity.Branch) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Email:         data.Email,
		PasswordHash:  data.PasswordHash,
		Role:          entity.RoleBranch.String(),
		Status:        data.Status,
		PaymentMethod: data.PaymentMethod,
		Address:       fromAddressDomain(data.Address),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, len(data.Items))
	for i, item := range data.Items {
		items[i] = entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return &entity.Order{
		ID:           data.ID,
		BranchID:     data.BranchID,
		SupplierID:   data.SupplierID,
		Items:        items,
		TotalPrice:   data.TotalPrice,
		DeliveryDate: data.DeliveryDate.UTC(),
		DeliveryArea: data.DeliveryArea,
		Status:       entity.OrderStatus(data.Status),
		CreatedAt:    data.CreatedAt.UTC(),
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, len(data.Items))
	for i, item := range data.Items {
		items[i] = model.OrderItemModel{
			OrderID:   data.ID,
			Position:  i,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return &model.OrderModel{
		ID:           data.ID,
		BranchID:     data.BranchID,
		SupplierID:   data.SupplierID,
		TotalPrice:   data.TotalPrice,
		DeliveryDate: data.DeliveryDate,
		DeliveryArea: data.DeliveryArea,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		Items:        items,
	}
}

func toHolidayDomain(data *model.HolidayModel) *entity.Holiday {
	if data == nil {
		return nil
	}

	dates := make([]time.Time, len(data.Dates))
	copy(dates, data.Dates)

	return &entity.Holiday{
		ID:         data.ID,
		SupplierID: data.SupplierID,
		Dates:      dates,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toIntegrationDomain(data *model.IntegrationModel) *entity.Integration {
	if data == nil {
		return nil
	}

	return &entity.Integration{
		ID:          data.ID,
		SupplierID:  data.SupplierID,
		CardPayment: data.CardPayment,
		Credentials: entity.IntegrationCredentials{
			APIURL:    data.APIURL,
			APIKey:    data.APIKey,
			APISecret: data.APISecret,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// uniqueIDs removes duplicates while keeping the first-seen order.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
