package model

// All lists every persisted model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&SupplierModel{},
		&CategoryModel{},
		&ProductModel{},
		&UserModel{},
		&HolidayModel{},
		&IntegrationModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
