package entity

import "github.com/shopspring/decimal"

// DashboardStats is the summary shown on the admin dashboard.
type DashboardStats struct {
	SupplierCount int64           `json:"supplierCount"`
	BranchCount   int64           `json:"branchCount"`
	OrderCount    int64           `json:"orderCount"`
	ProductCount  int64           `json:"productCount"`
	TotalSales    decimal.Decimal `json:"totalSales"`
}
