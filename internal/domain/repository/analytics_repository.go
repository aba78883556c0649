package repository

import "github.com/shopspring/decimal"

// DashboardTotals acumulados globales del dashboard.
type DashboardTotals struct {
	TotalOrders    int
	TotalRevenue   decimal.Decimal
	TotalCustomers int
}

// MonthlyRevenue ingresos de un mes (YYYY-MM).
type MonthlyRevenue struct {
	Month string
	Total decimal.Decimal
}

// BrandStock stock acumulado por marca.
type BrandStock struct {
	Name  string
	Value int
}

// TopProduct producto más vendido según las líneas de pedido.
type TopProduct struct {
	ID         string
	Name       string
	CoverImage string
	SalePrice  decimal.Decimal
	Sold       int
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	Totals() (*DashboardTotals, error)
	RevenueByMonth() ([]*MonthlyRevenue, error)
	TopBrands(limit int) ([]*BrandStock, error)
	TopProducts(limit int) ([]*TopProduct, error)
}
