package dto

import "github.com/shopspring/decimal"

// MonthlyRevenueDTO ingresos de un mes.
type MonthlyRevenueDTO struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DashboardStatsResponse acumulados del dashboard más la serie mensual.
// Growth es el crecimiento porcentual del último mes frente al anterior.
type DashboardStatsResponse struct {
	TotalOrders    int                 `json:"total_orders"`
	TotalRevenue   decimal.Decimal     `json:"total_revenue"`
	TotalCustomers int                 `json:"total_customers"`
	Growth         string              `json:"growth"`
	Monthly        []MonthlyRevenueDTO `json:"monthly"`
}

// TopBrandDTO marca con su stock acumulado.
type TopBrandDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TopProductDTO producto más vendido.
type TopProductDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CoverImage string          `json:"cover_image"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	Sold       int             `json:"sold"`
}
