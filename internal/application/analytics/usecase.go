package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/chichilu/closet-api/internal/application/dto"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

// UseCase arma las lecturas agregadas del dashboard.
type UseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(analyticsRepo repository.AnalyticsRepository) *UseCase {
	return &UseCase{analyticsRepo: analyticsRepo}
}

// Stats devuelve los acumulados globales, la serie mensual de ingresos y el
// crecimiento porcentual del último mes frente al anterior.
func (uc *UseCase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	totals, err := uc.analyticsRepo.Totals()
	if err != nil {
		return nil, err
	}
	monthly, err := uc.analyticsRepo.RevenueByMonth()
	if err != nil {
		return nil, err
	}
	resp := &dto.DashboardStatsResponse{
		TotalOrders:    totals.TotalOrders,
		TotalRevenue:   totals.TotalRevenue,
		TotalCustomers: totals.TotalCustomers,
		Growth:         growth(monthly),
		Monthly:        []dto.MonthlyRevenueDTO{},
	}
	for _, m := range monthly {
		resp.Monthly = append(resp.Monthly, dto.MonthlyRevenueDTO{Month: m.Month, Total: m.Total})
	}
	return resp, nil
}

// TopBrands devuelve las marcas con más stock acumulado.
func (uc *UseCase) TopBrands(ctx context.Context, limit int) ([]dto.TopBrandDTO, error) {
	if limit <= 0 {
		limit = 5
	}
	brands, err := uc.analyticsRepo.TopBrands(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopBrandDTO, 0, len(brands))
	for _, b := range brands {
		out = append(out, dto.TopBrandDTO{Name: b.Name, Value: b.Value})
	}
	return out, nil
}

// TopProducts devuelve los productos más vendidos según las líneas de pedido.
func (uc *UseCase) TopProducts(ctx context.Context, limit int) ([]dto.TopProductDTO, error) {
	if limit <= 0 {
		limit = 5
	}
	products, err := uc.analyticsRepo.TopProducts(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.TopProductDTO{
			ID:         p.ID,
			Name:       p.Name,
			CoverImage: p.CoverImage,
			SalePrice:  p.SalePrice,
			Sold:       p.Sold,
		})
	}
	return out, nil
}

// growth calcula el crecimiento del último mes frente al anterior, en
// porcentaje con un decimal y signo ("+12.5%"). Sin dos meses de datos, o con
// el mes anterior en cero, devuelve "0%".
func growth(monthly []*repository.MonthlyRevenue) string {
	if len(monthly) < 2 {
		return "0%"
	}
	prev := monthly[len(monthly)-2].Total
	last := monthly[len(monthly)-1].Total
	if prev.IsZero() {
		return "0%"
	}
	pct := last.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(1)
	if pct.IsNegative() {
		return pct.String() + "%"
	}
	return "+" + pct.String() + "%"
}
