package memory

import (
	"sort"

	"github.com/shopspring/decimal"

	domainorder "github.com/chichilu/closet-api/internal/domain/order"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo implementación en memoria de las consultas del dashboard.
// Los pedidos cancelados no cuentan, igual que en la implementación SQL.
type AnalyticsRepo struct {
	s *Store
}

func (r *AnalyticsRepo) Totals() (*repository.DashboardTotals, error) {
	defer r.s.enter(false)()
	t := &repository.DashboardTotals{TotalRevenue: decimal.Zero}
	for _, o := range r.s.state.orders {
		if o.Status == domainorder.StatusCancelled {
			continue
		}
		t.TotalOrders++
		t.TotalRevenue = t.TotalRevenue.Add(o.Total)
	}
	t.TotalCustomers = len(r.s.state.customers)
	return t, nil
}

func (r *AnalyticsRepo) RevenueByMonth() ([]*repository.MonthlyRevenue, error) {
	defer r.s.enter(false)()
	byMonth := map[string]decimal.Decimal{}
	for _, o := range r.s.state.orders {
		if o.Status == domainorder.StatusCancelled {
			continue
		}
		month := o.CreatedAt.Format("2006-01")
		byMonth[month] = byMonth[month].Add(o.Total)
	}
	var monthly []*repository.MonthlyRevenue
	for month, total := range byMonth {
		monthly = append(monthly, &repository.MonthlyRevenue{Month: month, Total: total})
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })
	return monthly, nil
}

func (r *AnalyticsRepo) TopBrands(limit int) ([]*repository.BrandStock, error) {
	defer r.s.enter(false)()
	byBrand := map[string]int{}
	for _, p := range r.s.state.products {
		if p.Brand != "" {
			byBrand[p.Brand] += p.Stock
		}
	}
	var brands []*repository.BrandStock
	for name, value := range byBrand {
		brands = append(brands, &repository.BrandStock{Name: name, Value: value})
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i].Value > brands[j].Value })
	if len(brands) > limit {
		brands = brands[:limit]
	}
	return brands, nil
}

func (r *AnalyticsRepo) TopProducts(limit int) ([]*repository.TopProduct, error) {
	defer r.s.enter(false)()
	sold := map[string]int{}
	for _, it := range r.s.state.orderItems {
		o, ok := r.s.state.orders[it.OrderID]
		if !ok || o.Status == domainorder.StatusCancelled {
			continue
		}
		v, ok := r.s.state.variants[it.VariantID]
		if !ok {
			continue
		}
		sold[v.ProductID] += it.Quantity
	}
	var products []*repository.TopProduct
	for productID, qty := range sold {
		p, ok := r.s.state.products[productID]
		if !ok {
			continue
		}
		products = append(products, &repository.TopProduct{
			ID:         p.ID,
			Name:       p.Name,
			CoverImage: p.CoverImage,
			SalePrice:  p.SalePrice,
			Sold:       qty,
		})
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Sold > products[j].Sold })
	if len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}
