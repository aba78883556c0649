package postgres

import (
	"context"
	"fmt"

	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard.
// Los pedidos cancelados no cuentan como ingresos ni como ventas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// Totals devuelve los acumulados globales.
func (r *AnalyticsRepo) Totals() (*repository.DashboardTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM orders WHERE status <> 'cancelled'),
			(SELECT COALESCE(SUM(total), 0) FROM orders WHERE status <> 'cancelled'),
			(SELECT COUNT(*) FROM customers)`
	var t repository.DashboardTotals
	err := r.q.QueryRow(context.Background(), query).Scan(
		&t.TotalOrders, &t.TotalRevenue, &t.TotalCustomers,
	)
	if err != nil {
		return nil, fmt.Errorf("totales del dashboard: %w", err)
	}
	return &t, nil
}

// RevenueByMonth devuelve los ingresos por mes (YYYY-MM) en orden cronológico.
func (r *AnalyticsRepo) RevenueByMonth() ([]*repository.MonthlyRevenue, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM') AS month, COALESCE(SUM(total), 0)
		FROM orders
		WHERE status <> 'cancelled'
		GROUP BY month
		ORDER BY month`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ingresos por mes: %w", err)
	}
	defer rows.Close()

	var monthly []*repository.MonthlyRevenue
	for rows.Next() {
		var m repository.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, fmt.Errorf("scan mes: %w", err)
		}
		monthly = append(monthly, &m)
	}
	return monthly, rows.Err()
}

// TopBrands devuelve las marcas con más stock acumulado.
func (r *AnalyticsRepo) TopBrands(limit int) ([]*repository.BrandStock, error) {
	query := `
		SELECT brand, COALESCE(SUM(stock), 0) AS total
		FROM products
		WHERE brand <> ''
		GROUP BY brand
		ORDER BY total DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("marcas con más stock: %w", err)
	}
	defer rows.Close()

	var brands []*repository.BrandStock
	for rows.Next() {
		var b repository.BrandStock
		if err := rows.Scan(&b.Name, &b.Value); err != nil {
			return nil, fmt.Errorf("scan marca: %w", err)
		}
		brands = append(brands, &b)
	}
	return brands, rows.Err()
}

// TopProducts devuelve los productos más vendidos según las líneas de pedido.
func (r *AnalyticsRepo) TopProducts(limit int) ([]*repository.TopProduct, error) {
	query := `
		SELECT p.id, p.name, p.cover_image, p.sale_price, COALESCE(SUM(i.quantity), 0) AS sold
		FROM order_items i
		JOIN orders o ON o.id = i.order_id AND o.status <> 'cancelled'
		JOIN product_variants v ON v.id = i.variant_id
		JOIN products p ON p.id = v.product_id
		GROUP BY p.id, p.name, p.cover_image, p.sale_price
		ORDER BY sold DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("productos más vendidos: %w", err)
	}
	defer rows.Close()

	var products []*repository.TopProduct
	for rows.Next() {
		var p repository.TopProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.CoverImage, &p.SalePrice, &p.Sold); err != nil {
			return nil, fmt.Errorf("scan producto vendido: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}
