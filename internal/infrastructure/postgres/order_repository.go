package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera del pedido.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, subtotal, total, note, tracking_code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.CustomerID, o.Subtotal, o.Total, o.Note, o.TrackingCode, o.Status, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("crear pedido: %w", err)
	}
	return nil
}

// CreateItem inserta una línea del pedido.
func (r *OrderRepo) CreateItem(it *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, variant_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, it.ID, it.OrderID, it.VariantID, it.Quantity, it.Price)
	if err != nil {
		return fmt.Errorf("crear línea de pedido: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera del pedido. (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, subtotal, total, note, tracking_code, status, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.Subtotal, &o.Total, &o.Note, &o.TrackingCode,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener pedido: %w", err)
	}
	return &o, nil
}

// GetItems devuelve las líneas del pedido con variante y producto resueltos.
func (r *OrderRepo) GetItems(orderID string) ([]*entity.OrderItem, error) {
	query := itemsQuery + ` WHERE i.order_id = $1`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listar líneas de pedido: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

const itemsQuery = `
	SELECT i.id, i.order_id, i.variant_id, i.quantity, i.price,
	       COALESCE(v.size, ''), COALESCE(v.color, ''),
	       COALESCE(p.name, ''), COALESCE(p.sku, ''), COALESCE(p.cover_image, '')
	FROM order_items i
	LEFT JOIN product_variants v ON v.id = i.variant_id
	LEFT JOIN products p ON p.id = v.product_id`

// List devuelve todos los pedidos con datos de cliente y sus líneas, más
// recientes primero. Las líneas se resuelven en una segunda consulta única y
// se agrupan por pedido.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.subtotal, o.total, o.note, o.tracking_code,
		       o.status, o.created_at, o.updated_at,
		       COALESCE(c.name, ''), COALESCE(c.phone, ''), COALESCE(c.address, '')
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		ORDER BY o.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	byID := map[string]*entity.Order{}
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.Subtotal, &o.Total, &o.Note, &o.TrackingCode,
			&o.Status, &o.CreatedAt, &o.UpdatedAt,
			&o.CustomerName, &o.CustomerPhone, &o.CustomerAddress,
		); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		o.Items = []*entity.OrderItem{}
		orders = append(orders, &o)
		byID[o.ID] = &o
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.q.Query(context.Background(), itemsQuery)
	if err != nil {
		return nil, fmt.Errorf("listar líneas de pedido: %w", err)
	}
	defer itemRows.Close()
	items, err := scanItems(itemRows)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return orders, nil
}

// UpdateStatus cambia el estado del pedido.
func (r *OrderRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("actualizar estado de pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateTracking guarda el código de seguimiento.
func (r *OrderRepo) UpdateTracking(id, code string, updatedAt time.Time) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE orders SET tracking_code = $2, updated_at = $3 WHERE id = $1`, id, code, updatedAt)
	if err != nil {
		return fmt.Errorf("actualizar seguimiento de pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanItems(rows pgx.Rows) ([]*entity.OrderItem, error) {
	var items []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.VariantID, &it.Quantity, &it.Price,
			&it.Size, &it.Color, &it.ProductName, &it.ProductSKU, &it.CoverImage,
		); err != nil {
			return nil, fmt.Errorf("scan línea de pedido: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
