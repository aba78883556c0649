package postgres

import (
	"context"
	"fmt"

	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL.
// Solo inserta y lee: las filas nunca se actualizan ni se borran.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Append inserta un movimiento.
func (r *StockMovementRepo) Append(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, variant_id, delta, reason, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.VariantID, m.Delta, m.Reason, m.ReferenceID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insertar movimiento: %w", err)
	}
	return nil
}

// ListRecent devuelve el historial paginado con el SKU de la variante
// resuelto (LEFT JOIN: los ajustes de producto no tienen variante).
func (r *StockMovementRepo) ListRecent(limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.variant_id, m.delta, m.reason, m.reference_id, m.created_at,
		       COALESCE(v.sku, '')
		FROM stock_movements m
		LEFT JOIN product_variants v ON v.id = m.variant_id
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	defer rows.Close()

	var movements []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.VariantID, &m.Delta, &m.Reason, &m.ReferenceID, &m.CreatedAt, &m.VariantSKU,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

// ListByVariant devuelve todos los movimientos de una variante, más recientes primero.
func (r *StockMovementRepo) ListByVariant(variantID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.variant_id, m.delta, m.reason, m.reference_id, m.created_at,
		       COALESCE(v.sku, '')
		FROM stock_movements m
		LEFT JOIN product_variants v ON v.id = m.variant_id
		WHERE m.variant_id = $1
		ORDER BY m.created_at DESC, m.id DESC`
	rows, err := r.q.Query(context.Background(), query, variantID)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos de variante: %w", err)
	}
	defer rows.Close()

	var movements []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.VariantID, &m.Delta, &m.Reason, &m.ReferenceID, &m.CreatedAt, &m.VariantSKU,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

// SumByVariant suma los deltas de una variante (0 si no hay movimientos).
func (r *StockMovementRepo) SumByVariant(variantID string) (int, error) {
	var sum int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(delta), 0) FROM stock_movements WHERE variant_id = $1`, variantID).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sumar movimientos: %w", err)
	}
	return sum, nil
}
