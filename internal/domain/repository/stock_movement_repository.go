package repository

import "github.com/chichilu/closet-api/internal/domain/entity"

// StockMovementRepository puerto del libro de movimientos (append-only).
type StockMovementRepository interface {
	// Append inserta un movimiento. Nunca actualiza ni borra.
	Append(m *entity.StockMovement) error
	// ListRecent devuelve el historial (más recientes primero) con el SKU de
	// la variante resuelto.
	ListRecent(limit, offset int) ([]*entity.StockMovement, error)
	ListByVariant(variantID string) ([]*entity.StockMovement, error)
	// SumByVariant suma los deltas de una variante (0 si no hay movimientos).
	// Base de la verificación de conciliación: debe coincidir con el stock.
	SumByVariant(variantID string) (int, error)
}
