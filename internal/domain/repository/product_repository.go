package repository

import "github.com/chichilu/closet-api/internal/domain/entity"

// ProductRepository puerto de persistencia de productos.
// Los métodos Get* devuelven (nil, nil) cuando el recurso no existe.
type ProductRepository interface {
	// Create persiste un producto nuevo. ErrDuplicate si el SKU ya existe.
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// List busca por nombre o SKU (q vacío lista todo).
	List(q string) ([]*entity.Product, error)
	Update(p *entity.Product) error
	// Delete elimina el producto (las variantes caen en cascada por FK).
	// ErrNotFound si no existe.
	Delete(id string) error
	// AdjustStock suma delta al stock acumulado con guardia de no-negatividad
	// en una sola sentencia condicional. Solo válido para productos sin
	// variantes (el caso de uso lo garantiza). Devuelve el stock resultante.
	AdjustStock(id string, delta int) (int, error)
	// RecomputeStock fija el stock del producto a la suma del stock de sus
	// variantes (0 si no quedan). Idempotente.
	RecomputeStock(productID string) error
}
