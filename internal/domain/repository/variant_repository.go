package repository

import "github.com/chichilu/closet-api/internal/domain/entity"

// VariantRepository puerto de persistencia de variantes.
type VariantRepository interface {
	// Create persiste una variante nueva. ErrDuplicate si el SKU ya existe.
	Create(v *entity.Variant) error
	// CreateIgnoreDuplicate inserta con ON CONFLICT DO NOTHING y reporta si
	// insertó. Necesario en la creación masiva: dentro de una transacción una
	// violación de unicidad abortaría el batch completo.
	CreateIgnoreDuplicate(v *entity.Variant) (created bool, err error)
	GetByID(id string) (*entity.Variant, error)
	ListByProduct(productID string) ([]*entity.Variant, error)
	CountByProduct(productID string) (int, error)
	// Update renombra talla/color/SKU. Nunca toca el stock.
	// ErrNotFound si no existe; ErrDuplicate si el nuevo SKU colisiona.
	Update(v *entity.Variant) error
	// Delete elimina la variante. ErrNotFound si no existe. El caso de uso
	// debe recalcular el acumulado del producto en la misma transacción.
	Delete(id string) error
	// AdjustStock aplica stock = stock + delta con guardia de no-negatividad
	// en una sola sentencia condicional (sin leer-luego-escribir), de modo que
	// dos pedidos concurrentes no puedan sobrevender. Devuelve el stock
	// resultante; ErrInsufficientStock si la guardia falla, ErrNotFound si la
	// variante no existe.
	AdjustStock(id string, delta int) (int, error)
}
