package repository

import "github.com/chichilu/closet-api/internal/domain/entity"

// OptionRepository puerto del catálogo de tallas y colores.
type OptionRepository interface {
	ListSizes() ([]*entity.Option, error)
	// AddSize inserta la talla si no existe (idempotente).
	AddSize(name string) error
	ListColors() ([]*entity.Option, error)
	AddColor(name string) error
}
