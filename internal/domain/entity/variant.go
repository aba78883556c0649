package entity

import "time"

// Variant representa una combinación talla/color concreta de un producto.
// Pertenece exactamente a un Product (borrar el producto borra sus variantes).
// SKU es único en todo el sistema y se deriva del SKU base del producto.
// Stock nunca es negativo; solo lo muta el servicio de stock.
type Variant struct {
	ID        string
	ProductID string
	Size      string
	Color     string
	SKU       string
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
