package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una prenda del catálogo, identificada por su SKU base
// (normalizado a mayúsculas y sin espacios alrededor).
//
// Stock es el acumulado del producto: si tiene variantes, SIEMPRE es la suma
// del stock de sus variantes (recalculado en cada mutación de variantes); si
// no tiene variantes, es autoritativo y se ajusta directamente vía el
// servicio de stock (AdjustProduct).
type Product struct {
	ID         string
	SKU        string
	Name       string
	Category   string
	Brand      string
	CostPrice  decimal.Decimal
	SalePrice  decimal.Decimal
	CoverImage string // referencia a la imagen (URL del host de medios)
	Stock      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
