package entity

import "time"

// Motivos de movimiento de stock.
const (
	ReasonImport = "import" // entrada de mercadería
	ReasonOrder  = "order"  // salida por venta
	ReasonReturn = "return" // devolución / reposición explícita
	ReasonAdjust = "adjust" // ajuste directo de producto sin variantes
)

// StockMovement es una entrada del libro de movimientos: registro inmutable y
// append-only de cada cambio de stock. La suma con signo de los deltas de una
// variante, desde su creación, es igual a su stock actual.
//
// VariantID es NULL cuando se ajusta directamente un producto sin variantes.
// ReferenceID apunta al pedido que causó el movimiento, si lo hay.
type StockMovement struct {
	ID          string
	VariantID   *string
	Delta       int
	Reason      string
	ReferenceID *string
	CreatedAt   time.Time

	// VariantSKU solo se llena en lecturas con join (historial); no se persiste.
	VariantSKU string
}
