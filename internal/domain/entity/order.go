package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa un pedido de un cliente. Los ítems se crean junto con el
// pedido en una sola transacción (con sus descuentos de stock); después solo
// cambian el estado y el código de seguimiento.
type Order struct {
	ID           string
	CustomerID   string
	Subtotal     decimal.Decimal
	Total        decimal.Decimal
	Note         string
	TrackingCode string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Campos de lectura con join (listados); no se persisten aquí.
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []*OrderItem
}

// OrderItem es una línea del pedido. Price es una instantánea del precio al
// momento del pedido, desacoplada del precio vigente del producto.
type OrderItem struct {
	ID        string
	OrderID   string
	VariantID string
	Quantity  int
	Price     decimal.Decimal

	// Campos de lectura con join (listados).
	Size        string
	Color       string
	ProductName string
	ProductSKU  string
	CoverImage  string
}
