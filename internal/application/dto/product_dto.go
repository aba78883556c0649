package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Sizes/Colors son
// opcionales: si vienen, se crea el lote inicial de variantes (producto
// cartesiano) en la misma transacción.
type CreateProductRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Brand        string          `json:"brand"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	CoverImage   string          `json:"cover_image"`
	Sizes        []string        `json:"sizes"`
	Colors       []string        `json:"colors"`
	DefaultStock int             `json:"default_stock"`
}

// UpdateProductRequest entrada para editar un producto. El stock no se edita
// aquí: lo gobiernan las variantes o el ajuste directo.
type UpdateProductRequest struct {
	Name       *string          `json:"name"`
	Category   *string          `json:"category"`
	Brand      *string          `json:"brand"`
	CostPrice  *decimal.Decimal `json:"cost_price"`
	SalePrice  *decimal.Decimal `json:"sale_price"`
	CoverImage *string          `json:"cover_image"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string            `json:"id"`
	SKU        string            `json:"sku"`
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	Brand      string            `json:"brand"`
	CostPrice  decimal.Decimal   `json:"cost_price"`
	SalePrice  decimal.Decimal   `json:"sale_price"`
	CoverImage string            `json:"cover_image"`
	Stock      int               `json:"stock"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Variants   []VariantResponse `json:"variants,omitempty"`
}

// CreateProductResponse id del producto creado y las variantes iniciales.
type CreateProductResponse struct {
	ID      string              `json:"id"`
	Batch   *BulkVariantSummary `json:"batch,omitempty"`
	Message string              `json:"message"`
}

// AdjustProductStockRequest ajuste directo de un producto sin variantes.
type AdjustProductStockRequest struct {
	Delta int `json:"delta"`
}
