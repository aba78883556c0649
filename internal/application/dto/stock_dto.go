package dto

import "time"

// ImportStockRequest body para POST /api/stock/import.
type ImportStockRequest struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// ExportStockRequest body para POST /api/stock/export.
type ExportStockRequest struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// RestoreStockRequest body para POST /api/variants/:id/restore-stock.
type RestoreStockRequest struct {
	Quantity int     `json:"quantity"`
	OrderID  *string `json:"order_id"`
}

// StockResponse stock resultante tras una operación.
type StockResponse struct {
	VariantID string `json:"variant_id,omitempty"`
	ProductID string `json:"product_id,omitempty"`
	Stock     int    `json:"stock"`
	Message   string `json:"message"`
}

// StockMovementResponse una entrada del historial.
type StockMovementResponse struct {
	ID          string    `json:"id"`
	VariantID   *string   `json:"variant_id"`
	VariantSKU  string    `json:"variant_sku,omitempty"`
	Delta       int       `json:"change_qty"`
	Reason      string    `json:"reason"`
	ReferenceID *string   `json:"reference_id"`
	CreatedAt   time.Time `json:"created_at"`
}
