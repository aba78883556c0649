package dto

import "time"

// CreateVariantRequest entrada para crear una variante. VariantSKU es
// opcional: vacío deriva {baseSku}-{TALLA}-{COLOR}.
type CreateVariantRequest struct {
	ProductID  string `json:"product_id"`
	Size       string `json:"size"`
	Color      string `json:"color"`
	VariantSKU string `json:"variant_sku"`
	Stock      int    `json:"stock"`
}

// CreateBulkVariantsRequest lote talla × color con stock inicial común.
type CreateBulkVariantsRequest struct {
	ProductID    string   `json:"product_id"`
	Sizes        []string `json:"sizes"`
	Colors       []string `json:"colors"`
	DefaultStock int      `json:"default_stock"`
}

// UpdateVariantRequest renombra talla/color/SKU. El stock no se edita aquí.
type UpdateVariantRequest struct {
	Size       *string `json:"size"`
	Color      *string `json:"color"`
	VariantSKU *string `json:"variant_sku"`
}

// VariantResponse salida de una variante.
type VariantResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	SKU       string    `json:"variant_sku"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BulkVariantSummary resultado de la creación masiva: el lote no es
// todo-o-nada, los pares con SKU repetido se omiten y se reportan.
type BulkVariantSummary struct {
	Created []VariantResponse `json:"created"`
	Skipped []string          `json:"skipped"` // SKUs omitidos por colisión
}
