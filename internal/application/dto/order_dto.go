package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest una línea del pedido. Price es la instantánea de precio
// enviada por el frontend, no se relee el precio vigente.
type OrderItemRequest struct {
	VariantID string          `json:"variant_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customer_id"`
	Note         string             `json:"note"`
	TrackingCode string             `json:"tracking_code"`
	Items        []OrderItemRequest `json:"items"`
}

// CreateOrderResponse id y total del pedido creado.
type CreateOrderResponse struct {
	ID       string          `json:"id"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
	Message  string          `json:"message"`
}

// UpdateOrderStatusRequest body para PUT /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateTrackingRequest body para PUT /api/orders/:id/tracking.
type UpdateTrackingRequest struct {
	TrackingCode string `json:"tracking_code"`
}

// OrderStatusResponse estado actual de un pedido.
type OrderStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OrderItemResponse línea de pedido con el producto resuelto.
type OrderItemResponse struct {
	VariantID   string          `json:"variant_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"sku"`
	CoverImage  string          `json:"cover_image"`
}

// OrderResponse pedido con cliente e ítems.
type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customer_id"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"phone"`
	CustomerAddress string              `json:"address"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Total           decimal.Decimal     `json:"total"`
	Note            string              `json:"note"`
	TrackingCode    string              `json:"tracking_code"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Items           []OrderItemResponse `json:"items"`
}
