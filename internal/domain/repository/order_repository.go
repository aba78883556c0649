package repository

import (
	"time"

	"github.com/chichilu/closet-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia de pedidos y sus líneas.
type OrderRepository interface {
	Create(o *entity.Order) error
	CreateItem(it *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	GetItems(orderID string) ([]*entity.OrderItem, error)
	// List devuelve los pedidos con datos del cliente y sus líneas
	// (producto, talla, color) resueltos, más recientes primero.
	List() ([]*entity.Order, error)
	// UpdateStatus cambia el estado y la marca de actualización.
	// ErrNotFound si el pedido no existe.
	UpdateStatus(id, status string, updatedAt time.Time) error
	UpdateTracking(id, code string, updatedAt time.Time) error
}
