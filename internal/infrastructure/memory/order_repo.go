package memory

import (
	"sort"
	"time"

	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación en memoria de OrderRepository.
type OrderRepo struct {
	s    *Store
	inTx bool
}

func (r *OrderRepo) Create(o *entity.Order) error {
	defer r.s.enter(r.inTx)()
	co := *o
	co.Items = nil
	r.s.state.orders[o.ID] = &co
	return nil
}

func (r *OrderRepo) CreateItem(it *entity.OrderItem) error {
	defer r.s.enter(r.inTx)()
	ci := *it
	r.s.state.orderItems = append(r.s.state.orderItems, &ci)
	return nil
}

func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	defer r.s.enter(r.inTx)()
	o, ok := r.s.state.orders[id]
	if !ok {
		return nil, nil
	}
	co := *o
	co.Items = nil
	return &co, nil
}

func (r *OrderRepo) GetItems(orderID string) ([]*entity.OrderItem, error) {
	defer r.s.enter(r.inTx)()
	return r.items(orderID), nil
}

func (r *OrderRepo) List() ([]*entity.Order, error) {
	defer r.s.enter(r.inTx)()
	var orders []*entity.Order
	for _, o := range r.s.state.orders {
		co := *o
		if c, ok := r.s.state.customers[o.CustomerID]; ok {
			co.CustomerName = c.Name
			co.CustomerPhone = c.Phone
			co.CustomerAddress = c.Address
		}
		co.Items = r.items(o.ID)
		orders = append(orders, &co)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *OrderRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	defer r.s.enter(r.inTx)()
	o, ok := r.s.state.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	return nil
}

func (r *OrderRepo) UpdateTracking(id, code string, updatedAt time.Time) error {
	defer r.s.enter(r.inTx)()
	o, ok := r.s.state.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.TrackingCode = code
	o.UpdatedAt = updatedAt
	return nil
}

// items requiere el lock tomado.
func (r *OrderRepo) items(orderID string) []*entity.OrderItem {
	var items []*entity.OrderItem
	for _, it := range r.s.state.orderItems {
		if it.OrderID != orderID {
			continue
		}
		ci := *it
		if v, ok := r.s.state.variants[it.VariantID]; ok {
			ci.Size = v.Size
			ci.Color = v.Color
			if p, ok := r.s.state.products[v.ProductID]; ok {
				ci.ProductName = p.Name
				ci.ProductSKU = p.SKU
				ci.CoverImage = p.CoverImage
			}
		}
		items = append(items, &ci)
	}
	return items
}
