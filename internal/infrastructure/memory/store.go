// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria, con transacciones por snapshot. Lo usan los tests de los casos de
// uso para ejercitar la semántica transaccional real (commit o rollback
// completo) sin una base de datos.
package memory

import (
	"sync"

	"github.com/chichilu/closet-api/internal/domain/entity"
)

// Store guarda todo el estado bajo un único mutex. Las transacciones
// serializan: el runner toma el lock, clona el estado y lo restaura si el
// callback falla.
type Store struct {
	mu    sync.Mutex
	state *state
}

type state struct {
	products   map[string]*entity.Product
	variants   map[string]*entity.Variant
	movements  []*entity.StockMovement
	orders     map[string]*entity.Order
	orderItems []*entity.OrderItem
	customers  map[string]*entity.Customer
	sizes      []*entity.Option
	colors     []*entity.Option
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{state: newState()}
}

func newState() *state {
	return &state{
		products:  map[string]*entity.Product{},
		variants:  map[string]*entity.Variant{},
		orders:    map[string]*entity.Order{},
		customers: map[string]*entity.Customer{},
	}
}

// enter toma el lock salvo que el caller ya lo tenga (dentro de una tx).
func (s *Store) enter(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// snapshot clona el estado completo. Las entidades se copian por valor para
// que mutaciones posteriores no contaminen la copia.
func (s *state) snapshot() *state {
	c := newState()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, v := range s.variants {
		cv := *v
		c.variants[id] = &cv
	}
	for _, m := range s.movements {
		cm := *m
		c.movements = append(c.movements, &cm)
	}
	for id, o := range s.orders {
		co := *o
		co.Items = nil
		c.orders[id] = &co
	}
	for _, it := range s.orderItems {
		ci := *it
		c.orderItems = append(c.orderItems, &ci)
	}
	for id, cu := range s.customers {
		cc := *cu
		c.customers[id] = &cc
	}
	for _, o := range s.sizes {
		co := *o
		c.sizes = append(c.sizes, &co)
	}
	for _, o := range s.colors {
		co := *o
		c.colors = append(c.colors, &co)
	}
	return c
}

// ProductRepo devuelve el adaptador de productos (fuera de transacción).
func (s *Store) ProductRepo() *ProductRepo { return &ProductRepo{s: s} }

// VariantRepo devuelve el adaptador de variantes (fuera de transacción).
func (s *Store) VariantRepo() *VariantRepo { return &VariantRepo{s: s} }

// MovementRepo devuelve el adaptador del libro de movimientos (fuera de transacción).
func (s *Store) MovementRepo() *MovementRepo { return &MovementRepo{s: s} }

// OrderRepo devuelve el adaptador de pedidos (fuera de transacción).
func (s *Store) OrderRepo() *OrderRepo { return &OrderRepo{s: s} }

// CustomerRepo devuelve el adaptador de clientes.
func (s *Store) CustomerRepo() *CustomerRepo { return &CustomerRepo{s: s} }

// OptionRepo devuelve el adaptador del catálogo de tallas y colores.
func (s *Store) OptionRepo() *OptionRepo { return &OptionRepo{s: s} }

// AnalyticsRepo devuelve el adaptador de analítica.
func (s *Store) AnalyticsRepo() *AnalyticsRepo { return &AnalyticsRepo{s: s} }

// TxRunner devuelve el runner transaccional sobre este almacén.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }
