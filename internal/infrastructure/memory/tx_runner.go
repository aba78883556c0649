package memory

import (
	"context"

	"github.com/chichilu/closet-api/internal/application/order"
	"github.com/chichilu/closet-api/internal/application/stock"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)
var _ order.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks bajo el lock del almacén con rollback por
// snapshot: si el callback devuelve error el estado previo se restaura.
type TxRunner struct {
	s *Store
}

// Run ejecuta fn con repos atados a la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	variantRepo repository.VariantRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	saved := r.s.state.snapshot()
	err := fn(
		&MovementRepo{s: r.s, inTx: true},
		&VariantRepo{s: r.s, inTx: true},
		&ProductRepo{s: r.s, inTx: true},
	)
	if err != nil {
		r.s.state = saved
		return err
	}
	return nil
}

// RunOrder ejecuta fn con los repos de stock más el de pedidos.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	variantRepo repository.VariantRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	saved := r.s.state.snapshot()
	err := fn(
		&MovementRepo{s: r.s, inTx: true},
		&VariantRepo{s: r.s, inTx: true},
		&ProductRepo{s: r.s, inTx: true},
		&OrderRepo{s: r.s, inTx: true},
	)
	if err != nil {
		r.s.state = saved
		return err
	}
	return nil
}
