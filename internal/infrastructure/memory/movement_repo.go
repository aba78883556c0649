package memory

import (
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria del libro de movimientos.
type MovementRepo struct {
	s    *Store
	inTx bool
}

func (r *MovementRepo) Append(m *entity.StockMovement) error {
	defer r.s.enter(r.inTx)()
	cm := *m
	if cm.VariantID != nil {
		if v, ok := r.s.state.variants[*cm.VariantID]; ok {
			cm.VariantSKU = v.SKU
		}
	}
	r.s.state.movements = append(r.s.state.movements, &cm)
	return nil
}

func (r *MovementRepo) ListRecent(limit, offset int) ([]*entity.StockMovement, error) {
	defer r.s.enter(r.inTx)()
	all := r.s.state.movements
	// más recientes primero: el slice está en orden de inserción
	var out []*entity.StockMovement
	for i := len(all) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		cm := *all[i]
		out = append(out, &cm)
	}
	return out, nil
}

func (r *MovementRepo) ListByVariant(variantID string) ([]*entity.StockMovement, error) {
	defer r.s.enter(r.inTx)()
	var out []*entity.StockMovement
	for i := len(r.s.state.movements) - 1; i >= 0; i-- {
		m := r.s.state.movements[i]
		if m.VariantID != nil && *m.VariantID == variantID {
			cm := *m
			out = append(out, &cm)
		}
	}
	return out, nil
}

func (r *MovementRepo) SumByVariant(variantID string) (int, error) {
	defer r.s.enter(r.inTx)()
	sum := 0
	for _, m := range r.s.state.movements {
		if m.VariantID != nil && *m.VariantID == variantID {
			sum += m.Delta
		}
	}
	return sum, nil
}
