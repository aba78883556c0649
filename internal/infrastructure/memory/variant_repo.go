package memory

import (
	"sort"

	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación en memoria de VariantRepository.
type VariantRepo struct {
	s    *Store
	inTx bool
}

func (r *VariantRepo) Create(v *entity.Variant) error {
	defer r.s.enter(r.inTx)()
	if r.skuTaken(v.SKU) {
		return domain.ErrDuplicate
	}
	cv := *v
	r.s.state.variants[v.ID] = &cv
	return nil
}

func (r *VariantRepo) CreateIgnoreDuplicate(v *entity.Variant) (bool, error) {
	defer r.s.enter(r.inTx)()
	if r.skuTaken(v.SKU) {
		return false, nil
	}
	cv := *v
	r.s.state.variants[v.ID] = &cv
	return true, nil
}

func (r *VariantRepo) GetByID(id string) (*entity.Variant, error) {
	defer r.s.enter(r.inTx)()
	v, ok := r.s.state.variants[id]
	if !ok {
		return nil, nil
	}
	cv := *v
	return &cv, nil
}

func (r *VariantRepo) ListByProduct(productID string) ([]*entity.Variant, error) {
	defer r.s.enter(r.inTx)()
	var variants []*entity.Variant
	for _, v := range r.s.state.variants {
		if v.ProductID == productID {
			cv := *v
			variants = append(variants, &cv)
		}
	}
	sort.Slice(variants, func(i, j int) bool {
		if variants[i].Size != variants[j].Size {
			return variants[i].Size < variants[j].Size
		}
		return variants[i].Color < variants[j].Color
	})
	return variants, nil
}

func (r *VariantRepo) CountByProduct(productID string) (int, error) {
	defer r.s.enter(r.inTx)()
	n := 0
	for _, v := range r.s.state.variants {
		if v.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *VariantRepo) Update(v *entity.Variant) error {
	defer r.s.enter(r.inTx)()
	cur, ok := r.s.state.variants[v.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if v.SKU != cur.SKU && r.skuTaken(v.SKU) {
		return domain.ErrDuplicate
	}
	cur.Size = v.Size
	cur.Color = v.Color
	cur.SKU = v.SKU
	cur.UpdatedAt = v.UpdatedAt
	return nil
}

func (r *VariantRepo) Delete(id string) error {
	defer r.s.enter(r.inTx)()
	if _, ok := r.s.state.variants[id]; !ok {
		return domain.ErrNotFound
	}
	// Igual que la FK de order_items: una variante pedida no se elimina.
	for _, it := range r.s.state.orderItems {
		if it.VariantID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.state.variants, id)
	return nil
}

func (r *VariantRepo) AdjustStock(id string, delta int) (int, error) {
	defer r.s.enter(r.inTx)()
	v, ok := r.s.state.variants[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if v.Stock+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	v.Stock += delta
	return v.Stock, nil
}

// skuTaken requiere el lock tomado.
func (r *VariantRepo) skuTaken(sku string) bool {
	for _, other := range r.s.state.variants {
		if other.SKU == sku {
			return true
		}
	}
	return false
}
