package memory

import (
	"sort"
	"strings"

	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s    *Store
	inTx bool
}

func (r *ProductRepo) Create(p *entity.Product) error {
	defer r.s.enter(r.inTx)()
	for _, other := range r.s.state.products {
		if other.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.s.state.products[p.ID] = &cp
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.s.enter(r.inTx)()
	p, ok := r.s.state.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	defer r.s.enter(r.inTx)()
	for _, p := range r.s.state.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) List(q string) ([]*entity.Product, error) {
	defer r.s.enter(r.inTx)()
	q = strings.ToLower(q)
	var products []*entity.Product
	for _, p := range r.s.state.products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.SKU), q) {
			continue
		}
		cp := *p
		products = append(products, &cp)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *ProductRepo) Update(p *entity.Product) error {
	defer r.s.enter(r.inTx)()
	cur, ok := r.s.state.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Stock = cur.Stock
	r.s.state.products[p.ID] = &cp
	return nil
}

func (r *ProductRepo) Delete(id string) error {
	defer r.s.enter(r.inTx)()
	if _, ok := r.s.state.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.state.products, id)
	// cascada por FK
	for vid, v := range r.s.state.variants {
		if v.ProductID == id {
			delete(r.s.state.variants, vid)
		}
	}
	return nil
}

func (r *ProductRepo) AdjustStock(id string, delta int) (int, error) {
	defer r.s.enter(r.inTx)()
	p, ok := r.s.state.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	p.Stock += delta
	return p.Stock, nil
}

func (r *ProductRepo) RecomputeStock(productID string) error {
	defer r.s.enter(r.inTx)()
	p, ok := r.s.state.products[productID]
	if !ok {
		return nil
	}
	total := 0
	for _, v := range r.s.state.variants {
		if v.ProductID == productID {
			total += v.Stock
		}
	}
	p.Stock = total
	return nil
}
