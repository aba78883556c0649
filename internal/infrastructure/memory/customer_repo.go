package memory

import (
	"sort"

	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	s *Store
}

func (r *CustomerRepo) Create(c *entity.Customer) error {
	defer r.s.enter(false)()
	cc := *c
	r.s.state.customers[c.ID] = &cc
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	defer r.s.enter(false)()
	c, ok := r.s.state.customers[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	defer r.s.enter(false)()
	var customers []*entity.Customer
	for _, c := range r.s.state.customers {
		cc := *c
		customers = append(customers, &cc)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CreatedAt.After(customers[j].CreatedAt)
	})
	return customers, nil
}
