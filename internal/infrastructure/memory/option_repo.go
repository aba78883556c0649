package memory

import (
	"sort"

	"github.com/google/uuid"

	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ repository.OptionRepository = (*OptionRepo)(nil)

// OptionRepo implementación en memoria del catálogo de tallas y colores.
type OptionRepo struct {
	s *Store
}

func (r *OptionRepo) ListSizes() ([]*entity.Option, error) {
	defer r.s.enter(false)()
	return sorted(r.s.state.sizes), nil
}

func (r *OptionRepo) AddSize(name string) error {
	defer r.s.enter(false)()
	r.s.state.sizes = addOption(r.s.state.sizes, name)
	return nil
}

func (r *OptionRepo) ListColors() ([]*entity.Option, error) {
	defer r.s.enter(false)()
	return sorted(r.s.state.colors), nil
}

func (r *OptionRepo) AddColor(name string) error {
	defer r.s.enter(false)()
	r.s.state.colors = addOption(r.s.state.colors, name)
	return nil
}

func addOption(options []*entity.Option, name string) []*entity.Option {
	for _, o := range options {
		if o.Name == name {
			return options
		}
	}
	return append(options, &entity.Option{ID: uuid.New().String(), Name: name})
}

func sorted(options []*entity.Option) []*entity.Option {
	out := make([]*entity.Option, 0, len(options))
	for _, o := range options {
		co := *o
		out = append(out, &co)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
