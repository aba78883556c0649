package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ repository.OptionRepository = (*OptionRepo)(nil)

// OptionRepo catálogo de tallas y colores sobre PostgreSQL.
type OptionRepo struct {
	q Querier
}

// NewOptionRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewOptionRepository(q Querier) *OptionRepo {
	return &OptionRepo{q: q}
}

// ListSizes devuelve las tallas del catálogo.
func (r *OptionRepo) ListSizes() ([]*entity.Option, error) {
	return r.list("sizes")
}

// AddSize inserta la talla si no existe.
func (r *OptionRepo) AddSize(name string) error {
	return r.add("sizes", name)
}

// ListColors devuelve los colores del catálogo.
func (r *OptionRepo) ListColors() ([]*entity.Option, error) {
	return r.list("colors")
}

// AddColor inserta el color si no existe.
func (r *OptionRepo) AddColor(name string) error {
	return r.add("colors", name)
}

// table viene de un conjunto fijo interno, nunca de entrada del usuario.
func (r *OptionRepo) list(table string) ([]*entity.Option, error) {
	rows, err := r.q.Query(context.Background(),
		fmt.Sprintf(`SELECT id, name FROM %s ORDER BY name`, table))
	if err != nil {
		return nil, fmt.Errorf("listar %s: %w", table, err)
	}
	defer rows.Close()

	var options []*entity.Option
	for rows.Next() {
		var o entity.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("scan opción: %w", err)
		}
		options = append(options, &o)
	}
	return options, rows.Err()
}

func (r *OptionRepo) add(table, name string) error {
	_, err := r.q.Exec(context.Background(),
		fmt.Sprintf(`INSERT INTO %s (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`, table),
		uuid.New().String(), name)
	if err != nil {
		return fmt.Errorf("insertar en %s: %w", table, err)
	}
	return nil
}
