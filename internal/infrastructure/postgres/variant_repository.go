package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación de VariantRepository sobre PostgreSQL (usable con pool o tx).
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador de variantes. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

const variantColumns = `id, product_id, size, color, sku, stock, created_at, updated_at`

// Create persiste una variante nueva.
func (r *VariantRepo) Create(v *entity.Variant) error {
	query := `
		INSERT INTO product_variants (` + variantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.ProductID, v.Size, v.Color, v.SKU, v.Stock, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("crear variante: %w", err)
	}
	return nil
}

// CreateIgnoreDuplicate inserta con ON CONFLICT DO NOTHING y reporta si
// insertó. Una violación de unicidad dentro de una tx abortaría el batch
// entero, de ahí el conflict target.
func (r *VariantRepo) CreateIgnoreDuplicate(v *entity.Variant) (bool, error) {
	query := `
		INSERT INTO product_variants (` + variantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (sku) DO NOTHING`
	tag, err := r.q.Exec(context.Background(), query,
		v.ID, v.ProductID, v.Size, v.Color, v.SKU, v.Stock, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("crear variante (lote): %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID obtiene una variante por id. (nil, nil) si no existe.
func (r *VariantRepo) GetByID(id string) (*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE id = $1`
	var v entity.Variant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ProductID, &v.Size, &v.Color, &v.SKU, &v.Stock, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener variante: %w", err)
	}
	return &v, nil
}

// ListByProduct lista las variantes de un producto, ordenadas por talla y color.
func (r *VariantRepo) ListByProduct(productID string) ([]*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE product_id = $1 ORDER BY size, color`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("listar variantes: %w", err)
	}
	defer rows.Close()

	var variants []*entity.Variant
	for rows.Next() {
		var v entity.Variant
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.Size, &v.Color, &v.SKU, &v.Stock, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan variante: %w", err)
		}
		variants = append(variants, &v)
	}
	return variants, rows.Err()
}

// CountByProduct cuenta las variantes de un producto.
func (r *VariantRepo) CountByProduct(productID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM product_variants WHERE product_id = $1`, productID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("contar variantes: %w", err)
	}
	return n, nil
}

// Update renombra talla/color/SKU. El stock no se toca aquí.
func (r *VariantRepo) Update(v *entity.Variant) error {
	query := `
		UPDATE product_variants
		SET size = $2, color = $3, sku = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, v.ID, v.Size, v.Color, v.SKU, v.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("actualizar variante: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la variante. Una variante referenciada por líneas de pedido
// no se puede eliminar: la FK de order_items la protege y se reporta como
// conflicto.
func (r *VariantRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM product_variants WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("eliminar variante: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock aplica stock = stock + delta en una sola sentencia condicional.
// Dos descuentos concurrentes sobre la misma variante serializan en el lock
// de fila y el segundo ve el stock ya descontado: no hay sobreventa.
func (r *VariantRepo) AdjustStock(id string, delta int) (int, error) {
	query := `
		UPDATE product_variants
		SET stock = stock + $2, updated_at = now()
		WHERE id = $1 AND stock + $2 >= 0
		RETURNING stock`
	var stock int
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			v, getErr := r.GetByID(id)
			if getErr != nil {
				return 0, getErr
			}
			if v == nil {
				return 0, domain.ErrNotFound
			}
			return 0, domain.ErrInsufficientStock
		}
		return 0, fmt.Errorf("ajustar stock de variante: %w", err)
	}
	return stock, nil
}
