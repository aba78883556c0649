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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, category, brand, cost_price, sale_price, cover_image, stock, created_at, updated_at`

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SKU, p.Name, p.Category, p.Brand,
		p.CostPrice, p.SalePrice, p.CoverImage, p.Stock, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("crear producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un producto por SKU exacto. (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// List busca por nombre o SKU (ILIKE); q vacío lista todo.
func (r *ProductRepo) List(q string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if q != "" {
		query += ` WHERE name ILIKE $1 OR sku ILIKE $1`
		args = append(args, "%"+q+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Category, &p.Brand,
			&p.CostPrice, &p.SalePrice, &p.CoverImage, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

// Update actualiza los datos del producto (no el stock).
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, brand = $4, cost_price = $5,
		    sale_price = $6, cover_image = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Category, p.Brand, p.CostPrice, p.SalePrice, p.CoverImage, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("actualizar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el producto; las variantes caen en cascada por FK.
func (r *ProductRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock suma delta con guardia de no-negatividad en una sola sentencia
// condicional. Devuelve el stock resultante.
func (r *ProductRepo) AdjustStock(id string, delta int) (int, error) {
	query := `
		UPDATE products
		SET stock = stock + $2, updated_at = now()
		WHERE id = $1 AND stock + $2 >= 0
		RETURNING stock`
	var stock int
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// La guardia no distingue fila ausente de stock insuficiente.
			exists, exErr := r.exists(id)
			if exErr != nil {
				return 0, exErr
			}
			if !exists {
				return 0, domain.ErrNotFound
			}
			return 0, domain.ErrInsufficientStock
		}
		return 0, fmt.Errorf("ajustar stock de producto: %w", err)
	}
	return stock, nil
}

// RecomputeStock fija el stock al total de las variantes (0 si no quedan).
func (r *ProductRepo) RecomputeStock(productID string) error {
	query := `
		UPDATE products
		SET stock = COALESCE(
			(SELECT SUM(v.stock) FROM product_variants v WHERE v.product_id = products.id), 0),
		    updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, productID)
	if err != nil {
		return fmt.Errorf("recalcular stock de producto: %w", err)
	}
	return nil
}

func (r *ProductRepo) exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("verificar producto: %w", err)
	}
	return exists, nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.Brand,
		&p.CostPrice, &p.SalePrice, &p.CoverImage, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	return &p, nil
}
