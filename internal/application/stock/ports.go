package stock

import (
	"context"

	"github.com/chichilu/closet-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que mutación de stock, asiento en
// el libro y recálculo del acumulado sean visibles juntos o no serlo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error) error
}
