package order

import (
	"context"
	"time"

	"github.com/chichilu/closet-api/internal/domain/repository"
)

// TxRunner abre la transacción del pedido: cabecera, líneas y descuentos de
// stock comparten la misma tx y se confirman o revierten juntos.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// StockService aplica el descuento de una línea usando los repositorios del
// caller (misma transacción). Lo implementa el servicio de stock; así el
// asiento y el recálculo del acumulado quedan garantizados también en la
// creación de pedidos.
type StockService interface {
	ApplyDeltaInTx(
		movRepo repository.StockMovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
		variantID string,
		delta int,
		reason string,
		referenceID *string,
		now time.Time,
	) (int, error)
}
