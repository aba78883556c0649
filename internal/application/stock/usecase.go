package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

// Service es el único punto de entrada autorizado para cambiar stock.
// Compone los tres efectos de cada ajuste (mutación del contador de la
// variante, asiento en el libro de movimientos y recálculo del acumulado del
// producto) dentro de una misma transacción, de modo que el recálculo no
// dependa de que cada caller lo recuerde.
type Service struct {
	txRunner    TxRunner
	variantRepo repository.VariantRepository
	productRepo repository.ProductRepository
}

// NewService construye el servicio de stock.
func NewService(txRunner TxRunner, variantRepo repository.VariantRepository, productRepo repository.ProductRepository) *Service {
	return &Service{txRunner: txRunner, variantRepo: variantRepo, productRepo: productRepo}
}

// ApplyImport registra una entrada de mercadería: stock += qty, asiento
// "import" y recálculo del producto. ErrInvalidInput si qty <= 0,
// ErrNotFound si la variante no existe.
func (s *Service) ApplyImport(ctx context.Context, variantID string, qty int) (int, error) {
	if qty <= 0 {
		return 0, domain.ErrInvalidInput
	}
	if err := s.ensureVariant(variantID); err != nil {
		return 0, err
	}
	var newStock int
	err := s.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error {
		var err error
		newStock, err = s.ApplyDeltaInTx(movRepo, variantRepo, productRepo,
			variantID, qty, entity.ReasonImport, nil, time.Now())
		return err
	})
	return newStock, err
}

// ApplyExport registra una salida: stock -= qty con guardia atómica de
// no-negatividad, asiento con el motivo y la referencia indicados, recálculo.
// ErrInsufficientStock si no alcanza el stock; la transacción completa se
// revierte y no queda asiento ni mutación parcial.
func (s *Service) ApplyExport(ctx context.Context, variantID string, qty int, reason string, referenceID *string) (int, error) {
	if qty <= 0 {
		return 0, domain.ErrInvalidInput
	}
	if reason == "" {
		reason = entity.ReasonOrder
	}
	if err := s.ensureVariant(variantID); err != nil {
		return 0, err
	}
	var newStock int
	err := s.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error {
		var err error
		newStock, err = s.ApplyDeltaInTx(movRepo, variantRepo, productRepo,
			variantID, -qty, reason, referenceID, time.Now())
		return err
	})
	return newStock, err
}

// RestoreStock repone unidades a una variante (motivo "return"), por ejemplo
// al cancelar un pedido. Es una operación explícita: cancelar un pedido NO la
// invoca automáticamente.
func (s *Service) RestoreStock(ctx context.Context, variantID string, qty int, referenceID *string) (int, error) {
	if qty <= 0 {
		return 0, domain.ErrInvalidInput
	}
	if err := s.ensureVariant(variantID); err != nil {
		return 0, err
	}
	var newStock int
	err := s.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error {
		var err error
		newStock, err = s.ApplyDeltaInTx(movRepo, variantRepo, productRepo,
			variantID, qty, entity.ReasonReturn, referenceID, time.Now())
		return err
	})
	return newStock, err
}

// AdjustProduct ajusta directamente el stock de un producto SIN variantes
// (para productos con variantes el acumulado es derivado y no se toca a
// mano: ErrConflict). El asiento queda con variante NULL.
func (s *Service) AdjustProduct(ctx context.Context, productID string, delta int) (int, error) {
	if delta == 0 {
		return 0, domain.ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	var newStock int
	err = s.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error {
		// La guardia va dentro de la transacción: una variante creada en
		// paralelo entre la lectura y el ajuste volvería derivado el stock.
		n, err := variantRepo.CountByProduct(productID)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}
		newStock, err = productRepo.AdjustStock(productID, delta)
		if err != nil {
			return err
		}
		return movRepo.Append(&entity.StockMovement{
			ID:        uuid.New().String(),
			VariantID: nil,
			Delta:     delta,
			Reason:    entity.ReasonAdjust,
			CreatedAt: time.Now(),
		})
	})
	return newStock, err
}

// ApplyDeltaInTx aplica un cambio de stock usando los repositorios del
// caller (misma transacción SQL). Es el bloque que usa la creación de
// pedidos para descontar cada línea dentro de su propia transacción.
//
// La guardia de no-negatividad vive en VariantRepository.AdjustStock como
// update condicional, así dos exports concurrentes sobre la misma variante
// no pueden leer el mismo stock y sobrevender.
func (s *Service) ApplyDeltaInTx(
	movRepo repository.StockMovementRepository,
	variantRepo repository.VariantRepository,
	productRepo repository.ProductRepository,
	variantID string,
	delta int,
	reason string,
	referenceID *string,
	now time.Time,
) (int, error) {
	variant, err := variantRepo.GetByID(variantID)
	if err != nil {
		return 0, err
	}
	if variant == nil {
		return 0, domain.ErrNotFound
	}
	newStock, err := variantRepo.AdjustStock(variantID, delta)
	if err != nil {
		return 0, err
	}
	mov := &entity.StockMovement{
		ID:          uuid.New().String(),
		VariantID:   &variant.ID,
		Delta:       delta,
		Reason:      reason,
		ReferenceID: referenceID,
		CreatedAt:   now,
	}
	if err := movRepo.Append(mov); err != nil {
		return 0, err
	}
	if err := productRepo.RecomputeStock(variant.ProductID); err != nil {
		return 0, err
	}
	return newStock, nil
}

// ensureVariant valida la existencia fuera de la transacción (solo lectura).
func (s *Service) ensureVariant(variantID string) error {
	if variantID == "" {
		return domain.ErrInvalidInput
	}
	v, err := s.variantRepo.GetByID(variantID)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	return nil
}
