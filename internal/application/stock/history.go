package stock

import (
	"context"

	"github.com/chichilu/closet-api/internal/application/dto"
	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

// History expone el libro de movimientos en solo lectura.
type History struct {
	movRepo     repository.StockMovementRepository
	variantRepo repository.VariantRepository
}

// NewHistory construye el lector del historial.
func NewHistory(movRepo repository.StockMovementRepository, variantRepo repository.VariantRepository) *History {
	return &History{movRepo: movRepo, variantRepo: variantRepo}
}

// ListRecent devuelve los últimos movimientos, más recientes primero.
func (h *History) ListRecent(ctx context.Context, limit, offset int) ([]dto.StockMovementResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	movements, err := h.movRepo.ListRecent(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// ListByVariant devuelve todos los movimientos de una variante.
func (h *History) ListByVariant(ctx context.Context, variantID string) ([]dto.StockMovementResponse, error) {
	if variantID == "" {
		return nil, domain.ErrInvalidInput
	}
	movements, err := h.movRepo.ListByVariant(variantID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// VerifyVariant comprueba la conciliación de una variante: la suma de los
// deltas del libro debe coincidir con el stock actual. Devuelve ambos valores
// para que el caller decida qué hacer con una discrepancia.
func (h *History) VerifyVariant(ctx context.Context, variantID string) (stockNow, ledgerSum int, err error) {
	v, err := h.variantRepo.GetByID(variantID)
	if err != nil {
		return 0, 0, err
	}
	if v == nil {
		return 0, 0, domain.ErrNotFound
	}
	sum, err := h.movRepo.SumByVariant(variantID)
	if err != nil {
		return 0, 0, err
	}
	return v.Stock, sum, nil
}

func toMovementResponses(movements []*entity.StockMovement) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:          m.ID,
			VariantID:   m.VariantID,
			VariantSKU:  m.VariantSKU,
			Delta:       m.Delta,
			Reason:      m.Reason,
			ReferenceID: m.ReferenceID,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out
}
