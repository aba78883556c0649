package catalog

import (
	"context"

	"github.com/chichilu/closet-api/internal/application/dto"
	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

// UseCase gestiona el catálogo de tallas y colores que el frontend ofrece al
// crear variantes. Las altas son idempotentes.
type UseCase struct {
	optionRepo repository.OptionRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(optionRepo repository.OptionRepository) *UseCase {
	return &UseCase{optionRepo: optionRepo}
}

// ListSizes devuelve las tallas del catálogo.
func (uc *UseCase) ListSizes(ctx context.Context) ([]dto.OptionResponse, error) {
	sizes, err := uc.optionRepo.ListSizes()
	if err != nil {
		return nil, err
	}
	return toResponses(sizes), nil
}

// AddSize añade una talla; si ya existe no hace nada.
func (uc *UseCase) AddSize(ctx context.Context, name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.optionRepo.AddSize(name)
}

// ListColors devuelve los colores del catálogo.
func (uc *UseCase) ListColors(ctx context.Context) ([]dto.OptionResponse, error) {
	colors, err := uc.optionRepo.ListColors()
	if err != nil {
		return nil, err
	}
	return toResponses(colors), nil
}

// AddColor añade un color; si ya existe no hace nada.
func (uc *UseCase) AddColor(ctx context.Context, name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.optionRepo.AddColor(name)
}

func toResponses(options []*entity.Option) []dto.OptionResponse {
	out := make([]dto.OptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, dto.OptionResponse{ID: o.ID, Name: o.Name})
	}
	return out
}
