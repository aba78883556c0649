package variant

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chichilu/closet-api/internal/application/dto"
	"github.com/chichilu/closet-api/internal/application/stock"
	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
	"github.com/chichilu/closet-api/internal/domain/sku"
)

// UseCase gestiona el ciclo de vida de las variantes. Toda mutación que
// afecte stock (alta con stock inicial, borrado) corre en transacción y
// termina recalculando el acumulado del producto.
type UseCase struct {
	txRunner    stock.TxRunner
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner stock.TxRunner, productRepo repository.ProductRepository, variantRepo repository.VariantRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, variantRepo: variantRepo}
}

// Create crea una variante. El SKU se deriva del SKU base salvo que venga
// explícito. Si el stock inicial es positivo se asienta como "import" para
// que el libro concilie desde la creación. ErrNotFound si el producto no
// existe, ErrDuplicate si el SKU colisiona.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateVariantRequest) (*dto.VariantResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	variantSKU := sku.NormalizeBase(in.VariantSKU)
	if variantSKU == "" {
		variantSKU = sku.Derive(product.SKU, in.Size, in.Color)
	}
	initialStock := in.Stock
	if initialStock < 0 {
		initialStock = 0
	}
	now := time.Now()
	v := &entity.Variant{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Size:      in.Size,
		Color:     in.Color,
		SKU:       variantSKU,
		Stock:     initialStock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := variantRepo.Create(v); err != nil {
			return err
		}
		if initialStock > 0 {
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				VariantID: &v.ID,
				Delta:     initialStock,
				Reason:    entity.ReasonImport,
				CreatedAt: now,
			}
			if err := movRepo.Append(mov); err != nil {
				return err
			}
		}
		return productRepo.RecomputeStock(product.ID)
	})
	if err != nil {
		return nil, err
	}
	resp := toResponse(v)
	return &resp, nil
}

// CreateBulk crea el producto cartesiano tallas × colores con stock inicial
// común. NO es todo-o-nada: un par cuyo SKU ya existe se omite (insert con
// ON CONFLICT DO NOTHING) y se reporta, los demás pares siguen. Todo el lote
// corre en una transacción para que el recálculo final sea consistente.
func (uc *UseCase) CreateBulk(ctx context.Context, in dto.CreateBulkVariantsRequest) (*dto.BulkVariantSummary, error) {
	if in.ProductID == "" || len(in.Sizes) == 0 || len(in.Colors) == 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	defaultStock := in.DefaultStock
	if defaultStock < 0 {
		defaultStock = 0
	}

	summary := &dto.BulkVariantSummary{Created: []dto.VariantResponse{}, Skipped: []string{}}
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		for _, size := range in.Sizes {
			for _, color := range in.Colors {
				variantSKU := sku.Derive(product.SKU, size, color)
				v := &entity.Variant{
					ID:        uuid.New().String(),
					ProductID: product.ID,
					Size:      size,
					Color:     color,
					SKU:       variantSKU,
					Stock:     defaultStock,
					CreatedAt: now,
					UpdatedAt: now,
				}
				created, err := variantRepo.CreateIgnoreDuplicate(v)
				if err != nil {
					return err
				}
				if !created {
					summary.Skipped = append(summary.Skipped, variantSKU)
					continue
				}
				if defaultStock > 0 {
					mov := &entity.StockMovement{
						ID:        uuid.New().String(),
						VariantID: &v.ID,
						Delta:     defaultStock,
						Reason:    entity.ReasonImport,
						CreatedAt: now,
					}
					if err := movRepo.Append(mov); err != nil {
						return err
					}
				}
				summary.Created = append(summary.Created, toResponse(v))
			}
		}
		return productRepo.RecomputeStock(product.ID)
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// ListByProduct lista las variantes de un producto.
func (uc *UseCase) ListByProduct(ctx context.Context, productID string) ([]dto.VariantResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	variants, err := uc.variantRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VariantResponse, 0, len(variants))
	for _, v := range variants {
		out = append(out, toResponse(v))
	}
	return out, nil
}

// Update renombra talla/color/SKU. El stock nunca se edita por aquí: eso es
// del servicio de stock. ErrNotFound si no existe, ErrDuplicate si el nuevo
// SKU colisiona.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateVariantRequest) (*dto.VariantResponse, error) {
	v, err := uc.variantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if in.Size != nil {
		v.Size = *in.Size
	}
	if in.Color != nil {
		v.Color = *in.Color
	}
	if in.VariantSKU != nil && sku.NormalizeBase(*in.VariantSKU) != "" {
		v.SKU = sku.NormalizeBase(*in.VariantSKU)
	}
	v.UpdatedAt = time.Now()
	if err := uc.variantRepo.Update(v); err != nil {
		return nil, err
	}
	resp := toResponse(v)
	return &resp, nil
}

// Delete elimina la variante y recalcula el acumulado del producto huérfano
// en la misma transacción. Si era la última variante el producto queda en 0.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	v, err := uc.variantRepo.GetByID(id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := variantRepo.Delete(id); err != nil {
			return err
		}
		return productRepo.RecomputeStock(v.ProductID)
	})
}

func toResponse(v *entity.Variant) dto.VariantResponse {
	return dto.VariantResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		Size:      v.Size,
		Color:     v.Color,
		SKU:       v.SKU,
		Stock:     v.Stock,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
