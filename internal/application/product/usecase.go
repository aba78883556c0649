package product

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

// UseCase gestiona el catálogo de productos. La creación admite un lote
// inicial de variantes (tallas × colores) en la misma transacción.
type UseCase struct {
	txRunner    stock.TxRunner
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner stock.TxRunner, productRepo repository.ProductRepository, variantRepo repository.VariantRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, variantRepo: variantRepo}
}

// Create crea el producto (SKU normalizado y único) y, si vienen tallas y
// colores, el lote inicial de variantes con el mismo comportamiento que la
// creación masiva: los pares repetidos se omiten sin abortar.
// ErrInvalidInput sin SKU o nombre; ErrDuplicate si el SKU ya existe.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	baseSKU := sku.NormalizeBase(in.SKU)
	if baseSKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:         uuid.New().String(),
		SKU:        baseSKU,
		Name:       in.Name,
		Category:   in.Category,
		Brand:      in.Brand,
		CostPrice:  in.CostPrice,
		SalePrice:  in.SalePrice,
		CoverImage: in.CoverImage,
		Stock:      0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	defaultStock := in.DefaultStock
	if defaultStock < 0 {
		defaultStock = 0
	}
	withBatch := len(in.Sizes) > 0 && len(in.Colors) > 0

	var batch *dto.BulkVariantSummary
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(p); err != nil {
			return err
		}
		if !withBatch {
			return nil
		}
		batch = &dto.BulkVariantSummary{Created: []dto.VariantResponse{}, Skipped: []string{}}
		for _, size := range in.Sizes {
			for _, color := range in.Colors {
				variantSKU := sku.Derive(baseSKU, size, color)
				v := &entity.Variant{
					ID:        uuid.New().String(),
					ProductID: p.ID,
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
					batch.Skipped = append(batch.Skipped, variantSKU)
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
				batch.Created = append(batch.Created, dto.VariantResponse{
					ID: v.ID, ProductID: v.ProductID, Size: v.Size, Color: v.Color,
					SKU: v.SKU, Stock: v.Stock, CreatedAt: v.CreatedAt, UpdatedAt: v.UpdatedAt,
				})
			}
		}
		return productRepo.RecomputeStock(p.ID)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateProductResponse{ID: p.ID, Batch: batch, Message: "producto creado"}, nil
}

// List busca productos por nombre o SKU (q vacío lista todo).
func (uc *UseCase) List(ctx context.Context, q string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(q)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toResponse(p, nil))
	}
	return out, nil
}

// FindByCode busca un producto por SKU exacto (normalizado).
func (uc *UseCase) FindByCode(ctx context.Context, code string) (*dto.ProductResponse, error) {
	code = sku.NormalizeBase(code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetBySKU(code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(p, nil)
	return &resp, nil
}

// GetByID devuelve el producto con sus variantes.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	variants, err := uc.variantRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(p, variants)
	return &resp, nil
}

// Update edita los datos del producto. El stock no se toca aquí.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Brand != nil {
		p.Brand = *in.Brand
	}
	if in.CostPrice != nil {
		p.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		p.SalePrice = *in.SalePrice
	}
	if in.CoverImage != nil {
		p.CoverImage = *in.CoverImage
	}
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	resp := toResponse(p, nil)
	return &resp, nil
}

// Delete elimina el producto y todas sus variantes (cascada por FK).
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

func toResponse(p *entity.Product, variants []*entity.Variant) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:         p.ID,
		SKU:        p.SKU,
		Name:       p.Name,
		Category:   p.Category,
		Brand:      p.Brand,
		CostPrice:  p.CostPrice,
		SalePrice:  p.SalePrice,
		CoverImage: p.CoverImage,
		Stock:      p.Stock,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	for _, v := range variants {
		resp.Variants = append(resp.Variants, dto.VariantResponse{
			ID: v.ID, ProductID: v.ProductID, Size: v.Size, Color: v.Color,
			SKU: v.SKU, Stock: v.Stock, CreatedAt: v.CreatedAt, UpdatedAt: v.UpdatedAt,
		})
	}
	return resp
}
