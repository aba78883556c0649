package product_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chichilu/closet-api/internal/application/dto"
	"github.com/chichilu/closet-api/internal/application/product"
	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/infrastructure/memory"
)

func setup(t *testing.T) (*memory.Store, *product.UseCase) {
	t.Helper()
	store := memory.NewStore()
	uc := product.NewUseCase(store.TxRunner(), store.ProductRepo(), store.VariantRepo())
	return store, uc
}

func TestCreate_ConLoteInicial(t *testing.T) {
	store, uc := setup(t)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:          " ao01 ",
		Name:         "Áo thun",
		Brand:        "Local",
		SalePrice:    decimal.NewFromInt(150),
		Sizes:        []string{"M", "L"},
		Colors:       []string{"Đỏ", "Trắng"},
		DefaultStock: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Batch)
	assert.Len(t, out.Batch.Created, 4)
	assert.Empty(t, out.Batch.Skipped)

	// SKU base normalizado y acumulado recalculado: 4 variantes × 2.
	p, err := store.ProductRepo().GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, "AO01", p.SKU)
	assert.Equal(t, 8, p.Stock)

	// Cada variante con stock inicial quedó asentada.
	for _, v := range out.Batch.Created {
		sum, err := store.MovementRepo().SumByVariant(v.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, sum)
	}
}

func TestCreate_SinLote(t *testing.T) {
	_, uc := setup(t)
	out, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "VAY01", Name: "Váy"})
	require.NoError(t, err)
	assert.Nil(t, out.Batch)
}

func TestCreate_Duplicado(t *testing.T) {
	_, uc := setup(t)
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "AO01", Name: "Áo"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{SKU: "ao01", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestFindByCode_Normaliza(t *testing.T) {
	_, uc := setup(t)
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "AO01", Name: "Áo"})
	require.NoError(t, err)

	got, err := uc.FindByCode(context.Background(), "  ao01 ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = uc.FindByCode(context.Background(), "ZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_NoTocaElStock(t *testing.T) {
	store, uc := setup(t)
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "AO01", Name: "Áo", Sizes: []string{"M"}, Colors: []string{"Đỏ"}, DefaultStock: 5,
	})
	require.NoError(t, err)

	name := "Áo renovado"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Áo renovado", out.Name)

	p, err := store.ProductRepo().GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)
}

func TestDelete_EnCascada(t *testing.T) {
	store, uc := setup(t)
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "AO01", Name: "Áo", Sizes: []string{"M"}, Colors: []string{"Đỏ"},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	n, err := store.VariantRepo().CountByProduct(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	assert.ErrorIs(t, uc.Delete(context.Background(), created.ID), domain.ErrNotFound)
}
