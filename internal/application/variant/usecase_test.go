package variant_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chichilu/closet-api/internal/application/dto"
	"github.com/chichilu/closet-api/internal/application/variant"
	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/infrastructure/memory"
)

func setup(t *testing.T) (*memory.Store, *variant.UseCase, string) {
	t.Helper()
	store := memory.NewStore()
	uc := variant.NewUseCase(store.TxRunner(), store.ProductRepo(), store.VariantRepo())
	now := time.Now()
	p := &entity.Product{ID: uuid.New().String(), SKU: "ABC", Name: "Áo khoác", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.ProductRepo().Create(p))
	return store, uc, p.ID
}

func TestCreate_DerivaSKUYAsientaStockInicial(t *testing.T) {
	store, uc, productID := setup(t)

	out, err := uc.Create(context.Background(), dto.CreateVariantRequest{
		ProductID: productID,
		Size:      "Size M",
		Color:     "Đỏ",
		Stock:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC-SIZEM-DO", out.SKU)
	assert.Equal(t, 3, out.Stock)

	// El libro concilia desde la creación: asiento "import" por el inicial.
	sum, err := store.MovementRepo().SumByVariant(out.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, sum)

	// Acumulado del producto recalculado en la misma transacción.
	p, err := store.ProductRepo().GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)
}

func TestCreate_StockInicialCeroSinAsiento(t *testing.T) {
	store, uc, productID := setup(t)

	out, err := uc.Create(context.Background(), dto.CreateVariantRequest{
		ProductID: productID, Size: "L", Color: "Xanh",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stock)

	movs, err := store.MovementRepo().ListByVariant(out.ID)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestCreate_ProductoInexistente(t *testing.T) {
	_, uc, _ := setup(t)
	_, err := uc.Create(context.Background(), dto.CreateVariantRequest{ProductID: "no-existe", Size: "M"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBulk_ParcialTolerante(t *testing.T) {
	store, uc, productID := setup(t)

	// Pre-existente: el par M/Đỏ colisionará por SKU.
	_, err := uc.Create(context.Background(), dto.CreateVariantRequest{
		ProductID: productID, Size: "M", Color: "Đỏ", Stock: 1,
	})
	require.NoError(t, err)

	summary, err := uc.CreateBulk(context.Background(), dto.CreateBulkVariantsRequest{
		ProductID:    productID,
		Sizes:        []string{"M", "L"},
		Colors:       []string{"Đỏ", "Trắng"},
		DefaultStock: 2,
	})
	require.NoError(t, err)
	assert.Len(t, summary.Created, 3)
	assert.Equal(t, []string{"ABC-M-DO"}, summary.Skipped)

	// 1 pre-existente + 3 nuevas con stock 2: acumulado 1 + 6.
	p, err := store.ProductRepo().GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock)
}

func TestUpdate_NoTocaElStock(t *testing.T) {
	_, uc, productID := setup(t)
	out, err := uc.Create(context.Background(), dto.CreateVariantRequest{
		ProductID: productID, Size: "M", Color: "Đen", Stock: 4,
	})
	require.NoError(t, err)

	size := "XL"
	updated, err := uc.Update(context.Background(), out.ID, dto.UpdateVariantRequest{Size: &size})
	require.NoError(t, err)
	assert.Equal(t, "XL", updated.Size)
	assert.Equal(t, 4, updated.Stock)
}

func TestDelete_VarianteEnPedidosRechazada(t *testing.T) {
	store, uc, productID := setup(t)
	v, err := uc.Create(context.Background(), dto.CreateVariantRequest{
		ProductID: productID, Size: "M", Color: "Đỏ", Stock: 2,
	})
	require.NoError(t, err)

	now := time.Now()
	o := &entity.Order{ID: uuid.New().String(), CustomerID: "c1", Status: "pending", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.OrderRepo().Create(o))
	require.NoError(t, store.OrderRepo().CreateItem(&entity.OrderItem{
		ID: uuid.New().String(), OrderID: o.ID, VariantID: v.ID, Quantity: 1,
	}))

	// Igual que la FK de order_items en PostgreSQL: conflicto, no 500.
	err = uc.Delete(context.Background(), v.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// La variante y el acumulado quedan intactos.
	got, err := store.VariantRepo().GetByID(v.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Stock)
}

func TestDelete_RecalculaAcumulado(t *testing.T) {
	store, uc, productID := setup(t)
	a, err := uc.Create(context.Background(), dto.CreateVariantRequest{
		ProductID: productID, Size: "M", Color: "Đỏ", Stock: 3,
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateVariantRequest{
		ProductID: productID, Size: "L", Color: "Đỏ", Stock: 2,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), a.ID))

	p, err := store.ProductRepo().GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Stock)
}
