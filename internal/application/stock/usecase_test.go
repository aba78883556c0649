package stock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chichilu/closet-api/internal/application/stock"
	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/infrastructure/memory"
)

type fixture struct {
	store   *memory.Store
	svc     *stock.Service
	history *stock.History
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	svc := stock.NewService(store.TxRunner(), store.VariantRepo(), store.ProductRepo())
	history := stock.NewHistory(store.MovementRepo(), store.VariantRepo())
	return &fixture{store: store, svc: svc, history: history}
}

func (f *fixture) addProduct(t *testing.T) string {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:        uuid.New().String(),
		SKU:       "AO01",
		Name:      "Áo thun",
		SalePrice: decimal.NewFromInt(150),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.store.ProductRepo().Create(p))
	return p.ID
}

func (f *fixture) addVariant(t *testing.T, productID string, stockQty int) string {
	t.Helper()
	now := time.Now()
	v := &entity.Variant{
		ID:        uuid.New().String(),
		ProductID: productID,
		Size:      "M",
		Color:     "Đỏ",
		SKU:       "AO01-M-DO-" + uuid.New().String()[:4],
		Stock:     stockQty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.store.VariantRepo().Create(v))
	require.NoError(t, f.store.ProductRepo().RecomputeStock(productID))
	// Asiento de apertura por el stock inicial, como hace la creación real
	// de variantes: el libro concilia desde el primer movimiento.
	if stockQty > 0 {
		require.NoError(t, f.store.MovementRepo().Append(&entity.StockMovement{
			ID:        uuid.New().String(),
			VariantID: &v.ID,
			Delta:     stockQty,
			Reason:    entity.ReasonImport,
			CreatedAt: now,
		}))
	}
	return v.ID
}

func TestApplyImport_AsientaYRecalcula(t *testing.T) {
	f := newFixture(t)
	productID := f.addProduct(t)
	variantID := f.addVariant(t, productID, 0)

	newStock, err := f.svc.ApplyImport(context.Background(), variantID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, newStock)

	// El acumulado del producto sigue a la variante.
	p, err := f.store.ProductRepo().GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)

	// Conciliación: la suma del libro es igual al stock.
	stockNow, ledgerSum, err := f.history.VerifyVariant(context.Background(), variantID)
	require.NoError(t, err)
	assert.Equal(t, stockNow, ledgerSum)

	movs, err := f.history.ListByVariant(context.Background(), variantID)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.ReasonImport, movs[0].Reason)
	assert.Equal(t, 5, movs[0].Delta)
}

func TestApplyImport_Validacion(t *testing.T) {
	f := newFixture(t)
	productID := f.addProduct(t)
	variantID := f.addVariant(t, productID, 0)

	_, err := f.svc.ApplyImport(context.Background(), variantID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.svc.ApplyImport(context.Background(), variantID, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.svc.ApplyImport(context.Background(), "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyExport_InsuficienteRevierteTodo(t *testing.T) {
	f := newFixture(t)
	productID := f.addProduct(t)
	variantID := f.addVariant(t, productID, 3)

	_, err := f.svc.ApplyExport(context.Background(), variantID, 5, entity.ReasonOrder, nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada quedó a medias: ni stock mutado ni asiento nuevo, solo el de apertura.
	v, err := f.store.VariantRepo().GetByID(variantID)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Stock)
	movs, err := f.history.ListByVariant(context.Background(), variantID)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.ReasonImport, movs[0].Reason)
}

func TestApplyExport_ConcurrenteNoSobrevende(t *testing.T) {
	f := newFixture(t)
	productID := f.addProduct(t)
	variantID := f.addVariant(t, productID, 5)

	const workers = 10
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.ApplyExport(context.Background(), variantID, 1, entity.ReasonOrder, nil)
		}(i)
	}
	wg.Wait()

	ok, insufficient := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case err == domain.ErrInsufficientStock:
			insufficient++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 5, ok)
	assert.Equal(t, 5, insufficient)

	v, err := f.store.VariantRepo().GetByID(variantID)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Stock)

	// El libro concilia: apertura de +5 más exactamente 5 asientos de -1.
	stockNow, ledgerSum, err := f.history.VerifyVariant(context.Background(), variantID)
	require.NoError(t, err)
	assert.Equal(t, stockNow, ledgerSum)
	assert.Equal(t, 0, ledgerSum)

	movs, err := f.history.ListByVariant(context.Background(), variantID)
	require.NoError(t, err)
	exports := 0
	for _, m := range movs {
		if m.Reason == entity.ReasonOrder {
			exports++
			assert.Equal(t, -1, m.Delta)
		}
	}
	assert.Equal(t, 5, exports)
}

func TestRestoreStock_AsientaReturn(t *testing.T) {
	f := newFixture(t)
	productID := f.addProduct(t)
	variantID := f.addVariant(t, productID, 1)

	orderID := uuid.New().String()
	newStock, err := f.svc.RestoreStock(context.Background(), variantID, 2, &orderID)
	require.NoError(t, err)
	assert.Equal(t, 3, newStock)

	// Más recientes primero: la reposición delante del asiento de apertura.
	movs, err := f.history.ListByVariant(context.Background(), variantID)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Equal(t, entity.ReasonReturn, movs[0].Reason)
	require.NotNil(t, movs[0].ReferenceID)
	assert.Equal(t, orderID, *movs[0].ReferenceID)
}

func TestAdjustProduct_SoloSinVariantes(t *testing.T) {
	f := newFixture(t)

	// Producto sin variantes: el stock es autoritativo.
	soloID := f.addProduct(t)
	newStock, err := f.svc.AdjustProduct(context.Background(), soloID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, newStock)

	// El asiento queda con variante NULL.
	movs, err := f.history.ListRecent(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Nil(t, movs[0].VariantID)
	assert.Equal(t, entity.ReasonAdjust, movs[0].Reason)

	// No puede quedar negativo.
	_, err = f.svc.AdjustProduct(context.Background(), soloID, -10)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Con variantes el acumulado es derivado: ajuste directo rechazado.
	now := time.Now()
	conVariantes := &entity.Product{ID: uuid.New().String(), SKU: "AO02", Name: "Váy", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, f.store.ProductRepo().Create(conVariantes))
	f.addVariant(t, conVariantes.ID, 2)
	_, err = f.svc.AdjustProduct(context.Background(), conVariantes.ID, 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestHistory_ListRecentPagina(t *testing.T) {
	f := newFixture(t)
	productID := f.addProduct(t)
	variantID := f.addVariant(t, productID, 0)

	for i := 0; i < 4; i++ {
		_, err := f.svc.ApplyImport(context.Background(), variantID, 1)
		require.NoError(t, err)
	}
	page, err := f.history.ListRecent(context.Background(), 3, 0)
	require.NoError(t, err)
	assert.Len(t, page, 3)
	rest, err := f.history.ListRecent(context.Background(), 3, 3)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	// Límite y offset fuera de rango se normalizan al defecto.
	all, err := f.history.ListRecent(context.Background(), 0, -1)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
