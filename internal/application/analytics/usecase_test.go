package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chichilu/closet-api/internal/application/analytics"
	"github.com/chichilu/closet-api/internal/domain/entity"
	domainorder "github.com/chichilu/closet-api/internal/domain/order"
	"github.com/chichilu/closet-api/internal/infrastructure/memory"
)

func addOrder(t *testing.T, store *memory.Store, total int64, createdAt time.Time, status string) {
	t.Helper()
	o := &entity.Order{
		ID:         uuid.New().String(),
		CustomerID: "c1",
		Subtotal:   decimal.NewFromInt(total),
		Total:      decimal.NewFromInt(total),
		Status:     status,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	require.NoError(t, store.OrderRepo().Create(o))
}

func TestStats_CrecimientoYCancelados(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewUseCase(store.AnalyticsRepo())

	require.NoError(t, store.CustomerRepo().Create(&entity.Customer{ID: "c1", Name: "Lan", CreatedAt: time.Now()}))

	jun := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	jul := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	addOrder(t, store, 100, jun, domainorder.StatusCompleted)
	addOrder(t, store, 150, jul, domainorder.StatusPending)
	// Cancelado: fuera de ingresos y del conteo.
	addOrder(t, store, 999, jul, domainorder.StatusCancelled)

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalOrders)
	assert.True(t, decimal.NewFromInt(250).Equal(out.TotalRevenue))
	assert.Equal(t, 1, out.TotalCustomers)
	assert.Equal(t, "+50%", out.Growth)
	require.Len(t, out.Monthly, 2)
	assert.Equal(t, "2026-06", out.Monthly[0].Month)
	assert.Equal(t, "2026-07", out.Monthly[1].Month)
}

func TestStats_SinDatosSuficientes(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewUseCase(store.AnalyticsRepo())

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0%", out.Growth)
	assert.Empty(t, out.Monthly)
}

func TestTopProducts_ExcluyeCancelados(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewUseCase(store.AnalyticsRepo())

	now := time.Now()
	p := &entity.Product{ID: "p1", SKU: "AO01", Name: "Áo", Brand: "Local", SalePrice: decimal.NewFromInt(150), CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.ProductRepo().Create(p))
	v := &entity.Variant{ID: "v1", ProductID: "p1", Size: "M", SKU: "AO01-M", Stock: 10, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.VariantRepo().Create(v))
	require.NoError(t, store.ProductRepo().RecomputeStock("p1"))

	addOrder(t, store, 300, now, domainorder.StatusCompleted)
	addOrder(t, store, 300, now, domainorder.StatusCancelled)
	orders, err := store.OrderRepo().List()
	require.NoError(t, err)
	for _, o := range orders {
		qty := 2
		if o.Status == domainorder.StatusCancelled {
			qty = 7
		}
		require.NoError(t, store.OrderRepo().CreateItem(&entity.OrderItem{
			ID: uuid.New().String(), OrderID: o.ID, VariantID: "v1", Quantity: qty, Price: decimal.NewFromInt(150),
		}))
	}

	top, err := uc.TopProducts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 2, top[0].Sold)

	brands, err := uc.TopBrands(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "Local", brands[0].Name)
	assert.Equal(t, 10, brands[0].Value)
}
