package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chichilu/closet-api/internal/application/dto"
	"github.com/chichilu/closet-api/internal/application/order"
	"github.com/chichilu/closet-api/internal/application/stock"
	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	domainorder "github.com/chichilu/closet-api/internal/domain/order"
	"github.com/chichilu/closet-api/internal/infrastructure/memory"
)

type fixture struct {
	store      *memory.Store
	uc         *order.UseCase
	customerID string
	variantA   string // stock 5
	variantB   string // stock 1
}

func setup(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	stockSvc := stock.NewService(store.TxRunner(), store.VariantRepo(), store.ProductRepo())
	uc := order.NewUseCase(store.TxRunner(), stockSvc, store.CustomerRepo(), store.OrderRepo())

	now := time.Now()
	c := &entity.Customer{ID: uuid.New().String(), Name: "Lan", Phone: "0901", CreatedAt: now}
	require.NoError(t, store.CustomerRepo().Create(c))

	p := &entity.Product{ID: uuid.New().String(), SKU: "AO01", Name: "Áo sơ mi", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.ProductRepo().Create(p))

	a := &entity.Variant{ID: uuid.New().String(), ProductID: p.ID, Size: "M", Color: "Đỏ", SKU: "AO01-M-DO", Stock: 5, CreatedAt: now, UpdatedAt: now}
	b := &entity.Variant{ID: uuid.New().String(), ProductID: p.ID, Size: "L", Color: "Đen", SKU: "AO01-L-DEN", Stock: 1, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.VariantRepo().Create(a))
	require.NoError(t, store.VariantRepo().Create(b))
	require.NoError(t, store.ProductRepo().RecomputeStock(p.ID))

	return &fixture{store: store, uc: uc, customerID: c.ID, variantA: a.ID, variantB: b.ID}
}

func TestCreateOrder_DescuentaYAsienta(t *testing.T) {
	f := setup(t)

	out, err := f.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: f.customerID,
		Items: []dto.OrderItemRequest{
			{VariantID: f.variantA, Quantity: 2, Price: decimal.NewFromInt(150)},
			{VariantID: f.variantB, Quantity: 1, Price: decimal.NewFromInt(200)},
		},
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(500).Equal(out.Total))

	// Stock descontado por línea.
	a, _ := f.store.VariantRepo().GetByID(f.variantA)
	b, _ := f.store.VariantRepo().GetByID(f.variantB)
	assert.Equal(t, 3, a.Stock)
	assert.Equal(t, 0, b.Stock)

	// Cada descuento quedó asentado con el pedido como referencia.
	movs, err := f.store.MovementRepo().ListByVariant(f.variantA)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.ReasonOrder, movs[0].Reason)
	assert.Equal(t, -2, movs[0].Delta)
	require.NotNil(t, movs[0].ReferenceID)
	assert.Equal(t, out.ID, *movs[0].ReferenceID)

	// El pedido nace pendiente.
	status, err := f.uc.GetStatus(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, domainorder.StatusPending, status.Status)
}

func TestCreateOrder_TodoONada(t *testing.T) {
	f := setup(t)

	// La segunda línea excede el stock de B: debe revertirse TODO.
	_, err := f.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: f.customerID,
		Items: []dto.OrderItemRequest{
			{VariantID: f.variantA, Quantity: 2, Price: decimal.NewFromInt(150)},
			{VariantID: f.variantB, Quantity: 3, Price: decimal.NewFromInt(200)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Ni pedido, ni líneas, ni descuentos parciales.
	orders, err := f.store.OrderRepo().List()
	require.NoError(t, err)
	assert.Empty(t, orders)

	a, _ := f.store.VariantRepo().GetByID(f.variantA)
	b, _ := f.store.VariantRepo().GetByID(f.variantB)
	assert.Equal(t, 5, a.Stock)
	assert.Equal(t, 1, b.Stock)

	movs, err := f.store.MovementRepo().ListRecent(10, 0)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestCreateOrder_Validacion(t *testing.T) {
	f := setup(t)

	_, err := f.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{CustomerID: f.customerID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: f.customerID,
		Items:      []dto.OrderItemRequest{{VariantID: f.variantA, Quantity: 0, Price: decimal.NewFromInt(10)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: "no-existe",
		Items:      []dto.OrderItemRequest{{VariantID: f.variantA, Quantity: 1, Price: decimal.NewFromInt(10)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_GuardiasDeTransicion(t *testing.T) {
	f := setup(t)
	out, err := f.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: f.customerID,
		Items:      []dto.OrderItemRequest{{VariantID: f.variantA, Quantity: 1, Price: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)

	// Valor fuera del enum.
	err = f.uc.UpdateStatus(context.Background(), out.ID, "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Salto hacia adelante permitido.
	require.NoError(t, f.uc.UpdateStatus(context.Background(), out.ID, domainorder.StatusCompleted))

	// Terminal: sin salida.
	err = f.uc.UpdateStatus(context.Background(), out.ID, domainorder.StatusCancelled)
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = f.uc.UpdateStatus(context.Background(), "no-existe", domainorder.StatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelar_NoReponeStock(t *testing.T) {
	f := setup(t)
	out, err := f.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: f.customerID,
		Items:      []dto.OrderItemRequest{{VariantID: f.variantA, Quantity: 2, Price: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.UpdateStatus(context.Background(), out.ID, domainorder.StatusCancelled))

	// La reposición es explícita (restore-stock), no un efecto de cancelar.
	a, _ := f.store.VariantRepo().GetByID(f.variantA)
	assert.Equal(t, 3, a.Stock)
}

func TestUpdateTrackingYGet(t *testing.T) {
	f := setup(t)
	out, err := f.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: f.customerID,
		Items:      []dto.OrderItemRequest{{VariantID: f.variantA, Quantity: 1, Price: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.UpdateTracking(context.Background(), out.ID, "GHN-123"))

	got, err := f.uc.Get(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "GHN-123", got.TrackingCode)
	assert.Equal(t, "Lan", got.CustomerName)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Áo sơ mi", got.Items[0].ProductName)
	assert.Equal(t, "M", got.Items[0].Size)
}
