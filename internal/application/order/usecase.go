package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chichilu/closet-api/internal/application/dto"
	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	domainorder "github.com/chichilu/closet-api/internal/domain/order"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

// UseCase orquesta pedidos: creación todo-o-nada con descuento de stock por
// línea, y las mutaciones posteriores (estado, código de seguimiento).
type UseCase struct {
	txRunner     TxRunner
	stockSvc     StockService
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, stockSvc StockService, customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository) *UseCase {
	return &UseCase{txRunner: txRunner, stockSvc: stockSvc, customerRepo: customerRepo, orderRepo: orderRepo}
}

// CreateOrder crea el pedido en una sola transacción: cabecera (pending),
// una línea por ítem y el descuento de stock de cada línea vía el servicio
// de stock. Si cualquier línea falla (típicamente ErrInsufficientStock) se
// revierte TODO: ni pedido, ni líneas, ni descuentos parciales.
//
// El subtotal usa el precio instantáneo del request, no el precio vigente.
func (uc *UseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.VariantID == "" || item.Quantity <= 0 || item.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	subtotal := decimal.Zero
	for _, item := range in.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	now := time.Now()
	o := &entity.Order{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		Subtotal:     subtotal,
		Total:        subtotal,
		Note:         in.Note,
		TrackingCode: in.TrackingCode,
		Status:       domainorder.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunOrder(ctx, func(
		movRepo repository.StockMovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		if err := orderRepo.Create(o); err != nil {
			return err
		}
		for _, item := range in.Items {
			it := &entity.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   o.ID,
				VariantID: item.VariantID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
			if err := orderRepo.CreateItem(it); err != nil {
				return err
			}
			if _, err := uc.stockSvc.ApplyDeltaInTx(movRepo, variantRepo, productRepo,
				item.VariantID, -item.Quantity, entity.ReasonOrder, &o.ID, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateOrderResponse{
		ID:       o.ID,
		Subtotal: o.Subtotal,
		Total:    o.Total,
		Message:  "pedido creado",
	}, nil
}

// UpdateStatus valida el nuevo estado contra el enum canónico y la máquina
// de transiciones. ErrInvalidInput si el valor no pertenece al enum,
// ErrConflict si la transición no está permitida desde el estado actual.
// Cancelar NO repone stock: la reposición es una llamada explícita aparte.
func (uc *UseCase) UpdateStatus(ctx context.Context, orderID, newStatus string) error {
	if !domainorder.IsValidStatus(newStatus) {
		return domain.ErrInvalidInput
	}
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	if !domainorder.CanTransition(o.Status, newStatus) {
		return domain.ErrConflict
	}
	return uc.orderRepo.UpdateStatus(orderID, newStatus, time.Now())
}

// UpdateTracking guarda el código de seguimiento del envío.
func (uc *UseCase) UpdateTracking(ctx context.Context, orderID, code string) error {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.UpdateTracking(orderID, code, time.Now())
}

// GetStatus devuelve el estado actual del pedido.
func (uc *UseCase) GetStatus(ctx context.Context, orderID string) (*dto.OrderStatusResponse, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.OrderStatusResponse{ID: o.ID, Status: o.Status}, nil
}

// Get devuelve el pedido con cliente y líneas resueltas (detalle y PDF).
func (uc *UseCase) Get(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.GetItems(orderID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	if customer, err := uc.customerRepo.GetByID(o.CustomerID); err == nil && customer != nil {
		o.CustomerName = customer.Name
		o.CustomerPhone = customer.Phone
		o.CustomerAddress = customer.Address
	}
	resp := toResponse(o)
	return &resp, nil
}

// List devuelve todos los pedidos con cliente e ítems, más recientes primero.
func (uc *UseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toResponse(o))
	}
	return out, nil
}

func toResponse(o *entity.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Subtotal:        o.Subtotal,
		Total:           o.Total,
		Note:            o.Note,
		TrackingCode:    o.TrackingCode,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           []dto.OrderItemResponse{},
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			VariantID:   it.VariantID,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Size:        it.Size,
			Color:       it.Color,
			ProductName: it.ProductName,
			ProductSKU:  it.ProductSKU,
			CoverImage:  it.CoverImage,
		})
	}
	return resp
}
