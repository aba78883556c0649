package customer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chichilu/closet-api/internal/application/dto"
	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/domain/repository"
)

// UseCase gestiona el padrón de clientes.
type UseCase struct {
	customerRepo repository.CustomerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(customerRepo repository.CustomerRepository) *UseCase {
	return &UseCase{customerRepo: customerRepo}
}

// Create registra un cliente. El nombre es obligatorio.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Customer{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Phone:       in.Phone,
		Address:     in.Address,
		FacebookURL: in.FacebookURL,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
	if err := uc.customerRepo.Create(c); err != nil {
		return nil, err
	}
	resp := toResponse(c)
	return &resp, nil
}

// List devuelve todos los clientes.
func (uc *UseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toResponse(c))
	}
	return out, nil
}

// GetByID devuelve un cliente por su id.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(c)
	return &resp, nil
}

func toResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Address:     c.Address,
		FacebookURL: c.FacebookURL,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
	}
}
