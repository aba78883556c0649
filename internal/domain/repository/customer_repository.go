package repository

import "github.com/chichilu/closet-api/internal/domain/entity"

// CustomerRepository puerto de persistencia de clientes.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
}
