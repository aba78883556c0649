package dto

import "time"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	FacebookURL string `json:"facebook_url"`
	Notes       string `json:"notes"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	FacebookURL string    `json:"facebook_url"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}
