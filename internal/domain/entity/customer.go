package entity

import "time"

// Customer representa un cliente de la tienda. La mayoría compra por
// Facebook, de ahí la URL del perfil.
type Customer struct {
	ID          string
	Name        string
	Phone       string
	Address     string
	FacebookURL string
	Notes       string
	CreatedAt   time.Time
}
