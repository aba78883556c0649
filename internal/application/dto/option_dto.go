package dto

// AddOptionRequest body para añadir una talla o un color al catálogo.
type AddOptionRequest struct {
	Name string `json:"name"`
}

// OptionResponse un valor del catálogo.
type OptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
