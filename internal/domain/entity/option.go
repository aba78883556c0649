package entity

// Option es un valor del catálogo de tallas o colores que el frontend ofrece
// al crear variantes. La inserción es idempotente (nombres únicos).
type Option struct {
	ID   string
	Name string
}
