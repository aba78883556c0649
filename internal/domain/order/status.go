// Package order define la máquina de estados del pedido. El enum es fijo:
// cualquier valor fuera de él se rechaza en el borde, nunca se acepta un
// string arbitrario.
package order

// Estados canónicos del pedido.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// rank ordena los estados de avance. cancelled queda fuera del avance.
var rank = map[string]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusShipped:   2,
	StatusCompleted: 3,
}

// IsValidStatus indica si s pertenece al enum canónico.
func IsValidStatus(s string) bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := rank[s]
	return ok
}

// IsTerminal indica si desde s no hay transición posible.
func IsTerminal(s string) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition permite cualquier avance estricto (pending -> confirmed ->
// shipped -> completed, saltos incluidos) más la cancelación desde cualquier
// estado no terminal. Repetir el mismo estado no es una transición.
func CanTransition(from, to string) bool {
	if !IsValidStatus(from) || !IsValidStatus(to) {
		return false
	}
	if IsTerminal(from) {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return rank[to] > rank[from]
}
