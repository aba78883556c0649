package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chichilu/closet-api/internal/domain/order"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "shipped", "completed", "cancelled"} {
		assert.True(t, order.IsValidStatus(s), s)
	}
	// "shipping" era una variante histórica del enum; el canónico es "shipped".
	for _, s := range []string{"shipping", "bogus", "", "PENDING"} {
		assert.False(t, order.IsValidStatus(s), s)
	}
}

func TestCanTransition_Avance(t *testing.T) {
	assert.True(t, order.CanTransition("pending", "confirmed"))
	assert.True(t, order.CanTransition("confirmed", "shipped"))
	assert.True(t, order.CanTransition("shipped", "completed"))
	// Saltos hacia adelante permitidos.
	assert.True(t, order.CanTransition("pending", "shipped"))
	assert.True(t, order.CanTransition("pending", "completed"))
}

func TestCanTransition_Cancelacion(t *testing.T) {
	assert.True(t, order.CanTransition("pending", "cancelled"))
	assert.True(t, order.CanTransition("confirmed", "cancelled"))
	assert.True(t, order.CanTransition("shipped", "cancelled"))
	// Terminales: sin salida.
	assert.False(t, order.CanTransition("cancelled", "pending"))
	assert.False(t, order.CanTransition("completed", "cancelled"))
}

func TestCanTransition_SinRetrocesoNiRepeticion(t *testing.T) {
	assert.False(t, order.CanTransition("shipped", "confirmed"))
	assert.False(t, order.CanTransition("confirmed", "pending"))
	assert.False(t, order.CanTransition("pending", "pending"))
	assert.False(t, order.CanTransition("pending", "bogus"))
}
