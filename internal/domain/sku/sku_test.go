package sku_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chichilu/closet-api/internal/domain/sku"
)

// La derivación debe ser determinista: mismo producto + talla + color
// producen siempre el mismo SKU de variante.
func TestDerive_TallaColorVietnamita(t *testing.T) {
	got := sku.Derive("ABC", "Size M", "Đỏ")
	assert.Equal(t, "ABC-SIZEM-DO", got)
}

func TestDerive_DiacriticosYEspacios(t *testing.T) {
	cases := []struct {
		base, size, color string
		want              string
	}{
		{"ao-01", "M", "Trắng", "AO-01-M-TRANG"},
		{" abc ", "XL", "Xanh Lá", "ABC-XL-XANHLA"},
		{"ABC", "38", "Đen", "ABC-38-DEN"},
		{"ABC", "", "Đỏ", "ABC-DO"},
		{"ABC", "M", "", "ABC-M"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sku.Derive(c.base, c.size, c.color),
			"base=%q size=%q color=%q", c.base, c.size, c.color)
	}
}

func TestNormalizeBase(t *testing.T) {
	assert.Equal(t, "ABC", sku.NormalizeBase("  abc "))
	assert.Equal(t, "AO-01", sku.NormalizeBase("ao-01"))
}
