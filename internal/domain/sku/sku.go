// Package sku concentra la normalización y derivación de SKUs para que el
// mismo par talla/color produzca siempre el mismo código.
package sku

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks descompone (NFD) y elimina las marcas diacríticas combinantes.
// Cubre las tildes vietnamitas de tallas/colores como "Đỏ" o "Trắng".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeBase normaliza un SKU base de producto: mayúsculas y sin espacios
// alrededor.
func NormalizeBase(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizePart normaliza un segmento de SKU de variante (talla o color):
// sin diacríticos, sin espacios y en mayúsculas. "Size M" -> "SIZEM",
// "Đỏ" -> "DO".
func NormalizePart(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	out = strings.Map(func(r rune) rune {
		// Đ/đ (D con barra) no se descompone en NFD; mapeo explícito.
		switch r {
		case 'Đ':
			return 'D'
		case 'đ':
			return 'd'
		}
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, out)
	return strings.ToUpper(out)
}

// Derive construye el SKU de una variante: {base}-{TALLA}-{COLOR}.
// Los segmentos que quedan vacíos tras normalizar se omiten.
func Derive(baseSKU, size, color string) string {
	parts := []string{NormalizeBase(baseSKU)}
	if p := NormalizePart(size); p != "" {
		parts = append(parts, p)
	}
	if p := NormalizePart(color); p != "" {
		parts = append(parts, p)
	}
	return strings.Join(parts, "-")
}
