// Package normalize pliega texto para comparaciones y agrupaciones
// insensibles a mayúsculas y tildes (direcciones colombianas suelen llegar
// con y sin acentos: "Bogotá" / "bogota").
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone, elimina marcas diacríticas y recompone.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve el texto en minúsculas, sin tildes y sin espacios en los
// extremos. Si la transformación falla, devuelve la versión en minúsculas.
func Fold(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	folded, _, err := transform.String(foldTransformer, lowered)
	if err != nil {
		return lowered
	}
	return folded
}
