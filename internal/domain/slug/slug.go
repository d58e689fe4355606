// Package slug normaliza y valida el identificador público del comerciante.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	patron       = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,48}[a-z0-9])?$`)
	guionesDoble = regexp.MustCompile(`-+`)
)

// Normalizar convierte un nombre de usuario en slug: minúsculas, sin acentos,
// espacios a guiones, solo [a-z0-9-].
func Normalizar(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Quitar marcas diacríticas (á → a, ñ → n)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if limpio, _, err := transform.String(t, s); err == nil {
		s = limpio
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteRune('-')
		}
	}
	return strings.Trim(guionesDoble.ReplaceAllString(b.String(), "-"), "-")
}

// Valido verifica el formato final: 1-50 caracteres [a-z0-9-], sin guiones en los extremos.
func Valido(s string) bool {
	return patron.MatchString(s)
}
