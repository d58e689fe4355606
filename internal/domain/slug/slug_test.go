package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jadebro/livecommerce-api/internal/domain/slug"
)

func TestNormalizar(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MiTienda", "mitienda"},
		{"  Tienda de Almendras  ", "tienda-de-almendras"},
		{"café-ñandú", "cafe-nandu"},
		{"doble__guion", "doble-guion"},
		{"--bordes--", "bordes"},
		{"tienda!@#2026", "tienda2026"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slug.Normalizar(tt.in), tt.in)
	}
}

func TestValido(t *testing.T) {
	assert.True(t, slug.Valido("mitienda"))
	assert.True(t, slug.Valido("tienda-2026"))
	assert.True(t, slug.Valido("a1"))
	assert.False(t, slug.Valido(""))
	assert.False(t, slug.Valido("-tienda"))
	assert.False(t, slug.Valido("tienda-"))
	assert.False(t, slug.Valido("MiTienda"))
	assert.False(t, slug.Valido("tienda con espacios"))
}
