package pedido_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/pedido"
)

func timeDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestEstadoValido(t *testing.T) {
	for _, e := range []string{"pendiente", "confirmado", "preparando", "enviado", "entregado", "cancelado"} {
		assert.True(t, pedido.EstadoValido(e), e)
	}
	assert.False(t, pedido.EstadoValido("despachado"))
	assert.False(t, pedido.EstadoValido(""))
	assert.False(t, pedido.EstadoValido("Pendiente")) // sensible a mayúsculas
}

func TestValidarTransicion(t *testing.T) {
	tests := []struct {
		nombre  string
		actual  string
		nuevo   string
		wantErr error
	}{
		{"avance normal", "pendiente", "confirmado", nil},
		{"salto hacia adelante", "pendiente", "enviado", nil},
		{"idempotente", "preparando", "preparando", nil},
		{"idempotente terminal", "entregado", "entregado", nil},
		{"cancelar pendiente", "pendiente", "cancelado", nil},
		{"cancelar enviado", "enviado", "cancelado", nil},
		{"retroceso", "enviado", "confirmado", domain.ErrTransicionInvalida},
		{"salir de entregado", "entregado", "enviado", domain.ErrTransicionInvalida},
		{"cancelar entregado", "entregado", "cancelado", domain.ErrTransicionInvalida},
		{"revivir cancelado", "cancelado", "pendiente", domain.ErrTransicionInvalida},
		{"estado desconocido", "pendiente", "perdido", domain.ErrEstadoInvalido},
	}
	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			err := pedido.ValidarTransicion(tt.actual, tt.nuevo)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestEstadosContados(t *testing.T) {
	contados := pedido.EstadosContados()
	assert.ElementsMatch(t, []string{"confirmado", "preparando", "enviado", "entregado"}, contados)
	assert.NotContains(t, contados, "pendiente")
	assert.NotContains(t, contados, "cancelado")
}

func TestGeneradorCodigo_Formato(t *testing.T) {
	gen, err := pedido.NewGeneradorCodigo("lc")
	require.NoError(t, err)

	fecha := timeDate(2026, 9, 1)
	codigo := gen.Generar(fecha)

	assert.True(t, pedido.CodigoValido(codigo), codigo)
	assert.Regexp(t, `^LC-20260901-\d{4}$`, codigo)
}

func TestGeneradorCodigo_PrefijoVacio(t *testing.T) {
	gen, err := pedido.NewGeneradorCodigo("  ")
	require.NoError(t, err)
	assert.Regexp(t, `^LC-\d{8}-\d{4}$`, gen.Generar(timeDate(2026, 1, 15)))
}

func TestCodigoValido(t *testing.T) {
	assert.True(t, pedido.CodigoValido("PD-20260115-0042"))
	assert.False(t, pedido.CodigoValido("PD-2026015-0042"))  // fecha corta
	assert.False(t, pedido.CodigoValido("pd-20260115-0042")) // minúsculas
	assert.False(t, pedido.CodigoValido("PD-20260115-042"))  // sufijo corto
	assert.False(t, pedido.CodigoValido("PD_20260115_0042"))
}
