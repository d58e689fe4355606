package pedido

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	nanoid "github.com/jaevor/go-nanoid"
)

const sufijoLen = 4

var patronCodigo = regexp.MustCompile(`^[A-Z]{2,6}-\d{8}-\d{4}$`)

// GeneradorCodigo produce códigos legibles de pedido: PREFIJO-YYYYMMDD-NNNN,
// con NNNN un sufijo aleatorio de 4 dígitos.
//
// El sufijo no garantiza unicidad; la columna codigo es UNIQUE y el caso de
// uso reintenta la generación ante colisión.
type GeneradorCodigo struct {
	prefijo string
	sufijo  func() string
}

// NewGeneradorCodigo construye el generador. El prefijo se normaliza a mayúsculas.
func NewGeneradorCodigo(prefijo string) (*GeneradorCodigo, error) {
	prefijo = strings.ToUpper(strings.TrimSpace(prefijo))
	if prefijo == "" {
		prefijo = "LC"
	}
	gen, err := nanoid.CustomASCII("0123456789", sufijoLen)
	if err != nil {
		return nil, fmt.Errorf("generador de sufijo: %w", err)
	}
	return &GeneradorCodigo{prefijo: prefijo, sufijo: gen}, nil
}

// Generar devuelve un código nuevo para la fecha indicada.
func (g *GeneradorCodigo) Generar(fecha time.Time) string {
	return fmt.Sprintf("%s-%s-%s", g.prefijo, fecha.Format("20060102"), g.sufijo())
}

// CodigoValido verifica el formato PREFIJO-YYYYMMDD-NNNN.
func CodigoValido(codigo string) bool {
	return patronCodigo.MatchString(codigo)
}
