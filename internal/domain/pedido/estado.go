// Package pedido contiene la lógica de dominio de pedidos: la enumeración de
// estados con sus reglas de transición y el generador del código legible.
package pedido

import "github.com/jadebro/livecommerce-api/internal/domain"

// Estados del ciclo de vida de un pedido.
const (
	EstadoPendiente  = "pendiente"
	EstadoConfirmado = "confirmado"
	EstadoPreparando = "preparando"
	EstadoEnviado    = "enviado"
	EstadoEntregado  = "entregado"
	EstadoCancelado  = "cancelado"
)

// rango de avance de cada estado dentro del flujo normal; cancelado queda fuera.
var rangoEstado = map[string]int{
	EstadoPendiente:  0,
	EstadoConfirmado: 1,
	EstadoPreparando: 2,
	EstadoEnviado:    3,
	EstadoEntregado:  4,
}

// EstadoValido indica si el valor pertenece a la enumeración de seis estados.
func EstadoValido(estado string) bool {
	if estado == EstadoCancelado {
		return true
	}
	_, ok := rangoEstado[estado]
	return ok
}

// EstadoTerminal indica si el estado no admite más cambios (salvo re-fijar el mismo valor).
func EstadoTerminal(estado string) bool {
	return estado == EstadoEntregado || estado == EstadoCancelado
}

// EstadosContados son los estados que cuentan como venta en el dashboard
// (excluye pendiente y cancelado).
func EstadosContados() []string {
	return []string{EstadoConfirmado, EstadoPreparando, EstadoEnviado, EstadoEntregado}
}

// ValidarTransicion verifica el cambio actual → nuevo.
//
// Reglas: el valor nuevo debe pertenecer a la enumeración; re-fijar el mismo
// estado es idempotente y siempre válido; cancelado es alcanzable desde
// cualquier estado no terminal; desde un estado terminal no se sale; el flujo
// normal solo avanza (se permite saltar estados, nunca retroceder).
func ValidarTransicion(actual, nuevo string) error {
	if !EstadoValido(nuevo) {
		return domain.ErrEstadoInvalido
	}
	if actual == nuevo {
		return nil
	}
	if EstadoTerminal(actual) {
		return domain.ErrTransicionInvalida
	}
	if nuevo == EstadoCancelado {
		return nil
	}
	if rangoEstado[nuevo] < rangoEstado[actual] {
		return domain.ErrTransicionInvalida
	}
	return nil
}
