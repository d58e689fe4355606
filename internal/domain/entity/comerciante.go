package entity

import "time"

// Planes de suscripción disponibles.
const (
	PlanGratis     = "gratis"
	PlanPro        = "pro"
	PlanJadebro    = "jadebro"
	PlanJadebroMax = "jadebro-max"
)

// LimiteProductosGratis tope de productos para el plan gratuito.
const LimiteProductosGratis = 10

// PlanValido indica si el plan pertenece al catálogo de planes conocidos.
func PlanValido(plan string) bool {
	switch plan {
	case PlanGratis, PlanPro, PlanJadebro, PlanJadebroMax:
		return true
	}
	return false
}

// Comerciante representa la cuenta tenant dueña de una tienda, su catálogo y sus pedidos.
// La baja es lógica (Activo = false); nunca se borra la fila.
type Comerciante struct {
	ID             int64
	Nombre         string
	Slug           string // identificador público único, usado en URLs de la tienda
	Email          string // único, siempre en minúsculas
	PasswordHash   string
	Whatsapp       string
	Pais           string
	Rubro          string
	Plan           string
	SubscriptionID string // id de suscripción del proveedor de pagos; vacío si no aplica
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
