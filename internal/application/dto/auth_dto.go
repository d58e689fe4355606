package dto

// RegisterRequest datos de registro de un comerciante nuevo.
// NombreUsuario se normaliza a slug; NombreComercio nombra la tienda.
type RegisterRequest struct {
	Plan           string `json:"plan"`
	NombreComercio string `json:"nombreComercio"`
	NombreUsuario  string `json:"nombreUsuario"`
	RubroComercio  string `json:"rubroComercio"`
	Whatsapp       string `json:"whatsapp"`
	Pais           string `json:"pais"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	SubscriptionID string `json:"subscription_id"`
}

// LoginRequest credenciales de acceso al panel.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ComercianteResponse identidad del comerciante autenticado.
type ComercianteResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Slug   string `json:"slug"`
}
