package entity

import "time"

// Tienda es el perfil público del comerciante (1:1 con Comerciante).
// Subdominio duplica Comerciante.Slug; ambas columnas se escriben desde el
// mismo valor normalizado en el registro y Subdominio no es editable después.
type Tienda struct {
	ID              int64
	ComercianteID   int64
	Nombre          string
	Subdominio      string
	Descripcion     string
	Whatsapp        string
	ColorPrimario   string
	ColorSecundario string
	Activa          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
