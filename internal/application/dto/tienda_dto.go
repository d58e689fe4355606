package dto

// UpdateTiendaRequest campos editables del perfil de la tienda.
// El subdominio no es editable: siempre refleja el slug del comerciante.
type UpdateTiendaRequest struct {
	Nombre          *string `json:"nombre"`
	Descripcion     *string `json:"descripcion"`
	Whatsapp        *string `json:"whatsapp"`
	ColorPrimario   *string `json:"color_primario"`
	ColorSecundario *string `json:"color_secundario"`
}

// TiendaResponse perfil de la tienda.
type TiendaResponse struct {
	ID              int64  `json:"id"`
	Nombre          string `json:"nombre"`
	Subdominio      string `json:"subdominio"`
	Descripcion     string `json:"descripcion,omitempty"`
	Whatsapp        string `json:"whatsapp,omitempty"`
	ColorPrimario   string `json:"color_primario,omitempty"`
	ColorSecundario string `json:"color_secundario,omitempty"`
}

// SlugDisponibleResponse respuesta del chequeo público de slug.
type SlugDisponibleResponse struct {
	Slug       string `json:"slug"`
	Disponible bool   `json:"disponible"`
}
