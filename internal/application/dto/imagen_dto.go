package dto

import "time"

// ImagenResponse una imagen de la galería de un producto.
type ImagenResponse struct {
	ID          int64     `json:"id"`
	ImagenURL   string    `json:"imagen_url"`
	Orden       int       `json:"orden"`
	EsPrincipal bool      `json:"es_principal"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReordenarImagenesRequest lista explícita de ids; la posición en la lista pasa
// a ser el orden de cada imagen.
type ReordenarImagenesRequest struct {
	ImagenIDs []int64 `json:"imagen_ids"`
}
