package dto

import "time"

// CreateCategoriaRequest datos para crear una categoría.
type CreateCategoriaRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// UpdateCategoriaRequest campos opcionales a actualizar (nil = sin cambio).
type UpdateCategoriaRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Activa      *bool   `json:"activa"`
}

// CategoriaResponse representación de una categoría.
type CategoriaResponse struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
	Activa      bool      `json:"activa"`
	CreatedAt   time.Time `json:"created_at"`
}
