package entity

import "time"

// Categoria agrupa productos dentro de un comerciante. Nombre único por tenant.
type Categoria struct {
	ID            int64
	ComercianteID int64
	Nombre        string
	Descripcion   string
	Activa        bool
	CreatedAt     time.Time
}
