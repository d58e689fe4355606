package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto del catálogo de un comerciante.
//
// La categoría tiene doble representación: Categoria (nombre, denormalizado,
// escrito por el front antiguo) y CategoriaID (normalizado). La operación de
// reconciliación vuelve a enlazar CategoriaID por nombre exacto dentro del
// mismo comerciante.
type Producto struct {
	ID               int64
	ComercianteID    int64
	Nombre           string
	Descripcion      string
	DescripcionLarga string
	Precio           decimal.Decimal
	PrecioOferta     *decimal.Decimal // precio rebajado; debe ser menor a Precio
	Stock            int
	MostrarStock     bool
	Categoria        string // nombre denormalizado
	CategoriaID      *int64 // referencia normalizada; nil si aún no se reconcilió
	ImagenURL        string // imagen principal heredada (previa a la galería)
	UsaGaleria       bool
	Activo           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OfertaValida verifica la invariante precio_oferta < precio (cuando hay oferta).
func (p *Producto) OfertaValida() bool {
	if p.PrecioOferta == nil {
		return true
	}
	return p.PrecioOferta.LessThan(p.Precio)
}
