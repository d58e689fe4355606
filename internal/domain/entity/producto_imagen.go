package entity

import "time"

// ProductoImagen es una imagen de la galería de un producto.
//
// Orden es denso y base cero por producto; tras borrar una imagen el resto se
// reempaqueta preservando el orden previo. A lo sumo una imagen por producto
// tiene EsPrincipal = true.
type ProductoImagen struct {
	ID          int64
	ProductoID  int64
	ImagenURL   string
	PublicID    string // identificador en el host externo, usado para el borrado remoto
	Orden       int
	EsPrincipal bool
	CreatedAt   time.Time
}
