package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest datos para crear un producto.
type CreateProductoRequest struct {
	Nombre           string           `json:"nombre"`
	Descripcion      string           `json:"descripcion"`
	DescripcionLarga string           `json:"descripcion_larga"`
	Precio           decimal.Decimal  `json:"precio"`
	PrecioOferta     *decimal.Decimal `json:"precio_oferta"`
	Stock            int              `json:"stock"`
	MostrarStock     *bool            `json:"mostrar_stock"`
	Categoria        string           `json:"categoria"`
	CategoriaID      *int64           `json:"categoria_id"`
	ImagenURL        string           `json:"imagen_url"`
}

// UpdateProductoRequest campos opcionales a actualizar (nil = sin cambio).
type UpdateProductoRequest struct {
	Nombre           *string          `json:"nombre"`
	Descripcion      *string          `json:"descripcion"`
	DescripcionLarga *string          `json:"descripcion_larga"`
	Precio           *decimal.Decimal `json:"precio"`
	PrecioOferta     *decimal.Decimal `json:"precio_oferta"`
	QuitarOferta     bool             `json:"quitar_oferta"`
	Stock            *int             `json:"stock"`
	MostrarStock     *bool            `json:"mostrar_stock"`
	Categoria        *string          `json:"categoria"`
	CategoriaID      *int64           `json:"categoria_id"`
	ImagenURL        *string          `json:"imagen_url"`
	Activo           *bool            `json:"activo"`
}

// ProductoResponse representación pública/admin de un producto.
type ProductoResponse struct {
	ID               int64            `json:"id"`
	Nombre           string           `json:"nombre"`
	Descripcion      string           `json:"descripcion"`
	DescripcionLarga string           `json:"descripcion_larga,omitempty"`
	Precio           decimal.Decimal  `json:"precio"`
	PrecioOferta     *decimal.Decimal `json:"precio_oferta,omitempty"`
	Stock            int              `json:"stock"`
	MostrarStock     bool             `json:"mostrar_stock"`
	Categoria        string           `json:"categoria,omitempty"`
	CategoriaID      *int64           `json:"categoria_id,omitempty"`
	ImagenURL        string           `json:"imagen_url,omitempty"`
	UsaGaleria       bool             `json:"usa_galeria"`
	Activo           bool             `json:"activo"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductoListResponse listado paginado de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ReconciliacionResponse resultado de la reconciliación de categorías.
type ReconciliacionResponse struct {
	ProductosEnlazados int64 `json:"productos_enlazados"`
}
