package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PedidoItemRequest línea del carrito al crear un pedido. El precio unitario
// viene del cliente: es el precio congelado al armar el carrito.
type PedidoItemRequest struct {
	ProductoID     int64           `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// CreatePedidoRequest datos para crear un pedido desde la tienda pública o el panel.
type CreatePedidoRequest struct {
	ClienteNombre   string              `json:"cliente_nombre"`
	ClienteEmail    string              `json:"cliente_email"`
	ClienteTelefono string              `json:"cliente_telefono"`
	Items           []PedidoItemRequest `json:"items"`
}

// UpdateEstadoRequest cambio de estado de un pedido.
type UpdateEstadoRequest struct {
	Estado string `json:"estado"`
}

// PedidoDetalleResponse línea de un pedido.
type PedidoDetalleResponse struct {
	ProductoID     int64           `json:"producto_id"`
	ProductoNombre string          `json:"producto_nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// PedidoResponse representación de un pedido con sus líneas.
type PedidoResponse struct {
	ID              int64                   `json:"id"`
	Codigo          string                  `json:"codigo"`
	Estado          string                  `json:"estado"`
	Subtotal        decimal.Decimal         `json:"subtotal"`
	Total           decimal.Decimal         `json:"total"`
	ClienteNombre   string                  `json:"cliente_nombre"`
	ClienteEmail    string                  `json:"cliente_email,omitempty"`
	ClienteTelefono string                  `json:"cliente_telefono,omitempty"`
	Detalles        []PedidoDetalleResponse `json:"detalles"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// PedidoListResponse listado paginado de pedidos.
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
