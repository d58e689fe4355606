package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Pedido es una orden de compra recibida por la tienda pública.
//
// Items guarda el snapshot JSON del carrito tal como llegó (representación
// redundante con los PedidoDetalle normalizados; ambos se escriben en la misma
// transacción).
type Pedido struct {
	ID              int64
	ComercianteID   int64
	Codigo          string // legible, formato PREFIJO-YYYYMMDD-NNNN
	Items           json.RawMessage
	Subtotal        decimal.Decimal
	Total           decimal.Decimal
	Estado          string
	ClienteNombre   string
	ClienteEmail    string
	ClienteTelefono string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Detalles []PedidoDetalle
}

// PedidoDetalle es una línea normalizada del pedido. PrecioUnitario es el
// precio capturado al momento del pedido; nunca se vuelve a leer del producto.
type PedidoDetalle struct {
	ID             int64
	PedidoID       int64
	ProductoID     int64
	ProductoNombre string // resuelto por join al listar; no es columna propia
	Cantidad       int
	PrecioUnitario decimal.Decimal
}
