package dto

import "github.com/shopspring/decimal"

// TopProductoDTO fila del widget top-5 del dashboard.
type TopProductoDTO struct {
	ProductoID      int64           `json:"producto_id"`
	Nombre          string          `json:"nombre"`
	CantidadVendida int64           `json:"cantidad_vendida"`
	TotalVendido    decimal.Decimal `json:"total_vendido"`
}

// VentaDiaDTO suma de ventas de un día.
type VentaDiaDTO struct {
	Fecha string          `json:"fecha"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// DashboardResponse resumen del dashboard del comerciante.
// VentasTotales solo cuenta estados confirmado/preparando/enviado/entregado.
type DashboardResponse struct {
	TotalPedidos      int64            `json:"total_pedidos"`
	VentasTotales     decimal.Decimal  `json:"ventas_totales"`
	PedidosPendientes int64            `json:"pedidos_pendientes"`
	ProductosActivos  int64            `json:"productos_activos"`
	TopProductos      []TopProductoDTO `json:"top_productos"`
	VentasPorDia      []VentaDiaDTO    `json:"ventas_por_dia"`
}
