package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
)

const dashboardTopProductos = 5 // filas del widget de más vendidos

// DashboardUseCase arma el resumen del panel del comerciante.
//
// Fuente de datos: DashboardRepository (consultas read-only). Las seis
// consultas corren en paralelo; el resumen no es transaccional y puede
// reflejar escrituras intercaladas entre consultas.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetResumen construye el DashboardResponse del comerciante.
func (uc *DashboardUseCase) GetResumen(ctx context.Context, comercianteID int64) (*dto.DashboardResponse, error) {
	type countResult struct {
		n   int64
		err error
	}
	type ventasResult struct {
		total decimal.Decimal
		err   error
	}
	type topResult struct {
		filas []repository.TopProducto
		err   error
	}
	type diasResult struct {
		dias []repository.VentaDia
		err  error
	}

	totalCh := make(chan countResult, 1)
	ventasCh := make(chan ventasResult, 1)
	pendientesCh := make(chan countResult, 1)
	activosCh := make(chan countResult, 1)
	topCh := make(chan topResult, 1)
	diasCh := make(chan diasResult, 1)

	go func() {
		n, err := uc.dashboardRepo.TotalPedidos(ctx, comercianteID)
		totalCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.dashboardRepo.VentasTotales(ctx, comercianteID)
		ventasCh <- ventasResult{total, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.PedidosPendientes(ctx, comercianteID)
		pendientesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.ProductosActivos(ctx, comercianteID)
		activosCh <- countResult{n, err}
	}()
	go func() {
		filas, err := uc.dashboardRepo.TopProductos(ctx, comercianteID, dashboardTopProductos)
		topCh <- topResult{filas, err}
	}()
	go func() {
		dias, err := uc.dashboardRepo.VentasUltimos7Dias(ctx, comercianteID)
		diasCh <- diasResult{dias, err}
	}()

	total := <-totalCh
	ventas := <-ventasCh
	pendientes := <-pendientesCh
	activos := <-activosCh
	top := <-topCh
	dias := <-diasCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total de pedidos: %w", total.err)
	}
	if ventas.err != nil {
		return nil, fmt.Errorf("dashboard: ventas totales: %w", ventas.err)
	}
	if pendientes.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos pendientes: %w", pendientes.err)
	}
	if activos.err != nil {
		return nil, fmt.Errorf("dashboard: productos activos: %w", activos.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}
	if dias.err != nil {
		return nil, fmt.Errorf("dashboard: ventas por día: %w", dias.err)
	}

	topDTO := make([]dto.TopProductoDTO, 0, len(top.filas))
	for _, f := range top.filas {
		topDTO = append(topDTO, dto.TopProductoDTO{
			ProductoID:      f.ProductoID,
			Nombre:          f.Nombre,
			CantidadVendida: f.CantidadVendida,
			TotalVendido:    f.TotalVendido.Round(2),
		})
	}
	diasDTO := make([]dto.VentaDiaDTO, 0, len(dias.dias))
	for _, d := range dias.dias {
		diasDTO = append(diasDTO, dto.VentaDiaDTO{Fecha: d.Fecha, Total: d.Total.Round(2)})
	}

	return &dto.DashboardResponse{
		TotalPedidos:      total.n,
		VentasTotales:     ventas.total.Round(2),
		PedidosPendientes: pendientes.n,
		ProductosActivos:  activos.n,
		TopProductos:      topDTO,
		VentasPorDia:      diasDTO,
	}, nil
}
