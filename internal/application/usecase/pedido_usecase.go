package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/internal/domain/pedido"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
)

// maxIntentosCodigo reintentos de generación ante colisión del código legible.
const maxIntentosCodigo = 3

// PedidoTxRunner puerto transaccional de pedidos: cabecera y detalles se
// insertan todo-o-nada.
type PedidoTxRunner interface {
	RunPedido(ctx context.Context, fn func(pedidoRepo repository.PedidoRepository) error) error
}

// ReciboGenerator puerto de salida para el comprobante PDF de un pedido.
type ReciboGenerator interface {
	GenerarRecibo(ctx context.Context, p *entity.Pedido, t *entity.Tienda) ([]byte, error)
}

// PedidoUseCase creación, listado y cambio de estado de pedidos.
type PedidoUseCase struct {
	pedidoRepo repository.PedidoRepository
	tiendaRepo repository.TiendaRepository
	txRunner   PedidoTxRunner
	generador  *pedido.GeneradorCodigo
	recibos    ReciboGenerator
}

// NewPedidoUseCase construye el caso de uso. recibos puede ser nil si el
// comprobante PDF está deshabilitado.
func NewPedidoUseCase(
	pedidoRepo repository.PedidoRepository,
	tiendaRepo repository.TiendaRepository,
	txRunner PedidoTxRunner,
	generador *pedido.GeneradorCodigo,
	recibos ReciboGenerator,
) *PedidoUseCase {
	return &PedidoUseCase{
		pedidoRepo: pedidoRepo,
		tiendaRepo: tiendaRepo,
		txRunner:   txRunner,
		generador:  generador,
		recibos:    recibos,
	}
}

// Create crea un pedido con sus líneas en una sola transacción.
//
// El precio unitario de cada línea es el que envió el cliente: queda congelado
// en el detalle y en el snapshot JSON, y no se vuelve a leer del producto. No
// se valida stock ni se descuenta (decisión explícita: el precio se fija al
// armar el carrito).
//
// El código legible puede colisionar (sufijo aleatorio de 4 dígitos); ante
// violación del único se regenera hasta maxIntentosCodigo veces.
func (uc *PedidoUseCase) Create(ctx context.Context, comercianteID int64, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	if in.ClienteNombre == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	subtotal := decimal.Zero
	for _, item := range in.Items {
		if item.ProductoID <= 0 || item.Cantidad <= 0 || item.PrecioUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		subtotal = subtotal.Add(item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad))))
	}

	snapshot, err := json.Marshal(in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &entity.Pedido{
		ComercianteID:   comercianteID,
		Items:           snapshot,
		Subtotal:        subtotal,
		Total:           subtotal,
		Estado:          pedido.EstadoPendiente,
		ClienteNombre:   in.ClienteNombre,
		ClienteEmail:    in.ClienteEmail,
		ClienteTelefono: in.ClienteTelefono,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for intento := 1; ; intento++ {
		p.Codigo = uc.generador.Generar(now)
		err = uc.txRunner.RunPedido(ctx, func(pedidoRepo repository.PedidoRepository) error {
			if err := pedidoRepo.Create(ctx, p); err != nil {
				return err
			}
			for i := range in.Items {
				d := entity.PedidoDetalle{
					PedidoID:       p.ID,
					ProductoID:     in.Items[i].ProductoID,
					Cantidad:       in.Items[i].Cantidad,
					PrecioUnitario: in.Items[i].PrecioUnitario,
				}
				if err := pedidoRepo.CreateDetalle(ctx, &d); err != nil {
					return err
				}
				p.Detalles = append(p.Detalles, d)
			}
			return nil
		})
		if err != domain.ErrDuplicate {
			break
		}
		p.Detalles = nil
		if intento == maxIntentosCodigo {
			log.Warn().Str("codigo", p.Codigo).Msg("colisión de código de pedido agotó reintentos")
			return nil, err
		}
		log.Debug().Str("codigo", p.Codigo).Int("intento", intento).Msg("colisión de código de pedido, regenerando")
	}
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// UpdateEstado cambia el estado tras validar la transición.
//
// Lee el estado actual scoped por comerciante (ausente == ajeno == 404),
// valida contra la enumeración y persiste. Re-fijar el mismo estado es válido
// y no toca la fila.
func (uc *PedidoUseCase) UpdateEstado(ctx context.Context, id, comercianteID int64, estado string) (*dto.PedidoResponse, error) {
	actual, err := uc.pedidoRepo.GetEstado(ctx, id, comercianteID)
	if err != nil {
		return nil, err
	}
	if actual == "" {
		return nil, domain.ErrNotFound
	}
	if err := pedido.ValidarTransicion(actual, estado); err != nil {
		return nil, err
	}
	if actual != estado {
		if err := uc.pedidoRepo.UpdateEstado(ctx, id, comercianteID, estado); err != nil {
			return nil, err
		}
	}
	p, err := uc.pedidoRepo.GetByID(ctx, id, comercianteID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPedidoResponse(p), nil
}

// List lista pedidos del comerciante, más recientes primero, con sus líneas.
func (uc *PedidoUseCase) List(ctx context.Context, comercianteID int64, limit, offset int) (*dto.PedidoListResponse, error) {
	list, err := uc.pedidoRepo.ListByComerciante(ctx, comercianteID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPedidoResponse(p))
	}
	return &dto.PedidoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetByID obtiene un pedido del comerciante; nil si no coincide.
func (uc *PedidoUseCase) GetByID(ctx context.Context, id, comercianteID int64) (*dto.PedidoResponse, error) {
	p, err := uc.pedidoRepo.GetByID(ctx, id, comercianteID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPedidoResponse(p), nil
}

// Recibo genera el comprobante PDF del pedido.
func (uc *PedidoUseCase) Recibo(ctx context.Context, id, comercianteID int64) ([]byte, error) {
	if uc.recibos == nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.pedidoRepo.GetByID(ctx, id, comercianteID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	tienda, err := uc.tiendaRepo.GetByComerciante(ctx, comercianteID)
	if err != nil {
		return nil, err
	}
	if tienda == nil {
		return nil, domain.ErrNotFound
	}
	return uc.recibos.GenerarRecibo(ctx, p, tienda)
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	detalles := make([]dto.PedidoDetalleResponse, 0, len(p.Detalles))
	for _, d := range p.Detalles {
		detalles = append(detalles, dto.PedidoDetalleResponse{
			ProductoID:     d.ProductoID,
			ProductoNombre: d.ProductoNombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		})
	}
	return &dto.PedidoResponse{
		ID:              p.ID,
		Codigo:          p.Codigo,
		Estado:          p.Estado,
		Subtotal:        p.Subtotal,
		Total:           p.Total,
		ClienteNombre:   p.ClienteNombre,
		ClienteEmail:    p.ClienteEmail,
		ClienteTelefono: p.ClienteTelefono,
		Detalles:        detalles,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
