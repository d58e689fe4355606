package usecase

import (
	"context"
	"time"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
)

// ProductoUseCase CRUD de productos del catálogo, siempre scoped al comerciante.
type ProductoUseCase struct {
	productoRepo    repository.ProductoRepository
	comercianteRepo repository.ComercianteRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productoRepo repository.ProductoRepository, comercianteRepo repository.ComercianteRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo, comercianteRepo: comercianteRepo}
}

// Create crea un producto.
//
// En el plan gratuito se cuenta el catálogo actual y se rechaza con
// ErrLimitePlan al llegar al tope (el producto 10 entra, el 11 no).
// La oferta debe ser menor al precio.
func (uc *ProductoUseCase) Create(ctx context.Context, comercianteID int64, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Precio.IsNegative() || in.Precio.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	comerciante, err := uc.comercianteRepo.GetByID(ctx, comercianteID)
	if err != nil {
		return nil, err
	}
	if comerciante == nil {
		return nil, domain.ErrNotFound
	}
	if comerciante.Plan == entity.PlanGratis {
		n, err := uc.productoRepo.CountByComerciante(ctx, comercianteID)
		if err != nil {
			return nil, err
		}
		if n >= entity.LimiteProductosGratis {
			return nil, domain.ErrLimitePlan
		}
	}

	mostrarStock := true
	if in.MostrarStock != nil {
		mostrarStock = *in.MostrarStock
	}
	now := time.Now()
	producto := &entity.Producto{
		ComercianteID:    comercianteID,
		Nombre:           in.Nombre,
		Descripcion:      in.Descripcion,
		DescripcionLarga: in.DescripcionLarga,
		Precio:           in.Precio,
		PrecioOferta:     in.PrecioOferta,
		Stock:            in.Stock,
		MostrarStock:     mostrarStock,
		Categoria:        in.Categoria,
		CategoriaID:      in.CategoriaID,
		ImagenURL:        in.ImagenURL,
		Activo:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if !producto.OfertaValida() {
		return nil, domain.ErrOfertaInvalida
	}
	if err := uc.productoRepo.Create(ctx, producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto del comerciante; nil si no existe o no es suyo.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id, comercianteID int64) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(ctx, id, comercianteID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Update actualiza los campos presentes, scoped por (id, comerciante).
func (uc *ProductoUseCase) Update(ctx context.Context, id, comercianteID int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(ctx, id, comercianteID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.DescripcionLarga != nil {
		producto.DescripcionLarga = *in.DescripcionLarga
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() || in.Precio.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.QuitarOferta {
		producto.PrecioOferta = nil
	} else if in.PrecioOferta != nil {
		producto.PrecioOferta = in.PrecioOferta
	}
	if in.Stock != nil {
		producto.Stock = *in.Stock
	}
	if in.MostrarStock != nil {
		producto.MostrarStock = *in.MostrarStock
	}
	if in.Categoria != nil {
		producto.Categoria = *in.Categoria
	}
	if in.CategoriaID != nil {
		producto.CategoriaID = in.CategoriaID
	}
	if in.ImagenURL != nil {
		producto.ImagenURL = *in.ImagenURL
	}
	if in.Activo != nil {
		producto.Activo = *in.Activo
	}
	if !producto.OfertaValida() {
		return nil, domain.ErrOfertaInvalida
	}
	producto.UpdatedAt = time.Now()
	if err := uc.productoRepo.Update(ctx, producto); err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista los productos del comerciante con paginación.
func (uc *ProductoUseCase) List(ctx context.Context, comercianteID int64, limit, offset int) (*dto.ProductoListResponse, error) {
	list, err := uc.productoRepo.ListByComerciante(ctx, comercianteID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductoList(list, limit, offset), nil
}

// ListPublico lista el catálogo público de la tienda: solo productos activos.
func (uc *ProductoUseCase) ListPublico(ctx context.Context, comercianteID int64, limit, offset int) (*dto.ProductoListResponse, error) {
	list, err := uc.productoRepo.ListActivos(ctx, comercianteID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductoList(list, limit, offset), nil
}

// GetPublico obtiene un producto para la tienda pública; los inactivos no
// existen para el visitante.
func (uc *ProductoUseCase) GetPublico(ctx context.Context, id, comercianteID int64) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(ctx, id, comercianteID)
	if err != nil {
		return nil, err
	}
	if producto == nil || !producto.Activo {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Delete borra un producto; ErrNotFound cubre "no existe" y "no es tuyo".
func (uc *ProductoUseCase) Delete(ctx context.Context, id, comercianteID int64) error {
	return uc.productoRepo.Delete(ctx, id, comercianteID)
}

// ReconciliarCategorias enlaza categoria_id por nombre dentro del comerciante.
func (uc *ProductoUseCase) ReconciliarCategorias(ctx context.Context, comercianteID int64) (*dto.ReconciliacionResponse, error) {
	n, err := uc.productoRepo.ReconciliarCategorias(ctx, comercianteID)
	if err != nil {
		return nil, err
	}
	return &dto.ReconciliacionResponse{ProductosEnlazados: n}, nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		DescripcionLarga: p.DescripcionLarga,
		Precio:           p.Precio,
		PrecioOferta:     p.PrecioOferta,
		Stock:            p.Stock,
		MostrarStock:     p.MostrarStock,
		Categoria:        p.Categoria,
		CategoriaID:      p.CategoriaID,
		ImagenURL:        p.ImagenURL,
		UsaGaleria:       p.UsaGaleria,
		Activo:           p.Activo,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toProductoList(list []*entity.Producto, limit, offset int) *dto.ProductoListResponse {
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
