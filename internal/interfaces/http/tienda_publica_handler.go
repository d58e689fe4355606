package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/application/usecase"
	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
)

// TiendaPublicaHandler expone la tienda pública: perfil, catálogo y creación
// de pedidos, todo resuelto por slug y sin sesión.
type TiendaPublicaHandler struct {
	tiendaUC   *usecase.TiendaUseCase
	productoUC *usecase.ProductoUseCase
	imagenUC   *usecase.ImagenUseCase
	pedidoUC   *usecase.PedidoUseCase
}

// NewTiendaPublicaHandler construye el handler.
func NewTiendaPublicaHandler(
	tiendaUC *usecase.TiendaUseCase,
	productoUC *usecase.ProductoUseCase,
	imagenUC *usecase.ImagenUseCase,
	pedidoUC *usecase.PedidoUseCase,
) *TiendaPublicaHandler {
	return &TiendaPublicaHandler{
		tiendaUC:   tiendaUC,
		productoUC: productoUC,
		imagenUC:   imagenUC,
		pedidoUC:   pedidoUC,
	}
}

// resolver resuelve el slug a tienda+comerciante activos. Una tienda
// inexistente o desactivada responde el mismo 404.
func (h *TiendaPublicaHandler) resolver(c *fiber.Ctx) (*repository.TiendaResuelta, error) {
	resuelta, err := h.tiendaUC.Resolver(c.UserContext(), c.Params("slug"))
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return nil, internalError(c, err)
	}
	return resuelta, nil
}

// GetTienda godoc
// @Summary      Perfil público de la tienda
// @Tags         public
// @Produce      json
// @Param        slug  path  string  true  "Slug de la tienda"
// @Success      200   {object}  dto.TiendaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/public/tiendas/{slug} [get]
func (h *TiendaPublicaHandler) GetTienda(c *fiber.Ctx) error {
	resuelta, err := h.resolver(c)
	if resuelta == nil {
		return err
	}
	t := resuelta.Tienda
	return c.JSON(dto.TiendaResponse{
		ID:              t.ID,
		Nombre:          t.Nombre,
		Subdominio:      t.Subdominio,
		Descripcion:     t.Descripcion,
		Whatsapp:        t.Whatsapp,
		ColorPrimario:   t.ColorPrimario,
		ColorSecundario: t.ColorSecundario,
	})
}

// ListProductos godoc
// @Summary      Catálogo público de la tienda (solo productos activos)
// @Tags         public
// @Produce      json
// @Param        slug    path   string  true   "Slug de la tienda"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductoListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/public/tiendas/{slug}/productos [get]
func (h *TiendaPublicaHandler) ListProductos(c *fiber.Ctx) error {
	resuelta, err := h.resolver(c)
	if resuelta == nil {
		return err
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.productoUC.ListPublico(c.UserContext(), resuelta.Comerciante.ID, page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetProducto godoc
// @Summary      Detalle público de un producto activo
// @Tags         public
// @Produce      json
// @Param        slug  path  string  true  "Slug de la tienda"
// @Param        id    path  int     true  "ID del producto"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/public/tiendas/{slug}/productos/{id} [get]
func (h *TiendaPublicaHandler) GetProducto(c *fiber.Ctx) error {
	resuelta, err := h.resolver(c)
	if resuelta == nil {
		return err
	}
	id, perr := c.ParamsInt("id")
	if perr != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.productoUC.GetPublico(c.UserContext(), int64(id), resuelta.Comerciante.ID)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// ListImagenes godoc
// @Summary      Galería pública de un producto activo
// @Tags         public
// @Produce      json
// @Param        slug  path  string  true  "Slug de la tienda"
// @Param        id    path  int     true  "ID del producto"
// @Success      200   {array}  dto.ImagenResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/public/tiendas/{slug}/productos/{id}/imagenes [get]
func (h *TiendaPublicaHandler) ListImagenes(c *fiber.Ctx) error {
	resuelta, err := h.resolver(c)
	if resuelta == nil {
		return err
	}
	id, perr := c.ParamsInt("id")
	if perr != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.imagenUC.ListPublica(c.UserContext(), int64(id), resuelta.Comerciante.ID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// CreatePedido godoc
// @Summary      Crear pedido desde la tienda pública
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        slug  path  string  true  "Slug de la tienda"
// @Param        body  body  dto.CreatePedidoRequest  true  "Carrito del cliente"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/public/tiendas/{slug}/pedidos [post]
func (h *TiendaPublicaHandler) CreatePedido(c *fiber.Ctx) error {
	resuelta, err := h.resolver(c)
	if resuelta == nil {
		return err
	}
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.pedidoUC.Create(c.UserContext(), resuelta.Comerciante.ID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente_nombre e items con cantidad positiva son requeridos"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SlugDisponible godoc
// @Summary      Verificar disponibilidad de un slug
// @Tags         public
// @Produce      json
// @Param        slug  query  string  true  "Texto a verificar"
// @Success      200   {object}  dto.SlugDisponibleResponse
// @Router       /api/public/slug-disponible [get]
func (h *TiendaPublicaHandler) SlugDisponible(c *fiber.Ctx) error {
	out, err := h.tiendaUC.SlugDisponible(c.UserContext(), c.Query("slug"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
