package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/application/usecase"
	"github.com/jadebro/livecommerce-api/internal/domain"
)

// TiendaHandler maneja la configuración del perfil de la tienda (protegido).
type TiendaHandler struct {
	uc *usecase.TiendaUseCase
}

// NewTiendaHandler construye el handler.
func NewTiendaHandler(uc *usecase.TiendaUseCase) *TiendaHandler {
	return &TiendaHandler{uc: uc}
}

// GetConfig godoc
// @Summary      Obtener perfil de la tienda
// @Tags         tienda
// @Security     Cookie
// @Produce      json
// @Success      200  {object}  dto.TiendaResponse
// @Router       /api/tienda [get]
func (h *TiendaHandler) GetConfig(c *fiber.Ctx) error {
	out, err := h.uc.GetConfig(c.UserContext(), GetComercianteID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// UpdateConfig godoc
// @Summary      Actualizar perfil de la tienda
// @Tags         tienda
// @Security     Cookie
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateTiendaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TiendaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tienda [put]
func (h *TiendaHandler) UpdateConfig(c *fiber.Ctx) error {
	var in dto.UpdateTiendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateConfig(c.UserContext(), GetComercianteID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre no puede quedar vacío"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}
