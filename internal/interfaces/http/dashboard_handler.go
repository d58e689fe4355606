package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jadebro/livecommerce-api/internal/application/usecase"
)

// DashboardHandler expone el resumen del panel (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumen godoc
// @Summary      Resumen del dashboard del comerciante
// @Tags         dashboard
// @Security     Cookie
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.GetResumen(c.UserContext(), GetComercianteID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
