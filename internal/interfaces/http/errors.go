package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
)

// exponerErrores controla si el detalle de un error interno viaja al cliente.
// Solo en development; en cualquier otro entorno el detalle queda en el log y
// el cliente recibe un mensaje genérico.
var exponerErrores = false

func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("ruta", c.Path()).Msg("error interno")
	msg := "error interno"
	if exponerErrores {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msg})
}
