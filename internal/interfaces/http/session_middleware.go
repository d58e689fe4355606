package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/application/session"
)

// Locals keys para la identidad del comerciante en Fiber.
const (
	LocalComercianteID = "comerciante_id"
	LocalEmail         = "comerciante_email"
	LocalNombre        = "comerciante_nombre"
	LocalSlug          = "comerciante_slug"
)

// SessionMiddleware valida la cookie de sesión contra el store y deja la
// identidad del comerciante en c.Locals. Cualquier fallo (cookie ausente,
// sesión inexistente o expirada) responde el mismo 401.
func SessionMiddleware(store session.Store, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cookieName)
		if id == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		datos, ok := store.Get(c.UserContext(), id)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		c.Locals(LocalComercianteID, datos.ComercianteID)
		c.Locals(LocalEmail, datos.Email)
		c.Locals(LocalNombre, datos.Nombre)
		c.Locals(LocalSlug, datos.Slug)
		return c.Next()
	}
}

// GetComercianteID devuelve el id del comerciante autenticado; 0 si no hay sesión.
func GetComercianteID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalComercianteID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}
