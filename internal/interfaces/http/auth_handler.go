package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jadebro/livecommerce-api/internal/application/auth"
	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/application/session"
	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/pkg/config"
)

// AuthHandler maneja registro, login y sesión del panel.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	store   session.Store
	cookies config.SessionConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, store session.Store, cookies config.SessionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, store: store, cookies: cookies}
}

// setSessionCookie crea la sesión del lado del servidor y deja el id opaco en
// la cookie HttpOnly.
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, comerciante *dto.ComercianteResponse) error {
	id, err := h.store.Create(c.UserContext(), session.Datos{
		ComercianteID: comerciante.ID,
		Email:         comerciante.Email,
		Nombre:        comerciante.Nombre,
		Slug:          comerciante.Slug,
	})
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookies.CookieName,
		Value:    id,
		Expires:  time.Now().Add(time.Duration(h.cookies.TTLMinutes) * time.Minute),
		HTTPOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// Register godoc
// @Summary      Registrar comerciante
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de registro"
// @Success      201   {object}  dto.ComercianteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NombreComercio == "" || in.NombreUsuario == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombreComercio, nombreUsuario, email y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		switch err {
		case domain.ErrSlugEnUso:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SLUG_EN_USO", Message: "el nombre de usuario ya está tomado"})
		case domain.ErrEmailEnUso:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EN_USO", Message: "el email ya está registrado"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre de usuario o plan inválido"})
		}
		return internalError(c, err)
	}
	if err := h.setSessionCookie(c, out); err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.ComercianteResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if err == domain.ErrCredenciales {
			// Mensaje único: no se revela si falló el email o la contraseña.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "CREDENCIALES", Message: "Email o contraseña incorrectos"})
		}
		return internalError(c, err)
	}
	if err := h.setSessionCookie(c, out); err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if id := c.Cookies(h.cookies.CookieName); id != "" {
		// La sesión se destruye del lado del servidor; limpiar la cookie es cortesía.
		_ = h.store.Destroy(c.UserContext(), id)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookies.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Identidad del comerciante autenticado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.ComercianteResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	email, _ := c.Locals(LocalEmail).(string)
	nombre, _ := c.Locals(LocalNombre).(string)
	slug, _ := c.Locals(LocalSlug).(string)
	return c.JSON(dto.ComercianteResponse{
		ID:     GetComercianteID(c),
		Nombre: nombre,
		Email:  email,
		Slug:   slug,
	})
}
