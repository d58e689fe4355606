package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrSlugEnUso          = errors.New("este nombre de usuario ya está en uso")
	ErrEmailEnUso         = errors.New("este email ya está registrado")
	ErrCredenciales       = errors.New("email o contraseña incorrectos")
	ErrLimitePlan         = errors.New("límite de productos del plan gratuito alcanzado")
	ErrCategoriaEnUso     = errors.New("la categoría tiene productos asociados")
	ErrEstadoInvalido     = errors.New("estado de pedido inválido")
	ErrTransicionInvalida = errors.New("transición de estado no permitida")
	ErrOfertaInvalida     = errors.New("el precio de oferta debe ser menor al precio")
)
