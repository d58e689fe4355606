package http

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/application/usecase"
	"github.com/jadebro/livecommerce-api/internal/domain"
)

// ImagenHandler maneja la galería de imágenes de un producto (protegido).
type ImagenHandler struct {
	uc *usecase.ImagenUseCase
}

// NewImagenHandler construye el handler.
func NewImagenHandler(uc *usecase.ImagenUseCase) *ImagenHandler {
	return &ImagenHandler{uc: uc}
}

func leerArchivo(fh *multipart.FileHeader) (usecase.ArchivoImagen, error) {
	f, err := fh.Open()
	if err != nil {
		return usecase.ArchivoImagen{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return usecase.ArchivoImagen{}, err
	}
	return usecase.ArchivoImagen{
		Nombre:   fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}

func (h *ImagenHandler) productoID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

// Upload godoc
// @Summary      Subir una imagen a la galería
// @Tags         imagenes
// @Security     Cookie
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path  int   true  "ID del producto"
// @Param        imagen  formData  file  true  "Archivo de imagen"
// @Success      201     {object}  dto.ImagenResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/imagenes [post]
func (h *ImagenHandler) Upload(c *fiber.Ctx) error {
	productoID, ok := h.productoID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	fh, err := c.FormFile("imagen")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "campo multipart 'imagen' requerido"})
	}
	archivo, err := leerArchivo(fh)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	out, err := h.uc.Upload(c.UserContext(), productoID, GetComercianteID(c), archivo)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UploadMulti godoc
// @Summary      Subir varias imágenes a la galería
// @Tags         imagenes
// @Security     Cookie
// @Accept       multipart/form-data
// @Produce      json
// @Param        id        path  int   true  "ID del producto"
// @Param        imagenes  formData  file  true  "Archivos de imagen"
// @Success      201       {array}  dto.ImagenResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/imagenes/multiple [post]
func (h *ImagenHandler) UploadMulti(c *fiber.Ctx) error {
	productoID, ok := h.productoID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "multipart inválido"})
	}
	fhs := form.File["imagenes"]
	if len(fhs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "campo multipart 'imagenes' requerido"})
	}
	archivos := make([]usecase.ArchivoImagen, 0, len(fhs))
	for _, fh := range fhs {
		a, err := leerArchivo(fh)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
		}
		archivos = append(archivos, a)
	}
	out, err := h.uc.UploadMulti(c.UserContext(), productoID, GetComercianteID(c), archivos)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar la galería del producto
// @Tags         imagenes
// @Security     Cookie
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {array}  dto.ImagenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/imagenes [get]
func (h *ImagenHandler) List(c *fiber.Ctx) error {
	productoID, ok := h.productoID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.List(c.UserContext(), productoID, GetComercianteID(c))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// SetPrincipal godoc
// @Summary      Marcar imagen como principal
// @Tags         imagenes
// @Security     Cookie
// @Param        id        path  int  true  "ID del producto"
// @Param        imagenId  path  int  true  "ID de la imagen"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/imagenes/{imagenId}/principal [put]
func (h *ImagenHandler) SetPrincipal(c *fiber.Ctx) error {
	productoID, ok := h.productoID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	imagenID, err := c.ParamsInt("imagenId")
	if err != nil || imagenID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "imagenId inválido"})
	}
	if err := h.uc.SetPrincipal(c.UserContext(), int64(imagenID), productoID, GetComercianteID(c)); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar imagen de la galería
// @Tags         imagenes
// @Security     Cookie
// @Param        id        path  int  true  "ID del producto"
// @Param        imagenId  path  int  true  "ID de la imagen"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/imagenes/{imagenId} [delete]
func (h *ImagenHandler) Delete(c *fiber.Ctx) error {
	productoID, ok := h.productoID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	imagenID, err := c.ParamsInt("imagenId")
	if err != nil || imagenID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "imagenId inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), int64(imagenID), productoID, GetComercianteID(c)); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reordenar godoc
// @Summary      Reordenar la galería
// @Tags         imagenes
// @Security     Cookie
// @Accept       json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ReordenarImagenesRequest  true  "Ids en el orden deseado"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/imagenes/orden [put]
func (h *ImagenHandler) Reordenar(c *fiber.Ctx) error {
	productoID, ok := h.productoID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.ReordenarImagenesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Reordenar(c.UserContext(), productoID, GetComercianteID(c), in.ImagenIDs); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ImagenHandler) mapError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o imagen no encontrada"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo o lista de imágenes inválida"})
	}
	return internalError(c, err)
}
