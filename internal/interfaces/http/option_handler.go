package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/chichilu/closet-api/internal/application/catalog"
	"github.com/chichilu/closet-api/internal/application/dto"
	"github.com/chichilu/closet-api/internal/domain"
)

// OptionHandler maneja el catálogo de tallas y colores (protegido).
type OptionHandler struct {
	uc *catalog.UseCase
}

// NewOptionHandler construye el handler.
func NewOptionHandler(uc *catalog.UseCase) *OptionHandler {
	return &OptionHandler{uc: uc}
}

// ListSizes godoc
// @Summary      Listar tallas del catálogo
// @Tags         options
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OptionResponse
// @Router       /api/options/sizes [get]
func (h *OptionHandler) ListSizes(c *fiber.Ctx) error {
	out, err := h.uc.ListSizes(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddSize godoc
// @Summary      Añadir talla (idempotente)
// @Tags         options
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddOptionRequest  true  "Nombre"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/options/sizes [post]
func (h *OptionHandler) AddSize(c *fiber.Ctx) error {
	return h.add(c, h.uc.AddSize, "talla añadida")
}

// ListColors godoc
// @Summary      Listar colores del catálogo
// @Tags         options
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OptionResponse
// @Router       /api/options/colors [get]
func (h *OptionHandler) ListColors(c *fiber.Ctx) error {
	out, err := h.uc.ListColors(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddColor godoc
// @Summary      Añadir color (idempotente)
// @Tags         options
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddOptionRequest  true  "Nombre"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/options/colors [post]
func (h *OptionHandler) AddColor(c *fiber.Ctx) error {
	return h.add(c, h.uc.AddColor, "color añadido")
}

func (h *OptionHandler) add(c *fiber.Ctx, fn func(ctx context.Context, name string) error, msg string) error {
	var in dto.AddOptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := fn(c.Context(), in.Name); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: msg})
}
