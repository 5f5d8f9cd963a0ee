package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/application/usecase"
	"github.com/tu-usuario/finanzas-erp/internal/domain"
)

// PartnerHandler maneja terceros: clientes y proveedores (protegido).
type PartnerHandler struct {
	uc *usecase.PartnerUseCase
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(uc *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tercero
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PartnerRequest  true  "legal_name, partner_type (CUSTOMER|SUPPLIER)"
// @Success      201   {object}  dto.PartnerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/partners [post]
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.PartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	partner, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "legal_name y partner_type (CUSTOMER|SUPPLIER) son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de tercero ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(partner)
}

// Update godoc
// @Summary      Actualizar tercero
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del tercero"
// @Param        body  body  dto.PartnerRequest  true  "datos de contacto"
// @Success      200   {object}  dto.PartnerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [put]
func (h *PartnerHandler) Update(c *fiber.Ctx) error {
	var in dto.PartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	partner, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el tercero no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(partner)
}

// List godoc
// @Summary      Listar terceros
// @Tags         partners
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  false  "Filtrar por tipo: CUSTOMER | SUPPLIER"
// @Success      200  {array}   dto.PartnerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/partners [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("type"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type solo admite CUSTOMER o SUPPLIER"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
