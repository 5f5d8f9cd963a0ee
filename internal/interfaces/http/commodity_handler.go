package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/application/usecase"
	"github.com/tu-usuario/finanzas-erp/internal/domain"
)

// CommodityHandler maneja monedas y tasas de cambio (protegido).
type CommodityHandler struct {
	uc *usecase.CommodityUseCase
}

// NewCommodityHandler construye el handler.
func NewCommodityHandler(uc *usecase.CommodityUseCase) *CommodityHandler {
	return &CommodityHandler{uc: uc}
}

// Create godoc
// @Summary      Crear moneda/commodity
// @Tags         commodities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCommodityRequest  true  "symbol, full_name"
// @Success      201   {object}  dto.CommodityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/commodities [post]
func (h *CommodityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCommodityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	commodity, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "symbol y full_name son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el símbolo ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(commodity)
}

// List godoc
// @Summary      Listar monedas/commodities
// @Tags         commodities
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CommodityResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/commodities [get]
func (h *CommodityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListRates godoc
// @Summary      Listar histórico de tasas de cambio
// @Tags         commodities
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ExchangeRateResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/exchange-rates [get]
func (h *CommodityHandler) ListRates(c *fiber.Ctx) error {
	out, err := h.uc.ListRates(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
