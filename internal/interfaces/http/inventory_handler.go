package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/application/inventory"
)

// InventoryHandler maneja las entradas y salidas de inventario (protegido).
type InventoryHandler struct {
	uc *inventory.ValuationUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.ValuationUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Inbound godoc
// @Summary      Entrada de compra
// @Description  Procesa un lote de entradas: recalcula el costo promedio
//
//	ponderado de cada artículo bajo bloqueo de fila y genera el comprobante
//	contable. El lote entero se confirma o se aborta; no hay líneas parciales.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InboundRequest  true  "supplier_id, payment_account_id, currency_ref, exchange_rate, line_items"
// @Success      201   {object}  dto.InboundResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/inbound [post]
func (h *InventoryHandler) Inbound(c *fiber.Ctx) error {
	var in dto.InboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Inbound(c.Context(), in)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Outbound godoc
// @Summary      Salida de venta
// @Description  Procesa un lote de salidas: verifica existencias (cualquier
//
//	faltante aborta el lote completo), descuenta al costo promedio vigente y
//	genera dos comprobantes: ingresos en la moneda de la venta y costo de
//	ventas en moneda base.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutboundRequest  true  "customer_id, received_account_id, currency_ref, line_items"
// @Success      201   {object}  dto.OutboundResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/outbound [post]
func (h *InventoryHandler) Outbound(c *fiber.Ctx) error {
	var in dto.OutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Outbound(c.Context(), in)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
