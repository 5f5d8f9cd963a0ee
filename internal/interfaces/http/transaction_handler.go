package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/application/voucher"
)

// TransactionHandler maneja los comprobantes manuales (protegido).
type TransactionHandler struct {
	uc *voucher.UseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *voucher.UseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Submit godoc
// @Summary      Registrar comprobante manual
// @Description  Valida que el comprobante cuadre a cero (debe = haber) y lo
//
//	confirma atómicamente: o entran todos los asientos o ninguno.
//
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitVoucherRequest  true  "currency_ref, posting_date, summary, entries"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id, Message: "comprobante registrado"})
}

// List godoc
// @Summary      Listar comprobantes recientes
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de comprobantes (default 50)"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	out, err := h.uc.ListRecent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
