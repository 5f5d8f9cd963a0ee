package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/application/reports"
)

// ReportHandler maneja los reportes del libro mayor (protegido).
type ReportHandler struct {
	uc *reports.TrialBalanceUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.TrialBalanceUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TrialBalance godoc
// @Summary      Balance de comprobación
// @Description  Totales del debe y del haber por cuenta, separados por moneda
//
//	de transacción; los saldos en monedas distintas nunca se suman entre sí.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.TrialBalanceAccount
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/trial-balance [get]
func (h *ReportHandler) TrialBalance(c *fiber.Ctx) error {
	out, err := h.uc.TrialBalance(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
