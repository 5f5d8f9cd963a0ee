package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/domain"
	"github.com/tu-usuario/finanzas-erp/internal/domain/ledger"
)

// ledgerError traduce los errores tipados del núcleo contable a respuestas
// HTTP con su carga estructurada en Details. Los comprobantes descuadrados y
// los faltantes de stock llevan los números exactos para que el cliente los
// muestre sin re-derivar nada.
func ledgerError(c *fiber.Ctx, err error) error {
	var validation *ledger.ValidationError
	if errors.As(err, &validation) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: validation.Reason,
		})
	}

	var imbalance *ledger.ImbalanceError
	if errors.As(err, &imbalance) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "IMBALANCE",
			Message: imbalance.Error(),
			Details: map[string]interface{}{
				"total_debit":  imbalance.Debit.StringFixed(2),
				"total_credit": imbalance.Credit.StringFixed(2),
			},
		})
	}

	var underflow *ledger.PrecisionUnderflowError
	if errors.As(err, &underflow) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "PRECISION_UNDERFLOW",
			Message: underflow.Error(),
			Details: map[string]interface{}{
				"amount":    underflow.Amount.String(),
				"precision": underflow.Precision,
			},
		})
	}

	var unknownAccount *ledger.UnknownAccountError
	if errors.As(err, &unknownAccount) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "UNKNOWN_ACCOUNT",
			Message: unknownAccount.Error(),
			Details: map[string]interface{}{"account_ref": unknownAccount.AccountID},
		})
	}

	var nonPostable *ledger.NonPostableAccountError
	if errors.As(err, &nonPostable) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "NON_POSTABLE_ACCOUNT",
			Message: nonPostable.Error(),
			Details: map[string]interface{}{"account_ref": nonPostable.AccountID},
		})
	}

	var missingCfg *ledger.MissingConfigurationError
	if errors.As(err, &missingCfg) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "MISSING_CONFIGURATION",
			Message: missingCfg.Error(),
			Details: map[string]interface{}{
				"item_id":   missingCfg.ItemID,
				"item_code": missingCfg.ItemCode,
				"field":     missingCfg.Field,
			},
		})
	}

	var insufficient *ledger.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: insufficient.Error(),
			Details: map[string]interface{}{
				"item_id":   insufficient.ItemID,
				"item_code": insufficient.ItemCode,
				"available": insufficient.Available,
				"requested": insufficient.Requested,
			},
		})
	}

	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
