package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/application/usecase"
	"github.com/tu-usuario/finanzas-erp/internal/domain"
)

// AccountHandler maneja el plan de cuentas (protegido).
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cuenta contable
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "title, category, parent_account_id"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	account, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y category (ASSET|LIABILITY|EQUITY|INCOME|EXPENSE) son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PARENT_NOT_FOUND", Message: "la cuenta padre no existe"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de cuenta ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

// List godoc
// @Summary      Listar plan de cuentas
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.AccountResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cuenta
// @Description  Solo se elimina una cuenta sin hijas y sin asientos registrados.
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.IDResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la cuenta no existe"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACCOUNT_IN_USE", Message: "la cuenta tiene hijas o asientos registrados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.IDResponse{ID: id, Message: "cuenta eliminada"})
}
