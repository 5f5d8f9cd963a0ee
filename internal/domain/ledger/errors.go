package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores tipados del núcleo contable. Cada variante lleva la carga estructurada
// necesaria para que el caller arme un mensaje accionable (totales descuadrados,
// cantidades faltantes) sin re-derivarla. Nunca strings sueltos.

// ValidationError entrada malformada o incompleta.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validación: " + e.Reason
}

// ImbalanceError el total del debe no iguala al total del haber.
type ImbalanceError struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

func (e *ImbalanceError) Error() string {
	return fmt.Sprintf("asiento descuadrado: debe %s, haber %s",
		e.Debit.StringFixed(2), e.Credit.StringFixed(2))
}

// PrecisionUnderflowError un monto distinto de cero redondea a numerador cero
// en la precisión configurada.
type PrecisionUnderflowError struct {
	Amount    decimal.Decimal
	Precision int64
}

func (e *PrecisionUnderflowError) Error() string {
	return fmt.Sprintf("el monto %s redondea a 0 en precisión %d", e.Amount, e.Precision)
}

// UnknownAccountError el asiento referencia una cuenta inexistente.
type UnknownAccountError struct {
	AccountID string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("cuenta inexistente: %s", e.AccountID)
}

// NonPostableAccountError el asiento referencia una cuenta placeholder
// (estructural, no admite asientos directos).
type NonPostableAccountError struct {
	AccountID string
}

func (e *NonPostableAccountError) Error() string {
	return fmt.Sprintf("cuenta no imputable (placeholder): %s", e.AccountID)
}

// MissingConfigurationError un artículo no tiene mapeada una cuenta contable requerida.
type MissingConfigurationError struct {
	ItemID   string
	ItemCode string
	Field    string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("artículo %s sin cuenta configurada: %s", e.ItemCode, e.Field)
}

// InsufficientStockError la cantidad solicitada excede la existencia actual.
type InsufficientStockError struct {
	ItemID    string
	ItemCode  string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %d, solicitado %d",
		e.ItemCode, e.Available, e.Requested)
}
