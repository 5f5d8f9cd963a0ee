package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultPrecision denominador por defecto de los montos: 100 = 2 decimales.
const DefaultPrecision int64 = 100

// Rational monto monetario exacto: numerador entero sobre un denominador fijo (precisión).
// Ejemplo: 100.50 con precisión 100 -> {Num: 10050, Denom: 100}.
// El signo vive en el numerador: débito positivo, crédito negativo.
type Rational struct {
	Num   int64
	Denom int64
}

// Zero devuelve el racional cero en la precisión dada.
func Zero(precision int64) Rational {
	return Rational{Num: 0, Denom: precision}
}

// FromDecimal convierte un decimal al racional más cercano en la precisión dada.
// Los empates se redondean lejos de cero (half away from zero), igual en ambos signos.
// Nunca descarta precisión en silencio más allá del denominador configurado: si se
// necesita más detalle, el caller debe elegir un denominador mayor.
func FromDecimal(d decimal.Decimal, precision int64) (Rational, error) {
	if precision <= 0 {
		return Rational{}, fmt.Errorf("money: precisión inválida %d", precision)
	}
	num := d.Mul(decimal.NewFromInt(precision)).Round(0)
	return Rational{Num: num.IntPart(), Denom: precision}, nil
}

// Decimal devuelve el valor como decimal (Num / Denom).
func (r Rational) Decimal() decimal.Decimal {
	if r.Denom == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(r.Num).Div(decimal.NewFromInt(r.Denom))
}

// Neg devuelve el racional con el signo invertido.
func (r Rational) Neg() Rational {
	return Rational{Num: -r.Num, Denom: r.Denom}
}

// IsZero indica si el numerador es cero.
func (r Rational) IsZero() bool {
	return r.Num == 0
}

// Add suma dos racionales. Ambos deben compartir el mismo denominador
// (dentro de una transacción todos los asientos usan la misma precisión).
func (r Rational) Add(o Rational) (Rational, error) {
	if r.Denom != o.Denom {
		return Rational{}, fmt.Errorf("money: denominadores distintos (%d vs %d)", r.Denom, o.Denom)
	}
	return Rational{Num: r.Num + o.Num, Denom: r.Denom}, nil
}

// String formato legible para logs y mensajes de error.
func (r Rational) String() string {
	return r.Decimal().StringFixed(2)
}
