package voucher

import (
	"context"

	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que cabecera y asientos del
// comprobante se confirmen o se descarten como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txnRepo repository.TransactionRepository,
		accountRepo repository.AccountRepository,
	) error) error
}
