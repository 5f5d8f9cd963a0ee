package inventory

import (
	"context"

	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad de trabajo del motor de valuación:
// mutaciones de artículos, movimientos y comprobantes se confirman o se
// descartan juntos, y los bloqueos de fila tomados adentro viven hasta que
// la unidad termina.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		txnRepo repository.TransactionRepository,
		accountRepo repository.AccountRepository,
	) error) error
}
