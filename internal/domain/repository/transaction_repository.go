package repository

import (
	"context"

	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
)

// TransactionRepository escritor y lector del log contable append-only.
type TransactionRepository interface {
	// CreateWithEntries persiste cabecera y asientos como una sola unidad.
	// Asigna IDs únicos a la cabecera y a cada asiento (los deja escritos en
	// los structs recibidos). Nunca modifica comprobantes ya confirmados.
	CreateWithEntries(ctx context.Context, txn *entity.Transaction, entries []entity.JournalEntry) error
	ListRecent(ctx context.Context, limit int) ([]*entity.Transaction, error)
	ListEntries(ctx context.Context, txnIDs []string) ([]entity.JournalEntry, error)
}
