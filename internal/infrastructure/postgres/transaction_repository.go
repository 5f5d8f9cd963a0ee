package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo escritor y lector del log contable sobre PostgreSQL.
// Append-only: acá no hay UPDATE ni DELETE de comprobantes.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// CreateWithEntries persiste cabecera y asientos como una sola unidad. Asigna
// IDs a la cabecera y a cada asiento y los deja escritos en los structs
// recibidos. Los asientos van en un pgx.Batch: un solo round-trip.
func (r *TransactionRepo) CreateWithEntries(ctx context.Context, txn *entity.Transaction, entries []entity.JournalEntry) error {
	txn.ID = uuid.NewString()
	if txn.EntryDate.IsZero() {
		txn.EntryDate = time.Now()
	}
	query := `
		INSERT INTO fin_transactions (txn_id, currency_ref, posting_date, summary, doc_number, entry_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, txn.ID, txn.CurrencyID, txn.PostingDate,
		nullable(txn.Summary), nullable(txn.DocNumber), txn.EntryDate)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}

	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO fin_journal_entries (entry_id, txn_ref, account_ref, memo,
			val_num, val_denom, qty_num, qty_denom)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].TransactionID = txn.ID
		e := &entries[i]
		batch.Queue(entryQuery, e.ID, e.TransactionID, e.AccountID, nullable(e.Memo),
			e.Value.Num, e.Value.Denom, e.Qty.Num, e.Qty.Denom)
	}
	results := r.q.SendBatch(ctx, batch)
	defer results.Close()
	for range entries {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("create journal entry: %w", err)
		}
	}
	return results.Close()
}

// ListRecent devuelve los comprobantes más recientes, el último registrado primero.
func (r *TransactionRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	query := `
		SELECT txn_id, currency_ref, posting_date, summary, doc_number, entry_date
		FROM fin_transactions
		ORDER BY entry_date DESC, txn_id
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var out []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		var summary, docNumber sql.NullString
		if err := rows.Scan(&t.ID, &t.CurrencyID, &t.PostingDate, &summary, &docNumber, &t.EntryDate); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Summary = summary.String
		t.DocNumber = docNumber.String
		out = append(out, &t)
	}
	return out, rows.Err()
}

// ListEntries devuelve los asientos de los comprobantes indicados.
func (r *TransactionRepo) ListEntries(ctx context.Context, txnIDs []string) ([]entity.JournalEntry, error) {
	if len(txnIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT entry_id, txn_ref, account_ref, memo, val_num, val_denom, qty_num, qty_denom
		FROM fin_journal_entries
		WHERE txn_ref = ANY($1)
		ORDER BY txn_ref, entry_id`
	rows, err := r.q.Query(ctx, query, txnIDs)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	var out []entity.JournalEntry
	for rows.Next() {
		var e entity.JournalEntry
		var memo sql.NullString
		if err := rows.Scan(&e.ID, &e.TransactionID, &e.AccountID, &memo,
			&e.Value.Num, &e.Value.Denom, &e.Qty.Num, &e.Qty.Denom); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Memo = memo.String
		out = append(out, e)
	}
	return out, rows.Err()
}
