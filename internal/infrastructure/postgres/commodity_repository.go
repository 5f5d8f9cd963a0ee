package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/finanzas-erp/internal/domain"
	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

var _ repository.CommodityRepository = (*CommodityRepo)(nil)
var _ repository.ExchangeRateRepository = (*ExchangeRateRepo)(nil)

// CommodityRepo implementación de CommodityRepository sobre PostgreSQL (usable con pool o tx).
type CommodityRepo struct {
	q Querier
}

// NewCommodityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCommodityRepository(q Querier) *CommodityRepo {
	return &CommodityRepo{q: q}
}

// GetByID obtiene un commodity por ID.
func (r *CommodityRepo) GetByID(ctx context.Context, id string) (*entity.Commodity, error) {
	query := `
		SELECT commodity_id, symbol, full_name, commodity_type, fraction
		FROM biz_commodities WHERE commodity_id = $1`
	var c entity.Commodity
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Symbol, &c.FullName, &c.Type, &c.Fraction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("commodity %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get commodity: %w", err)
	}
	return &c, nil
}

// List lista los commodities registrados.
func (r *CommodityRepo) List(ctx context.Context) ([]*entity.Commodity, error) {
	query := `
		SELECT commodity_id, symbol, full_name, commodity_type, fraction
		FROM biz_commodities ORDER BY symbol`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list commodities: %w", err)
	}
	defer rows.Close()
	var out []*entity.Commodity
	for rows.Next() {
		var c entity.Commodity
		if err := rows.Scan(&c.ID, &c.Symbol, &c.FullName, &c.Type, &c.Fraction); err != nil {
			return nil, fmt.Errorf("scan commodity: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Create persiste un commodity nuevo.
func (r *CommodityRepo) Create(ctx context.Context, c *entity.Commodity) error {
	query := `
		INSERT INTO biz_commodities (commodity_id, symbol, full_name, commodity_type, fraction)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Symbol, c.FullName, c.Type, c.Fraction)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create commodity: %w", err)
	}
	return nil
}

// ExchangeRateRepo lectura del histórico de tasas sobre PostgreSQL.
type ExchangeRateRepo struct {
	q Querier
}

// NewExchangeRateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExchangeRateRepository(q Querier) *ExchangeRateRepo {
	return &ExchangeRateRepo{q: q}
}

// List devuelve el histórico completo, la tasa más reciente primero.
func (r *ExchangeRateRepo) List(ctx context.Context) ([]*entity.ExchangeRate, error) {
	query := `
		SELECT rate_id, from_commodity_ref, to_commodity_ref, rate, rate_date
		FROM biz_exchange_rates ORDER BY rate_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list exchange rates: %w", err)
	}
	defer rows.Close()
	var out []*entity.ExchangeRate
	for rows.Next() {
		var er entity.ExchangeRate
		if err := rows.Scan(&er.ID, &er.FromCurrencyID, &er.ToCurrencyID, &er.Rate, &er.RateDate); err != nil {
			return nil, fmt.Errorf("scan exchange rate: %w", err)
		}
		out = append(out, &er)
	}
	return out, rows.Err()
}
