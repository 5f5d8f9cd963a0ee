package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/finanzas-erp/internal/domain"
	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación de PartnerRepository sobre PostgreSQL (usable con pool o tx).
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

const partnerColumns = `partner_id, partner_code, legal_name, partner_type,
	contact_email, contact_phone, shipping_address, created_at`

func scanPartner(row pgx.Row) (*entity.Partner, error) {
	var p entity.Partner
	var code, email, phone, address sql.NullString
	err := row.Scan(&p.ID, &code, &p.LegalName, &p.Type, &email, &phone, &address, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Code = code.String
	p.ContactEmail = email.String
	p.ContactPhone = phone.String
	p.ShippingAddress = address.String
	return &p, nil
}

// GetByID obtiene un tercero por ID.
func (r *PartnerRepo) GetByID(ctx context.Context, id string) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM biz_partners WHERE partner_id = $1`
	partner, err := scanPartner(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("tercero %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get partner: %w", err)
	}
	return partner, nil
}

// List lista terceros, filtrando por tipo si typeFilter no está vacío.
func (r *PartnerRepo) List(ctx context.Context, typeFilter string) ([]*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM biz_partners`
	args := []any{}
	if typeFilter != "" {
		query += ` WHERE partner_type = $1`
		args = append(args, typeFilter)
	}
	query += ` ORDER BY legal_name`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()
	var out []*entity.Partner
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		out = append(out, partner)
	}
	return out, rows.Err()
}

// Create persiste un tercero nuevo.
func (r *PartnerRepo) Create(ctx context.Context, p *entity.Partner) error {
	query := `
		INSERT INTO biz_partners (partner_id, partner_code, legal_name, partner_type,
			contact_email, contact_phone, shipping_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, p.ID, nullable(p.Code), p.LegalName, p.Type,
		nullable(p.ContactEmail), nullable(p.ContactPhone), nullable(p.ShippingAddress), p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create partner: %w", err)
	}
	return nil
}

// Update modifica un tercero existente.
func (r *PartnerRepo) Update(ctx context.Context, p *entity.Partner) error {
	query := `
		UPDATE biz_partners
		SET partner_code = $2, legal_name = $3, contact_email = $4,
			contact_phone = $5, shipping_address = $6
		WHERE partner_id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, nullable(p.Code), p.LegalName,
		nullable(p.ContactEmail), nullable(p.ContactPhone), nullable(p.ShippingAddress))
	if err != nil {
		return fmt.Errorf("update partner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tercero %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}
