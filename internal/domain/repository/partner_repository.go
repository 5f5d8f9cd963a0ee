package repository

import (
	"context"

	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
)

// PartnerRepository acceso a terceros (clientes y proveedores).
type PartnerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Partner, error)
	// List filtra por tipo si typeFilter no está vacío.
	List(ctx context.Context, typeFilter string) ([]*entity.Partner, error)
	Create(ctx context.Context, partner *entity.Partner) error
	Update(ctx context.Context, partner *entity.Partner) error
}
