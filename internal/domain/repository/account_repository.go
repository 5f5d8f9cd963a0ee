package repository

import (
	"context"

	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
)

// AccountRepository acceso al plan de cuentas.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	// GetByIDs resuelve varias cuentas de una vez; las inexistentes simplemente
	// no aparecen en el mapa (el validador de asientos decide qué hacer).
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)
	Create(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id string) error
	CountChildren(ctx context.Context, id string) (int64, error)
	CountEntries(ctx context.Context, id string) (int64, error)
}
