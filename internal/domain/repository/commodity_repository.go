package repository

import (
	"context"

	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
)

// CommodityRepository acceso a monedas y otros commodities.
type CommodityRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Commodity, error)
	List(ctx context.Context) ([]*entity.Commodity, error)
	Create(ctx context.Context, commodity *entity.Commodity) error
}

// ExchangeRateRepository lectura de la tabla de tasas de cambio.
// El núcleo solo la consulta; el mantenimiento del histórico es externo.
type ExchangeRateRepository interface {
	List(ctx context.Context) ([]*entity.ExchangeRate, error)
}
