package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/domain"
	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

// CommodityUseCase alta y consulta de monedas, más la lectura del histórico de
// tasas de cambio. El motor de valuación no consulta tasas por su cuenta: la
// tasa aplicable viaja explícita en cada operación.
type CommodityUseCase struct {
	repo     repository.CommodityRepository
	rateRepo repository.ExchangeRateRepository
}

// NewCommodityUseCase construye el caso de uso.
func NewCommodityUseCase(repo repository.CommodityRepository, rateRepo repository.ExchangeRateRepository) *CommodityUseCase {
	return &CommodityUseCase{repo: repo, rateRepo: rateRepo}
}

// Create da de alta un commodity. Por defecto una moneda con fracción 100.
func (uc *CommodityUseCase) Create(ctx context.Context, in dto.CreateCommodityRequest) (*dto.CommodityResponse, error) {
	if in.Symbol == "" || in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	commodityType := in.Type
	if commodityType == "" {
		commodityType = entity.CommodityTypeCurrency
	}
	fraction := in.Fraction
	if fraction <= 0 {
		fraction = 100
	}
	commodity := &entity.Commodity{
		ID:       uuid.NewString(),
		Symbol:   in.Symbol,
		FullName: in.FullName,
		Type:     commodityType,
		Fraction: fraction,
	}
	if err := uc.repo.Create(ctx, commodity); err != nil {
		return nil, err
	}
	return toCommodityResponse(commodity), nil
}

// List lista los commodities registrados.
func (uc *CommodityUseCase) List(ctx context.Context) ([]dto.CommodityResponse, error) {
	commodities, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommodityResponse, 0, len(commodities))
	for _, c := range commodities {
		out = append(out, *toCommodityResponse(c))
	}
	return out, nil
}

// ListRates lista el histórico de tasas de cambio.
func (uc *CommodityUseCase) ListRates(ctx context.Context) ([]dto.ExchangeRateResponse, error) {
	rates, err := uc.rateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExchangeRateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, dto.ExchangeRateResponse{
			ID:             r.ID,
			FromCurrencyID: r.FromCurrencyID,
			ToCurrencyID:   r.ToCurrencyID,
			Rate:           r.Rate.String(),
			RateDate:       r.RateDate.Format("2006-01-02"),
		})
	}
	return out, nil
}

func toCommodityResponse(c *entity.Commodity) *dto.CommodityResponse {
	return &dto.CommodityResponse{
		ID:       c.ID,
		Symbol:   c.Symbol,
		FullName: c.FullName,
		Type:     c.Type,
		Fraction: c.Fraction,
	}
}
