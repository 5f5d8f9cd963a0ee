package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/domain"
	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/money"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

// ItemUseCase alta y consulta del maestro de artículos. La existencia y el
// costo promedio nunca se editan por acá: solo los mueve el motor de valuación.
type ItemUseCase struct {
	repo      repository.ItemRepository
	precision int64
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, precision int64) *ItemUseCase {
	return &ItemUseCase{repo: repo, precision: precision}
}

// Create da de alta un artículo con existencia cero y costo promedio cero.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Code == "" || in.Name == "" || in.UnitOfMeasure == "" {
		return nil, domain.ErrInvalidInput
	}
	method := in.CostingMethod
	if method == "" {
		method = entity.CostingAverage
	}
	if method != entity.CostingAverage {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:                 uuid.NewString(),
		Code:               in.Code,
		Name:               in.Name,
		UnitOfMeasure:      in.UnitOfMeasure,
		CostingMethod:      method,
		InventoryAccountID: in.InventoryAccountID,
		COGSAccountID:      in.COGSAccountID,
		SalesAccountID:     in.SalesAccountID,
		QtyOnHand:          0,
		AvgCost:            money.Zero(uc.precision),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo con su snapshot de valuación.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista el maestro completo.
func (uc *ItemUseCase) List(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:                 it.ID,
		Code:               it.Code,
		Name:               it.Name,
		UnitOfMeasure:      it.UnitOfMeasure,
		CostingMethod:      it.CostingMethod,
		InventoryAccountID: it.InventoryAccountID,
		COGSAccountID:      it.COGSAccountID,
		SalesAccountID:     it.SalesAccountID,
		QtyOnHand:          it.QtyOnHand,
		AvgCost:            it.AvgCost.Decimal(),
	}
}
