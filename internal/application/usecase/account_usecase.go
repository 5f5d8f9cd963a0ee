package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/finanzas-erp/internal/application/dto"
	"github.com/tu-usuario/finanzas-erp/internal/domain"
	"github.com/tu-usuario/finanzas-erp/internal/domain/entity"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

var validCategories = map[string]bool{
	entity.CategoryAsset:     true,
	entity.CategoryLiability: true,
	entity.CategoryEquity:    true,
	entity.CategoryIncome:    true,
	entity.CategoryExpense:   true,
}

// AccountUseCase CRUD del plan de cuentas. La eliminación está protegida:
// una cuenta con hijas o con asientos registrados no puede borrarse, porque
// hacerlo rompería el árbol o dejaría asientos huérfanos en el libro mayor.
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// Create da de alta una cuenta. Si tiene padre, el padre debe existir.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in.Title == "" || !validCategories[in.Category] {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != "" {
		if _, err := uc.repo.GetByID(ctx, in.ParentID); err != nil {
			return nil, err
		}
	}
	account := &entity.Account{
		ID:            uuid.NewString(),
		Code:          in.Code,
		Title:         in.Title,
		Category:      in.Category,
		Description:   in.Description,
		CommodityID:   in.CommodityID,
		ParentID:      in.ParentID,
		IsPlaceholder: in.IsPlaceholder,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// List devuelve el plan de cuentas completo.
func (uc *AccountUseCase) List(ctx context.Context) ([]dto.AccountResponse, error) {
	accounts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, *toAccountResponse(a))
	}
	return out, nil
}

// Delete elimina una cuenta sin hijas y sin asientos.
// Retorna domain.ErrConflict si alguna de las dos condiciones no se cumple.
func (uc *AccountUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	children, err := uc.repo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return domain.ErrConflict
	}
	entries, err := uc.repo.CountEntries(ctx, id)
	if err != nil {
		return err
	}
	if entries > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:            a.ID,
		Code:          a.Code,
		Title:         a.Title,
		Category:      a.Category,
		Description:   a.Description,
		CommodityID:   a.CommodityID,
		ParentID:      a.ParentID,
		IsPlaceholder: a.IsPlaceholder,
	}
}
