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

// PartnerUseCase CRUD de terceros (clientes y proveedores).
type PartnerUseCase struct {
	repo repository.PartnerRepository
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(repo repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{repo: repo}
}

// Create da de alta un tercero.
func (uc *PartnerUseCase) Create(ctx context.Context, in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	if in.LegalName == "" || !validPartnerType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	partner := &entity.Partner{
		ID:              uuid.NewString(),
		Code:            in.Code,
		LegalName:       in.LegalName,
		Type:            in.Type,
		ContactEmail:    in.ContactEmail,
		ContactPhone:    in.ContactPhone,
		ShippingAddress: in.ShippingAddress,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(ctx, partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// Update modifica los datos de contacto de un tercero. El tipo no cambia.
func (uc *PartnerUseCase) Update(ctx context.Context, id string, in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	partner, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.LegalName != "" {
		partner.LegalName = in.LegalName
	}
	if in.Code != "" {
		partner.Code = in.Code
	}
	partner.ContactEmail = in.ContactEmail
	partner.ContactPhone = in.ContactPhone
	partner.ShippingAddress = in.ShippingAddress
	if err := uc.repo.Update(ctx, partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// List lista terceros, opcionalmente filtrados por tipo.
func (uc *PartnerUseCase) List(ctx context.Context, typeFilter string) ([]dto.PartnerResponse, error) {
	if typeFilter != "" && !validPartnerType(typeFilter) {
		return nil, domain.ErrInvalidInput
	}
	partners, err := uc.repo.List(ctx, typeFilter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartnerResponse, 0, len(partners))
	for _, p := range partners {
		out = append(out, *toPartnerResponse(p))
	}
	return out, nil
}

func validPartnerType(t string) bool {
	return t == entity.PartnerTypeCustomer || t == entity.PartnerTypeSupplier
}

func toPartnerResponse(p *entity.Partner) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:              p.ID,
		Code:            p.Code,
		LegalName:       p.LegalName,
		Type:            p.Type,
		ContactEmail:    p.ContactEmail,
		ContactPhone:    p.ContactPhone,
		ShippingAddress: p.ShippingAddress,
	}
}
