// Package progress deriva el avance de construcción de las villas de una
// empresa a partir de sus contratos de mano de obra y los hitos de cada uno.
package progress

import (
	"context"
	"fmt"

	"github.com/jhoicas/Constructora-api/internal/application/dto"
	"github.com/jhoicas/Constructora-api/internal/domain"
	"github.com/jhoicas/Constructora-api/internal/domain/construction"
	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

// UseCase deriva el avance por villa. Lecturas puras: villas y contratos
// vienen de repositorios independientes y el cálculo es construction.Derive.
type UseCase struct {
	villas    repository.VillaRepository
	contracts repository.LabourContractRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(villas repository.VillaRepository, contracts repository.LabourContractRepository) *UseCase {
	return &UseCase{villas: villas, contracts: contracts}
}

// ListVillaProgress devuelve el avance de todas las villas no eliminadas de la
// empresa. Una villa sin contratos sale con 0% y "Not Started". Si la consulta
// de cualquier villa falla, la llamada completa falla.
func (uc *UseCase) ListVillaProgress(ctx context.Context, companyID string) ([]dto.VillaProgress, error) {
	if companyID == "" {
		return nil, domain.ErrMissingCompany
	}

	villas, err := uc.villas.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("avance de villas: %w", err)
	}

	result := make([]dto.VillaProgress, 0, len(villas))
	for _, villa := range villas {
		contracts, err := uc.contracts.ListByVilla(ctx, companyID, villa.ID)
		if err != nil {
			return nil, fmt.Errorf("avance de villa %s: %w", villa.ID, err)
		}
		p := construction.Derive(contracts)

		project := ""
		if villa.ProjectName != nil {
			project = *villa.ProjectName
		}
		result = append(result, dto.VillaProgress{
			VillaID:             villa.ID,
			Name:                villa.Name,
			VillaNumber:         villa.VillaNumber,
			Project:             project,
			Stage:               p.Stage,
			Percentage:          p.Percentage,
			LastUpdated:         p.LastUpdated,
			TotalContracts:      len(contracts),
			CompletedMilestones: p.CompletedMilestones,
			TotalMilestones:     p.TotalMilestones,
		})
	}
	return result, nil
}

// DeriveVilla deriva el avance de una sola villa de la empresa.
func (uc *UseCase) DeriveVilla(ctx context.Context, companyID, villaID string) (*dto.VillaProgress, error) {
	if companyID == "" {
		return nil, domain.ErrMissingCompany
	}
	if villaID == "" {
		return nil, fmt.Errorf("%w: villa_id requerido", domain.ErrInvalidInput)
	}

	contracts, err := uc.contracts.ListByVilla(ctx, companyID, villaID)
	if err != nil {
		return nil, fmt.Errorf("avance de villa %s: %w", villaID, err)
	}
	p := construction.Derive(contracts)

	return &dto.VillaProgress{
		VillaID:             villaID,
		Stage:               p.Stage,
		Percentage:          p.Percentage,
		LastUpdated:         p.LastUpdated,
		TotalContracts:      len(contracts),
		CompletedMilestones: p.CompletedMilestones,
		TotalMilestones:     p.TotalMilestones,
	}, nil
}
