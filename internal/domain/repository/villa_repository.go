package repository

import (
	"context"

	"github.com/jhoicas/Constructora-api/internal/domain/entity"
)

// VillaRepository consultas de solo lectura sobre villas.
type VillaRepository interface {
	// ListByCompany devuelve las villas no eliminadas de la empresa con el
	// nombre del proyecto resuelto.
	ListByCompany(ctx context.Context, companyID string) ([]entity.Villa, error)
}
