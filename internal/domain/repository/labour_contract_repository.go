package repository

import (
	"context"

	"github.com/jhoicas/Constructora-api/internal/domain/entity"
)

// LabourContractRepository consultas de solo lectura sobre contratos de mano de obra.
type LabourContractRepository interface {
	// ListByVilla devuelve los contratos no eliminados de la villa, cada uno
	// con su lista ordenada de hitos.
	ListByVilla(ctx context.Context, companyID, villaID string) ([]entity.LabourContract, error)
}
