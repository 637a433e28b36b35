package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Constructora-api/internal/domain/entity"
	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

var _ repository.LabourContractRepository = (*LabourContractRepo)(nil)

// LabourContractRepo consultas de solo lectura sobre contratos de mano de obra.
type LabourContractRepo struct {
	pool *pgxpool.Pool
}

// NewLabourContractRepository construye el adaptador.
func NewLabourContractRepository(pool *pgxpool.Pool) *LabourContractRepo {
	return &LabourContractRepo{pool: pool}
}

// ListByVilla devuelve los contratos no eliminados de la villa con sus hitos
// en orden. Una sola consulta con join; los hitos se reagrupan por contrato
// en memoria.
func (r *LabourContractRepo) ListByVilla(
	ctx context.Context,
	companyID, villaID string,
) ([]entity.LabourContract, error) {
	const query = `
	SELECT
	    c.id,
	    c.company_id,
	    c.villa_id,
	    m.id,
	    m.name,
	    m.percentage,
	    m.amount,
	    m.is_completed,
	    m.completion_date
	FROM labour_contracts c
	LEFT JOIN contract_milestones m ON m.contract_id = c.id
	WHERE c.company_id = $1
	  AND c.villa_id = $2
	  AND c.removed = FALSE
	ORDER BY c.id, m.position`

	rows, err := r.pool.Query(ctx, query, companyID, villaID)
	if err != nil {
		return nil, fmt.Errorf("contract.ListByVilla: %w", err)
	}
	defer rows.Close()

	var contracts []entity.LabourContract
	index := map[string]int{}
	for rows.Next() {
		var (
			contract       entity.LabourContract
			milestoneID    *string
			name           *string
			percentage     *decimal.Decimal
			amount         *decimal.Decimal
			isCompleted    *bool
			completionDate *time.Time
		)
		if err := rows.Scan(
			&contract.ID,
			&contract.CompanyID,
			&contract.VillaID,
			&milestoneID,
			&name,
			&percentage,
			&amount,
			&isCompleted,
			&completionDate,
		); err != nil {
			return nil, fmt.Errorf("contract.ListByVilla scan: %w", err)
		}

		i, ok := index[contract.ID]
		if !ok {
			i = len(contracts)
			index[contract.ID] = i
			contracts = append(contracts, contract)
		}
		// LEFT JOIN: un contrato sin hitos produce una fila con hito NULL.
		if milestoneID == nil {
			continue
		}
		m := entity.Milestone{
			ID:             *milestoneID,
			ContractID:     contracts[i].ID,
			CompletionDate: completionDate,
		}
		if name != nil {
			m.Name = *name
		}
		if percentage != nil {
			m.Percentage = *percentage
		}
		if amount != nil {
			m.Amount = *amount
		}
		if isCompleted != nil {
			m.IsCompleted = *isCompleted
		}
		contracts[i].Milestones = append(contracts[i].Milestones, m)
	}
	return contracts, rows.Err()
}
