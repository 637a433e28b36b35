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

var _ repository.PettyCashRepository = (*PettyCashRepo)(nil)

// PettyCashRepo consultas de solo lectura sobre caja menor.
type PettyCashRepo struct {
	pool *pgxpool.Pool
}

// NewPettyCashRepository construye el adaptador.
func NewPettyCashRepository(pool *pgxpool.Pool) *PettyCashRepo {
	return &PettyCashRepo{pool: pool}
}

// ListOutwardWindow devuelve los desembolsos no eliminados de la ventana.
func (r *PettyCashRepo) ListOutwardWindow(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) ([]repository.PettyCashRow, error) {
	const query = `
	SELECT p.description, p.amount
	FROM petty_cash_transactions p
	WHERE p.company_id = $1
	  AND p.date >= $2 AND p.date <= $3
	  AND p.type = $4
	  AND p.removed = FALSE
	ORDER BY p.date, p.id`

	rows, err := r.pool.Query(ctx, query, companyID, start, end, entity.PettyCashOutward)
	if err != nil {
		return nil, fmt.Errorf("pettycash.ListOutwardWindow: %w", err)
	}
	defer rows.Close()

	var result []repository.PettyCashRow
	for rows.Next() {
		var row repository.PettyCashRow
		if err := rows.Scan(&row.Description, &row.Amount); err != nil {
			return nil, fmt.Errorf("pettycash.ListOutwardWindow scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// SumOutwardWindow suma los desembolsos de la ventana. Sin filtro removed:
// así calcula el resumen histórico del dashboard y los totales ya emitidos
// deben seguir cuadrando.
func (r *PettyCashRepo) SumOutwardWindow(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(p.amount), 0)
	FROM petty_cash_transactions p
	WHERE p.company_id = $1
	  AND p.date >= $2 AND p.date <= $3
	  AND p.type = $4`

	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, companyID, start, end, entity.PettyCashOutward).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("pettycash.SumOutwardWindow: %w", err)
	}
	return total, nil
}
