package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo consultas de solo lectura sobre cobros a clientes.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// ListWindow devuelve los cobros válidos (amount > 0, removed=false) de la
// empresa en [start, end], con cliente y villa resueltos vía LEFT JOIN.
func (r *PaymentRepo) ListWindow(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) ([]repository.PaymentRow, error) {
	const query = `
	SELECT
	    c.name AS client_name,
	    v.name AS villa_name,
	    p.description,
	    p.amount
	FROM payments p
	LEFT JOIN clients c ON c.id = p.client_id
	LEFT JOIN villas  v ON v.id = p.villa_id
	WHERE p.company_id = $1
	  AND p.date >= $2 AND p.date <= $3
	  AND p.removed = FALSE
	  AND p.amount > 0
	ORDER BY p.date, p.id`

	rows, err := r.pool.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("payment.ListWindow: %w", err)
	}
	defer rows.Close()

	var result []repository.PaymentRow
	for rows.Next() {
		var row repository.PaymentRow
		if err := rows.Scan(&row.ClientName, &row.VillaName, &row.Description, &row.Amount); err != nil {
			return nil, fmt.Errorf("payment.ListWindow scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// SumWindow suma los cobros válidos de la ventana.
func (r *PaymentRepo) SumWindow(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(p.amount), 0)
	FROM payments p
	WHERE p.company_id = $1
	  AND p.date >= $2 AND p.date <= $3
	  AND p.removed = FALSE
	  AND p.amount > 0`

	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, companyID, start, end).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("payment.SumWindow: %w", err)
	}
	return total, nil
}
