package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Constructora-api/internal/domain/entity"
	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo consultas de solo lectura sobre gastos de obra.
type ExpenseRepo struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepo {
	return &ExpenseRepo{pool: pool}
}

// ListWindow devuelve los gastos no eliminados de la empresa en [start, end]
// con los nombres de destinatario resueltos vía LEFT JOIN. El join es por
// referencia suelta: un gasto puede apuntar a un proveedor o trabajador ya
// inexistente y aun así debe listarse (el nombre queda NULL).
func (r *ExpenseRepo) ListWindow(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) ([]repository.ExpenseRow, error) {
	const query = `
	SELECT
	    e.recipient_type,
	    s.name  AS supplier_name,
	    l.name  AS labour_name,
	    e.other_recipient,
	    e.description,
	    e.reference,
	    e.amount
	FROM expenses e
	LEFT JOIN suppliers s ON s.id = e.supplier_id
	LEFT JOIN labourers l ON l.id = e.labour_id
	WHERE e.company_id = $1
	  AND e.date >= $2 AND e.date <= $3
	  AND e.removed = FALSE
	ORDER BY e.date, e.id`

	rows, err := r.pool.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("expense.ListWindow: %w", err)
	}
	defer rows.Close()

	var result []repository.ExpenseRow
	for rows.Next() {
		var row repository.ExpenseRow
		if err := rows.Scan(
			&row.RecipientType,
			&row.SupplierName,
			&row.LabourName,
			&row.OtherRecipient,
			&row.Description,
			&row.Reference,
			&row.Amount,
		); err != nil {
			return nil, fmt.Errorf("expense.ListWindow scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// SummarizeWindow totaliza los gastos no eliminados de la ventana
// particionados por tipo de destinatario.
func (r *ExpenseRepo) SummarizeWindow(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) (repository.ExpenseWindowSummary, error) {
	const query = `
	SELECT
	    COALESCE(SUM(e.amount), 0)                                          AS total,
	    COALESCE(SUM(e.amount) FILTER (WHERE e.recipient_type = $4), 0)     AS supplier_total,
	    COALESCE(SUM(e.amount) FILTER (WHERE e.recipient_type = $5), 0)     AS labour_total,
	    COALESCE(SUM(e.amount) FILTER (WHERE e.recipient_type = $6), 0)     AS other_total
	FROM expenses e
	WHERE e.company_id = $1
	  AND e.date >= $2 AND e.date <= $3
	  AND e.removed = FALSE`

	var summary repository.ExpenseWindowSummary
	err := r.pool.QueryRow(ctx, query, companyID, start, end,
		entity.RecipientSupplier, entity.RecipientLabour, entity.RecipientOther,
	).Scan(
		&summary.Total,
		&summary.SupplierTotal,
		&summary.LabourTotal,
		&summary.OtherTotal,
	)
	if err != nil {
		return repository.ExpenseWindowSummary{}, fmt.Errorf("expense.SummarizeWindow: %w", err)
	}
	return summary, nil
}
