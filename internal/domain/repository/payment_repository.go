package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRow cobro individual con nombres de cliente y villa resueltos por la
// DB (LEFT JOIN). Solo incluye cobros con amount > 0 y removed=false.
type PaymentRow struct {
	ClientName  *string
	VillaName   *string
	Description *string
	Amount      decimal.Decimal
}

// PaymentRepository consultas de solo lectura sobre cobros a clientes.
type PaymentRepository interface {
	// ListWindow devuelve los cobros válidos de la empresa en [start, end],
	// en orden de fecha.
	ListWindow(ctx context.Context, companyID string, start, end time.Time) ([]PaymentRow, error)

	// SumWindow suma los cobros válidos de la empresa en [start, end].
	SumWindow(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, error)
}
