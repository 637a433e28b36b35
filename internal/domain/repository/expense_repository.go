package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRow fila cruda de gasto con los nombres de destinatario ya resueltos
// por la DB (LEFT JOIN con suppliers/labourers). El use case decide cuál
// nombre mostrar según RecipientType.
type ExpenseRow struct {
	RecipientType  string
	SupplierName   *string
	LabourName     *string
	OtherRecipient *string
	Description    *string
	Reference      *string
	Amount         decimal.Decimal
}

// ExpenseWindowSummary total de gastos de la ventana, particionado por tipo
// de destinatario. Total = SupplierTotal + LabourTotal + OtherTotal.
type ExpenseWindowSummary struct {
	Total         decimal.Decimal
	SupplierTotal decimal.Decimal
	LabourTotal   decimal.Decimal
	OtherTotal    decimal.Decimal
}

// ExpenseRepository consultas de solo lectura sobre gastos de obra.
// Ambos métodos excluyen gastos con removed=true.
type ExpenseRepository interface {
	// ListWindow devuelve las filas de gasto de la empresa en [start, end],
	// en orden de fecha, con nombres de destinatario resueltos.
	ListWindow(ctx context.Context, companyID string, start, end time.Time) ([]ExpenseRow, error)

	// SummarizeWindow suma los gastos de la empresa en [start, end]
	// particionados por tipo de destinatario.
	SummarizeWindow(ctx context.Context, companyID string, start, end time.Time) (ExpenseWindowSummary, error)
}
