package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LabourCostSummary totales de asistencia en una ventana de tiempo.
// Una ventana sin registros produce un resumen en cero, nunca un error.
type LabourCostSummary struct {
	TotalWages     decimal.Decimal
	TotalAdvances  decimal.Decimal
	TotalPenalties decimal.Decimal
	RecordCount    int
}

// AttendanceRepository consultas de solo lectura sobre asistencia de trabajadores.
type AttendanceRepository interface {
	// SummarizeWindow suma jornales, anticipos y penalizaciones de los registros
	// de la empresa dentro de la ventana inclusiva [start, end].
	SummarizeWindow(ctx context.Context, companyID string, start, end time.Time) (LabourCostSummary, error)
}
