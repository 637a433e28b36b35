package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PettyCashRow desembolso individual de caja menor para el detalle diario.
type PettyCashRow struct {
	Description *string
	Amount      decimal.Decimal
}

// PettyCashRepository consultas de solo lectura sobre caja menor.
type PettyCashRepository interface {
	// ListOutwardWindow devuelve los desembolsos (type=outward, removed=false)
	// de la empresa en [start, end], en orden de fecha.
	ListOutwardWindow(ctx context.Context, companyID string, start, end time.Time) ([]PettyCashRow, error)

	// SumOutwardWindow suma los desembolsos (type=outward) de la empresa en
	// [start, end]. Esta suma histórica no filtra removed: así la calcula el
	// resumen de dashboard desde siempre y los totales deben seguir cuadrando
	// con los reportes ya emitidos.
	SumOutwardWindow(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, error)
}
