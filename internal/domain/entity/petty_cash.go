package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja menor.
const (
	PettyCashInward  = "inward"  // reposición de caja
	PettyCashOutward = "outward" // desembolso
)

// PettyCashTransaction movimiento de caja menor. Solo los desembolsos
// (type=outward) cuentan como gasto en la conciliación diaria.
type PettyCashTransaction struct {
	ID          string
	CompanyID   string
	Date        time.Time
	Type        string
	Amount      decimal.Decimal
	Description *string
	Removed     bool
	CreatedAt   time.Time
}
