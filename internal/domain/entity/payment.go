package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment cobro a un cliente (recaudo por venta de villa). Solo los cobros
// con amount > 0 y removed=false cuentan como ingreso.
type Payment struct {
	ID          string
	CompanyID   string
	ClientID    *string
	VillaID     *string
	Date        time.Time
	Amount      decimal.Decimal
	Description *string
	Removed     bool
	CreatedAt   time.Time
}
