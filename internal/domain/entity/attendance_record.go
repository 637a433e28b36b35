package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRecord asistencia diaria de un trabajador: un registro por
// trabajador y día, con el jornal y los descuentos aplicados ese día.
type AttendanceRecord struct {
	ID               string
	CompanyID        string
	LabourID         string
	Date             time.Time
	Wage             decimal.Decimal // jornal del día
	AdvanceDeduction decimal.Decimal // descuento por anticipo
	Penalty          decimal.Decimal // penalización/multa
	CreatedAt        time.Time
}
