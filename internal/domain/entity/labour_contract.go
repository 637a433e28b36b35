package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Milestone hito de un contrato de mano de obra: unidad de trabajo con peso
// porcentual propio, marcable como completado con su fecha.
// CompletionDate solo está presente si IsCompleted es true.
type Milestone struct {
	ID             string
	ContractID     string
	Name           string
	Percentage     decimal.Decimal // peso del hito dentro del contrato, 0–100
	Amount         decimal.Decimal
	IsCompleted    bool
	CompletionDate *time.Time
}

// LabourContract contrato de mano de obra asociado a una villa.
// Una villa puede tener cero o más contratos; cada contrato lleva su lista
// ordenada de hitos.
type LabourContract struct {
	ID         string
	CompanyID  string
	VillaID    string
	Milestones []Milestone
	Removed    bool
	CreatedAt  time.Time
}
