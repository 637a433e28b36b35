package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de destinatario de un gasto.
const (
	RecipientSupplier = "Supplier"
	RecipientLabour   = "Labour"
	RecipientOther    = "Other"
)

// Expense gasto de obra pagado a un proveedor, a un trabajador o a un tercero.
// SupplierID/LabourID solo aplican según RecipientType; OtherRecipient es la
// etiqueta libre cuando el destinatario no está registrado.
type Expense struct {
	ID             string
	CompanyID      string
	Date           time.Time
	RecipientType  string
	SupplierID     *string
	LabourID       *string
	OtherRecipient *string
	Amount         decimal.Decimal
	Description    *string
	Reference      *string
	Removed        bool
	CreatedAt      time.Time
}
