package dto

import "github.com/shopspring/decimal"

// Tipos de línea de conciliación.
const (
	ItemTypeIncome  = "income"
	ItemTypeExpense = "expense"
)

// ReportItem línea clasificada de ingreso o gasto dentro del reporte diario.
type ReportItem struct {
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Payee       string          `json:"payee"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// DailyReport conciliación de caja de un día: líneas clasificadas más totales.
// Los totales salen de sumar Items, nunca de una consulta aparte, así el
// reporte siempre cuadra consigo mismo. Los montos van sin redondear; el
// redondeo a 2 decimales es asunto del resumen de dashboard, no del detalle.
type DailyReport struct {
	Date         string          `json:"date"`
	Items        []ReportItem    `json:"items"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	NetBalance   decimal.Decimal `json:"netBalance"`
}

// SummaryBreakdown desglose del gasto de un bucket del resumen.
type SummaryBreakdown struct {
	Labour    decimal.Decimal `json:"labour"`
	PettyCash decimal.Decimal `json:"pettyCash"`
	General   decimal.Decimal `json:"general"`
}

// SummaryBucket punto de la serie del dashboard (una hora del día de hoy o un
// día del mes). Todos los montos van redondeados a 2 decimales y
// Expense = Labour + PettyCash + General.
type SummaryBucket struct {
	Name      string           `json:"name"`
	Month     string           `json:"month"`
	Income    decimal.Decimal  `json:"income"`
	Expense   decimal.Decimal  `json:"expense"`
	Breakdown SummaryBreakdown `json:"breakdown"`
}

// MovementCounts conteo de movimientos de material de la ventana del resumen.
type MovementCounts struct {
	Inward  int `json:"inward"`
	Outward int `json:"outward"`
}

// SummaryResponse respuesta completa del resumen de dashboard: la serie de
// buckets más el conteo de movimientos de material de toda la ventana (el
// inventario se resume aparte, no entra en los buckets).
type SummaryResponse struct {
	Summary   []SummaryBucket `json:"summary"`
	Inventory MovementCounts  `json:"inventory"`
}
