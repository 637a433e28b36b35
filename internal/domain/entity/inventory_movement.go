package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario de obra.
const (
	MovementTypeInward     = "inward"     // entrada de material
	MovementTypeOutward    = "outward"    // salida a obra
	MovementTypeAdjustment = "adjustment" // ajuste de existencias
)

// InventoryMovement movimiento de material de construcción (entrada, salida o ajuste).
// Para la conciliación financiera solo interesa el tipo; las cantidades se usan
// en el módulo de inventario, no aquí.
type InventoryMovement struct {
	ID         string
	MaterialID string
	Type       string
	Quantity   decimal.Decimal
	Date       time.Time
	CreatedAt  time.Time
}
