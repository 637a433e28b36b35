package repository

import (
	"context"
	"time"
)

// MovementCountSummary conteo de movimientos de material por tipo.
// Solo cuenta registros; las cantidades no participan en esta vista.
type MovementCountSummary struct {
	InwardCount  int
	OutwardCount int
}

// InventoryMovementRepository consultas de solo lectura sobre movimientos de material.
type InventoryMovementRepository interface {
	// CountWindow cuenta entradas y salidas dentro de la ventana inclusiva
	// [start, end]. El filtro es global por fecha: este resumen histórico no
	// está acotado por empresa.
	CountWindow(ctx context.Context, start, end time.Time) (MovementCountSummary, error)
}
