package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Constructora-api/internal/domain/entity"
	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo consultas de solo lectura sobre movimientos de material.
type InventoryMovementRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryMovementRepository construye el adaptador.
func NewInventoryMovementRepository(pool *pgxpool.Pool) *InventoryMovementRepo {
	return &InventoryMovementRepo{pool: pool}
}

// CountWindow cuenta entradas y salidas en [start, end]. El filtro es solo por
// fecha, sin company_id: los conteos históricos del resumen siempre fueron
// globales y deben seguir cuadrando.
func (r *InventoryMovementRepo) CountWindow(
	ctx context.Context,
	start, end time.Time,
) (repository.MovementCountSummary, error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE m.type = $3) AS inward_count,
	    COUNT(*) FILTER (WHERE m.type = $4) AS outward_count
	FROM inventory_movements m
	WHERE m.date >= $1 AND m.date <= $2`

	var summary repository.MovementCountSummary
	err := r.pool.QueryRow(ctx, query, start, end,
		entity.MovementTypeInward, entity.MovementTypeOutward,
	).Scan(&summary.InwardCount, &summary.OutwardCount)
	if err != nil {
		return repository.MovementCountSummary{}, fmt.Errorf("inventory.CountWindow: %w", err)
	}
	return summary, nil
}
