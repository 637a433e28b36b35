package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Constructora-api/internal/domain/entity"
	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

var _ repository.VillaRepository = (*VillaRepo)(nil)

// VillaRepo consultas de solo lectura sobre villas.
type VillaRepo struct {
	pool *pgxpool.Pool
}

// NewVillaRepository construye el adaptador.
func NewVillaRepository(pool *pgxpool.Pool) *VillaRepo {
	return &VillaRepo{pool: pool}
}

// ListByCompany devuelve las villas no eliminadas de la empresa con el nombre
// del proyecto resuelto.
func (r *VillaRepo) ListByCompany(ctx context.Context, companyID string) ([]entity.Villa, error) {
	const query = `
	SELECT
	    v.id,
	    v.company_id,
	    v.name,
	    v.villa_number,
	    v.project_id,
	    p.name AS project_name
	FROM villas v
	LEFT JOIN projects p ON p.id = v.project_id
	WHERE v.company_id = $1
	  AND v.removed = FALSE
	ORDER BY v.villa_number, v.id`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("villa.ListByCompany: %w", err)
	}
	defer rows.Close()

	var result []entity.Villa
	for rows.Next() {
		var v entity.Villa
		if err := rows.Scan(
			&v.ID,
			&v.CompanyID,
			&v.Name,
			&v.VillaNumber,
			&v.ProjectID,
			&v.ProjectName,
		); err != nil {
			return nil, fmt.Errorf("villa.ListByCompany scan: %w", err)
		}
		result = append(result, v)
	}
	return result, rows.Err()
}
