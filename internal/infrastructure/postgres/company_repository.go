package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Constructora-api/internal/domain"
	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo lectura mínima de empresas.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// GetName devuelve el nombre de la empresa.
func (r *CompanyRepo) GetName(ctx context.Context, companyID string) (string, error) {
	const query = `SELECT name FROM companies WHERE id = $1`

	var name string
	err := r.pool.QueryRow(ctx, query, companyID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("company.GetName: %w", err)
	}
	return name, nil
}
