package repository

import "context"

// CompanyRepository lectura mínima de empresas: el motor de reportes solo
// necesita el nombre para el encabezado del PDF.
type CompanyRepository interface {
	GetName(ctx context.Context, companyID string) (string, error)
}
