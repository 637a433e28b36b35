package entity

import "time"

// Villa unidad habitacional en construcción dentro de un proyecto.
// ProjectName viene resuelto por el repositorio (join con projects).
type Villa struct {
	ID          string
	CompanyID   string
	Name        string
	VillaNumber string
	ProjectID   *string
	ProjectName *string
	Removed     bool
	CreatedAt   time.Time
}
