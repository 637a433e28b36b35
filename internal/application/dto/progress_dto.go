package dto

import "time"

// VillaProgress avance derivado de una villa: etapa, porcentaje y conteo de
// hitos. Se recalcula en cada consulta, nunca se persiste.
type VillaProgress struct {
	VillaID             string     `json:"villaId"`
	Name                string     `json:"name"`
	VillaNumber         string     `json:"villaNumber"`
	Project             string     `json:"project"`
	Stage               string     `json:"stage"`
	Percentage          int        `json:"percentage"`
	LastUpdated         *time.Time `json:"lastUpdated"`
	TotalContracts      int        `json:"totalContracts"`
	CompletedMilestones int        `json:"completedMilestones"`
	TotalMilestones     int        `json:"totalMilestones"`
}
