// Package construction contiene la lógica pura de derivación del avance de
// obra: reduce los hitos de los contratos de mano de obra de una villa a un
// porcentaje de avance y a una etapa discreta de construcción.
//
// No hay estado persistido: la etapa no es una máquina de estados con
// transiciones, es siempre una función determinista de los hitos vivos al
// momento de la consulta.
package construction

import (
	"math"
	"time"

	"github.com/jhoicas/Constructora-api/internal/domain/entity"
)

// Etapas de construcción derivadas del porcentaje de avance.
const (
	StageNotStarted = "Not Started"
	StageFoundation = "foundation"
	StageStructure  = "structure"
	StagePlastering = "plastering"
	StageFinishing  = "finishing"
)

// Progress avance derivado de una villa. Se recalcula en cada consulta.
type Progress struct {
	Stage               string
	Percentage          int
	CompletedMilestones int
	TotalMilestones     int
	LastUpdated         *time.Time
}

// StageForPercentage mapea un porcentaje [0,100] a su etapa. Los límites
// inferiores son inclusivos: 25 ya es "structure" y 75 ya es "finishing".
// Nota: [75,100) y 100 comparten la etiqueta "finishing"; una villa al 75%
// y una al 100% son indistinguibles en esta vista.
func StageForPercentage(percentage int) string {
	switch {
	case percentage == 0:
		return StageNotStarted
	case percentage < 25:
		return StageFoundation
	case percentage < 50:
		return StageStructure
	case percentage < 75:
		return StagePlastering
	default:
		return StageFinishing
	}
}

// Derive reduce los contratos (ya filtrados a removed=false) de una villa a su
// avance. Sin contratos: 0% y "Not Started". Con contratos, el porcentaje es
// la proporción de hitos completados sobre el total, redondeada al entero más
// cercano; LastUpdated es la fecha de completado más reciente entre los hitos
// completados que la tienen registrada.
func Derive(contracts []entity.LabourContract) Progress {
	if len(contracts) == 0 {
		return Progress{Stage: StageNotStarted}
	}

	var total, completed int
	var lastUpdated *time.Time
	for _, c := range contracts {
		for _, m := range c.Milestones {
			total++
			if !m.IsCompleted {
				continue
			}
			completed++
			if m.CompletionDate == nil {
				continue
			}
			if lastUpdated == nil || m.CompletionDate.After(*lastUpdated) {
				d := *m.CompletionDate
				lastUpdated = &d
			}
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return Progress{
		Stage:               StageForPercentage(percentage),
		Percentage:          percentage,
		CompletedMilestones: completed,
		TotalMilestones:     total,
		LastUpdated:         lastUpdated,
	}
}
