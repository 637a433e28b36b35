package construction_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Constructora-api/internal/domain/construction"
	"github.com/jhoicas/Constructora-api/internal/domain/entity"
)

// contractWithMilestones arma un contrato con n hitos, de los cuales los
// primeros `completed` están completados (sin fecha).
func contractWithMilestones(n, completed int) entity.LabourContract {
	ms := make([]entity.Milestone, 0, n)
	for i := 0; i < n; i++ {
		ms = append(ms, entity.Milestone{
			Name:        "Hito",
			IsCompleted: i < completed,
		})
	}
	return entity.LabourContract{ID: "c1", VillaID: "v1", Milestones: ms}
}

func TestStageForPercentage_Limites(t *testing.T) {
	// Los límites inferiores son inclusivos; 75 y 100 colapsan en "finishing".
	cases := []struct {
		percentage int
		want       string
	}{
		{0, construction.StageNotStarted},
		{1, construction.StageFoundation},
		{24, construction.StageFoundation},
		{25, construction.StageStructure},
		{49, construction.StageStructure},
		{50, construction.StagePlastering},
		{74, construction.StagePlastering},
		{75, construction.StageFinishing},
		{99, construction.StageFinishing},
		{100, construction.StageFinishing},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, construction.StageForPercentage(c.percentage),
			"porcentaje %d", c.percentage)
	}
}

func TestDerive_SinContratos(t *testing.T) {
	p := construction.Derive(nil)

	assert.Equal(t, construction.StageNotStarted, p.Stage)
	assert.Equal(t, 0, p.Percentage)
	assert.Equal(t, 0, p.TotalMilestones)
	assert.Equal(t, 0, p.CompletedMilestones)
	assert.Nil(t, p.LastUpdated)
}

func TestDerive_ContratoSinHitos(t *testing.T) {
	// Contratos existentes pero sin hitos: 0% pero ya no es "Not Started"
	// porque percentage==0 sí mapea a "Not Started".
	p := construction.Derive([]entity.LabourContract{{ID: "c1"}})

	assert.Equal(t, 0, p.Percentage)
	assert.Equal(t, construction.StageNotStarted, p.Stage)
}

func TestDerive_UnCuartoCompletado(t *testing.T) {
	// 1 de 4 hitos = 25% → "structure" (el límite 25 es inclusivo, no "foundation").
	p := construction.Derive([]entity.LabourContract{contractWithMilestones(4, 1)})

	assert.Equal(t, 25, p.Percentage)
	assert.Equal(t, construction.StageStructure, p.Stage)
	assert.Equal(t, 1, p.CompletedMilestones)
	assert.Equal(t, 4, p.TotalMilestones)
}

func TestDerive_TresCuartosCompletados(t *testing.T) {
	// 3 de 4 = 75% → "finishing".
	p := construction.Derive([]entity.LabourContract{contractWithMilestones(4, 3)})

	assert.Equal(t, 75, p.Percentage)
	assert.Equal(t, construction.StageFinishing, p.Stage)
}

func TestDerive_RedondeoAlEnteroMasCercano(t *testing.T) {
	// 1 de 3 = 33.33…% → 33; 2 de 3 = 66.67% → 67.
	p := construction.Derive([]entity.LabourContract{contractWithMilestones(3, 1)})
	assert.Equal(t, 33, p.Percentage)

	p = construction.Derive([]entity.LabourContract{contractWithMilestones(3, 2)})
	assert.Equal(t, 67, p.Percentage)
}

func TestDerive_VariosContratosSeAplanan(t *testing.T) {
	// Los hitos de todos los contratos cuentan juntos: 2+2 hitos, 3 completados.
	contracts := []entity.LabourContract{
		contractWithMilestones(2, 2),
		contractWithMilestones(2, 1),
	}
	p := construction.Derive(contracts)

	assert.Equal(t, 4, p.TotalMilestones)
	assert.Equal(t, 3, p.CompletedMilestones)
	assert.Equal(t, 75, p.Percentage)
	assert.Equal(t, construction.StageFinishing, p.Stage)
	assert.LessOrEqual(t, p.CompletedMilestones, p.TotalMilestones)
}

func TestDerive_LastUpdatedEsElMaximo(t *testing.T) {
	d1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	contracts := []entity.LabourContract{{
		ID: "c1",
		Milestones: []entity.Milestone{
			{IsCompleted: true, CompletionDate: &d1},
			{IsCompleted: true, CompletionDate: &d2},
			{IsCompleted: true}, // completado sin fecha registrada
			{IsCompleted: false},
		},
	}}
	p := construction.Derive(contracts)

	require.NotNil(t, p.LastUpdated)
	assert.True(t, p.LastUpdated.Equal(d2), "debe ser la fecha de completado más reciente")
}

func TestDerive_SinFechasDeCompletado(t *testing.T) {
	p := construction.Derive([]entity.LabourContract{contractWithMilestones(2, 2)})

	assert.Equal(t, 100, p.Percentage)
	assert.Equal(t, construction.StageFinishing, p.Stage)
	assert.Nil(t, p.LastUpdated, "sin fechas registradas LastUpdated queda nulo")
}
