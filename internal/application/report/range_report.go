package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Constructora-api/internal/application/dto"
)

// RangeReportOrchestrator arma un reporte diario por cada día calendario de un
// rango, en orden ascendente. No hay agregación cruzada ni arrastre de saldos
// entre días: cada reporte es independiente.
type RangeReportOrchestrator struct {
	windows *TimeWindowResolver
	daily   *DailyReportBuilder
}

// NewRangeReportOrchestrator construye el orquestador.
func NewRangeReportOrchestrator(windows *TimeWindowResolver, daily *DailyReportBuilder) *RangeReportOrchestrator {
	return &RangeReportOrchestrator{windows: windows, daily: daily}
}

// Build invoca el builder diario para cada día de [startDate, endDate] en
// secuencia. Si cualquier día falla, la llamada completa falla: los días ya
// construidos se descartan, nunca se devuelve una lista parcial. Un rango
// invertido (endDate < startDate) produce la lista vacía.
func (o *RangeReportOrchestrator) Build(
	ctx context.Context,
	companyID string,
	startDate, endDate time.Time,
) ([]*dto.DailyReport, error) {
	days := o.windows.DaySequence(startDate, endDate)

	reports := make([]*dto.DailyReport, 0, len(days))
	for _, day := range days {
		r, err := o.daily.Build(ctx, companyID, day)
		if err != nil {
			return nil, fmt.Errorf("rango %s: %w", o.windows.DateLabel(day), err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}
