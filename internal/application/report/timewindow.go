// Package report implementa el motor de conciliación financiera diaria:
// ventanas de tiempo a offset fijo, los cinco agregadores de fuentes
// transaccionales, el constructor del reporte diario detallado, el
// orquestador de rangos y la proyección gruesa para dashboards.
package report

import (
	"fmt"
	"time"
)

// DefaultUTCOffsetMinutes offset horario por defecto de los reportes: +05:30.
// Las obras registran todo en hora local del sitio; el offset es configurable
// (REPORT_UTC_OFFSET_MINUTES) para no fijarlo dentro de la lógica.
const DefaultUTCOffsetMinutes = 330

// TimeWindowResolver resuelve ventanas de día calendario a un offset UTC fijo,
// independiente de la zona horaria del proceso y de la zona con que venga
// almacenado el instante.
type TimeWindowResolver struct {
	loc *time.Location
}

// NewTimeWindowResolver construye el resolver para el offset dado en minutos.
func NewTimeWindowResolver(offsetMinutes int) *TimeWindowResolver {
	sign := "+"
	m := offsetMinutes
	if m < 0 {
		sign = "-"
		m = -m
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, m/60, m%60)
	return &TimeWindowResolver{loc: time.FixedZone(name, offsetMinutes*60)}
}

// Location devuelve la zona de offset fijo del resolver.
func (r *TimeWindowResolver) Location() *time.Location {
	return r.loc
}

// DayWindow devuelve el primer y el último instante del día calendario al que
// pertenece date, medido en el offset del resolver. La ventana es inclusiva en
// ambos extremos: el filtrado aguas abajo es date >= start AND date <= end,
// así que la medianoche del día siguiente queda fuera.
func (r *TimeWindowResolver) DayWindow(date time.Time) (start, end time.Time) {
	d := date.In(r.loc)
	start = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, r.loc)
	end = start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// DaySequence enumera los días calendario desde startDate hasta endDate,
// ambos inclusive, de uno en uno. Si endDate es anterior a startDate devuelve
// la lista vacía: no hay intercambio implícito de extremos.
func (r *TimeWindowResolver) DaySequence(startDate, endDate time.Time) []time.Time {
	first, _ := r.DayWindow(startDate)
	last, _ := r.DayWindow(endDate)
	if last.Before(first) {
		return nil
	}

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DateLabel formatea la fecha como etiqueta de día (YYYY-MM-DD) en el offset
// del resolver.
func (r *TimeWindowResolver) DateLabel(date time.Time) string {
	return date.In(r.loc).Format("2006-01-02")
}
