package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Constructora-api/internal/application/report"
	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

func TestRange_UnReportePorDiaEnOrden(t *testing.T) {
	windows := report.NewTimeWindowResolver(report.DefaultUTCOffsetMinutes)
	b := newDailyBuilder(&fakeAttendanceRepo{}, &fakeExpenseRepo{}, &fakePettyCashRepo{}, &fakePaymentRepo{})
	o := report.NewRangeReportOrchestrator(windows, b)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, windows.Location())
	end := time.Date(2025, 3, 3, 0, 0, 0, 0, windows.Location())
	reports, err := o.Build(context.Background(), "emp-1", start, end)

	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "2025-03-01", reports[0].Date)
	assert.Equal(t, "2025-03-02", reports[1].Date)
	assert.Equal(t, "2025-03-03", reports[2].Date)
}

func TestRange_FalloDeUnDiaAbortaElRango(t *testing.T) {
	windows := report.NewTimeWindowResolver(report.DefaultUTCOffsetMinutes)
	boom := errors.New("timeout de consulta")

	// El día 2 falla; los días 1 y 3 no deben devolverse en silencio.
	day2Start, day2End := windows.DayWindow(time.Date(2025, 3, 2, 12, 0, 0, 0, windows.Location()))
	attendance := &fakeAttendanceRepo{fn: func(start, end time.Time) (repository.LabourCostSummary, error) {
		if start.Equal(day2Start) && end.Equal(day2End) {
			return repository.LabourCostSummary{}, boom
		}
		return repository.LabourCostSummary{}, nil
	}}
	b := newDailyBuilder(attendance, &fakeExpenseRepo{}, &fakePettyCashRepo{}, &fakePaymentRepo{})
	o := report.NewRangeReportOrchestrator(windows, b)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, windows.Location())
	end := time.Date(2025, 3, 3, 0, 0, 0, 0, windows.Location())
	reports, err := o.Build(context.Background(), "emp-1", start, end)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, reports, "sin lista parcial")
}

func TestRange_RangoInvertidoDevuelveVacio(t *testing.T) {
	windows := report.NewTimeWindowResolver(report.DefaultUTCOffsetMinutes)
	b := newDailyBuilder(&fakeAttendanceRepo{}, &fakeExpenseRepo{}, &fakePettyCashRepo{}, &fakePaymentRepo{})
	o := report.NewRangeReportOrchestrator(windows, b)

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, windows.Location())
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, windows.Location())
	reports, err := o.Build(context.Background(), "emp-1", start, end)

	require.NoError(t, err)
	assert.Empty(t, reports)
}
