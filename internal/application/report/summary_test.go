package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Constructora-api/internal/application/report"
	"github.com/jhoicas/Constructora-api/internal/domain"
	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

func newSummaryUseCase(
	attendance *fakeAttendanceRepo,
	expenses *fakeExpenseRepo,
	pettyCash *fakePettyCashRepo,
	payments *fakePaymentRepo,
	inventory *fakeInventoryRepo,
	now time.Time,
) *report.SummaryUseCase {
	windows := report.NewTimeWindowResolver(report.DefaultUTCOffsetMinutes)
	return report.NewSummaryUseCase(
		windows,
		report.NewLabourCostAggregator(attendance),
		report.NewPettyCashAggregator(pettyCash),
		report.NewExpenseAggregator(expenses),
		report.NewCollectionsAggregator(payments),
		report.NewInventoryMovementAggregator(inventory),
	).WithNow(func() time.Time { return now })
}

func TestSummary_HoyProduce24BucketsPorHora(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	uc := newSummaryUseCase(
		&fakeAttendanceRepo{}, &fakeExpenseRepo{}, &fakePettyCashRepo{}, &fakePaymentRepo{},
		&fakeInventoryRepo{summary: repository.MovementCountSummary{InwardCount: 4, OutwardCount: 2}},
		now,
	)

	resp, err := uc.Build(context.Background(), "emp-1", report.PeriodToday)

	require.NoError(t, err)
	require.Len(t, resp.Summary, 24)
	assert.Equal(t, "00:00", resp.Summary[0].Name)
	assert.Equal(t, "23:00", resp.Summary[23].Name)
	// 15:00 UTC ya es 20:30 en +05:30: todos los buckets llevan la fecha local.
	assert.Equal(t, "2025-03-10", resp.Summary[0].Month)
	assert.Equal(t, 4, resp.Inventory.Inward)
	assert.Equal(t, 2, resp.Inventory.Outward)
}

func TestSummary_MesProduceUnBucketPorDia(t *testing.T) {
	// Febrero de 2025 (no bisiesto): 28 buckets.
	now := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	uc := newSummaryUseCase(
		&fakeAttendanceRepo{}, &fakeExpenseRepo{}, &fakePettyCashRepo{}, &fakePaymentRepo{},
		&fakeInventoryRepo{}, now,
	)

	resp, err := uc.Build(context.Background(), "emp-1", report.PeriodMonth)

	require.NoError(t, err)
	require.Len(t, resp.Summary, 28)
	assert.Equal(t, "01 Feb", resp.Summary[0].Name)
	assert.Equal(t, "2025-02-01", resp.Summary[0].Month)
	assert.Equal(t, "28 Feb", resp.Summary[27].Name)
	assert.Equal(t, "2025-02-28", resp.Summary[27].Month)
}

func TestSummary_RedondeoYDesglose(t *testing.T) {
	attendance := &fakeAttendanceRepo{summary: repository.LabourCostSummary{
		TotalWages: dec("100.555"),
	}}
	pettyCash := &fakePettyCashRepo{sum: dec("49.994")}
	expenses := &fakeExpenseRepo{summary: repository.ExpenseWindowSummary{Total: dec("200.005")}}
	payments := &fakePaymentRepo{sum: dec("1000.129")}
	uc := newSummaryUseCase(attendance, expenses, pettyCash, payments, &fakeInventoryRepo{},
		time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC))

	resp, err := uc.Build(context.Background(), "emp-1", report.PeriodToday)

	require.NoError(t, err)
	b := resp.Summary[0]
	// Todo a 2 decimales (round(x*100)/100).
	assert.True(t, b.Breakdown.Labour.Equal(dec("100.56")), "labour=%s", b.Breakdown.Labour)
	assert.True(t, b.Breakdown.PettyCash.Equal(dec("49.99")))
	assert.True(t, b.Breakdown.General.Equal(dec("200.01")))
	assert.True(t, b.Income.Equal(dec("1000.13")))
	// El gasto del bucket es exactamente la suma del desglose.
	assert.True(t, b.Expense.Equal(b.Breakdown.Labour.Add(b.Breakdown.PettyCash).Add(b.Breakdown.General)))
}

func TestSummary_PeriodoInvalido(t *testing.T) {
	uc := newSummaryUseCase(
		&fakeAttendanceRepo{}, &fakeExpenseRepo{}, &fakePettyCashRepo{}, &fakePaymentRepo{},
		&fakeInventoryRepo{}, time.Now(),
	)

	_, err := uc.Build(context.Background(), "emp-1", "week")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummary_EmpresaRequerida(t *testing.T) {
	uc := newSummaryUseCase(
		&fakeAttendanceRepo{}, &fakeExpenseRepo{}, &fakePettyCashRepo{}, &fakePaymentRepo{},
		&fakeInventoryRepo{}, time.Now(),
	)

	_, err := uc.Build(context.Background(), "", report.PeriodToday)

	assert.ErrorIs(t, err, domain.ErrMissingCompany)
}

func TestSummary_FalloDeFuenteAbortaTodo(t *testing.T) {
	boom := errors.New("consulta fallida")
	uc := newSummaryUseCase(
		&fakeAttendanceRepo{}, &fakeExpenseRepo{}, &fakePettyCashRepo{err: boom}, &fakePaymentRepo{},
		&fakeInventoryRepo{}, time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Build(context.Background(), "emp-1", report.PeriodToday)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, resp)
}
