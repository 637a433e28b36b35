package report_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

// Fakes de los repositorios de lectura. Cada uno devuelve datos fijos o, si
// se define fn, delega en él (para simular fallos o filtrar por ventana).

type fakeAttendanceRepo struct {
	summary repository.LabourCostSummary
	err     error
	fn      func(start, end time.Time) (repository.LabourCostSummary, error)
}

func (f *fakeAttendanceRepo) SummarizeWindow(_ context.Context, _ string, start, end time.Time) (repository.LabourCostSummary, error) {
	if f.fn != nil {
		return f.fn(start, end)
	}
	return f.summary, f.err
}

type fakeInventoryRepo struct {
	summary repository.MovementCountSummary
	err     error
}

func (f *fakeInventoryRepo) CountWindow(_ context.Context, _, _ time.Time) (repository.MovementCountSummary, error) {
	return f.summary, f.err
}

type fakeExpenseRepo struct {
	rows    []repository.ExpenseRow
	summary repository.ExpenseWindowSummary
	err     error
}

func (f *fakeExpenseRepo) ListWindow(_ context.Context, _ string, _, _ time.Time) ([]repository.ExpenseRow, error) {
	return f.rows, f.err
}

func (f *fakeExpenseRepo) SummarizeWindow(_ context.Context, _ string, _, _ time.Time) (repository.ExpenseWindowSummary, error) {
	return f.summary, f.err
}

type fakePettyCashRepo struct {
	rows []repository.PettyCashRow
	sum  decimal.Decimal
	err  error
}

func (f *fakePettyCashRepo) ListOutwardWindow(_ context.Context, _ string, _, _ time.Time) ([]repository.PettyCashRow, error) {
	return f.rows, f.err
}

func (f *fakePettyCashRepo) SumOutwardWindow(_ context.Context, _ string, _, _ time.Time) (decimal.Decimal, error) {
	return f.sum, f.err
}

type fakePaymentRepo struct {
	rows []repository.PaymentRow
	sum  decimal.Decimal
	err  error
	fn   func(start, end time.Time) ([]repository.PaymentRow, error)
}

func (f *fakePaymentRepo) ListWindow(_ context.Context, _ string, start, end time.Time) ([]repository.PaymentRow, error) {
	if f.fn != nil {
		return f.fn(start, end)
	}
	return f.rows, f.err
}

func (f *fakePaymentRepo) SumWindow(_ context.Context, _ string, _, _ time.Time) (decimal.Decimal, error) {
	return f.sum, f.err
}

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
