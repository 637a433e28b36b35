package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Constructora-api/internal/application/dto"
	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

// DailyReportBuilder compone la conciliación detallada de un día a partir de
// los agregadores de gastos, caja menor, mano de obra y cobros. El inventario
// no entra en el detalle diario; solo participa en el resumen de dashboard.
type DailyReportBuilder struct {
	windows     *TimeWindowResolver
	expenses    *ExpenseAggregator
	pettyCash   *PettyCashAggregator
	labour      *LabourCostAggregator
	collections *CollectionsAggregator
}

// NewDailyReportBuilder construye el builder con sus cuatro agregadores.
func NewDailyReportBuilder(
	windows *TimeWindowResolver,
	expenses *ExpenseAggregator,
	pettyCash *PettyCashAggregator,
	labour *LabourCostAggregator,
	collections *CollectionsAggregator,
) *DailyReportBuilder {
	return &DailyReportBuilder{
		windows:     windows,
		expenses:    expenses,
		pettyCash:   pettyCash,
		labour:      labour,
		collections: collections,
	}
}

// Build arma el reporte de conciliación del día de `date`.
//
// Las cuatro consultas son independientes y corren en paralelo; el orden de
// las líneas se fija al ensamblar, no según cuál consulta termine primero:
// gastos, caja menor, jornales, cobros. Si cualquier agregador falla, el día
// completo falla: no se devuelven resultados degradados.
//
// Los jornales se agregan en una sola línea sintética ("<n> Workers") y solo
// si la suma es mayor que cero; nunca se emite una línea de jornal en cero ni
// una línea por trabajador.
func (b *DailyReportBuilder) Build(
	ctx context.Context,
	companyID string,
	date time.Time,
) (*dto.DailyReport, error) {
	start, end := b.windows.DayWindow(date)

	type itemsResult struct {
		items []dto.ReportItem
		err   error
	}
	type labourResult struct {
		summary repository.LabourCostSummary
		err     error
	}

	expenseCh := make(chan itemsResult, 1)
	pettyCashCh := make(chan itemsResult, 1)
	labourCh := make(chan labourResult, 1)
	collectionsCh := make(chan itemsResult, 1)

	go func() {
		items, err := b.expenses.Items(ctx, companyID, start, end)
		expenseCh <- itemsResult{items, err}
	}()
	go func() {
		items, err := b.pettyCash.Items(ctx, companyID, start, end)
		pettyCashCh <- itemsResult{items, err}
	}()
	go func() {
		summary, err := b.labour.Aggregate(ctx, companyID, start, end)
		labourCh <- labourResult{summary, err}
	}()
	go func() {
		items, err := b.collections.Items(ctx, companyID, start, end)
		collectionsCh <- itemsResult{items, err}
	}()

	expense := <-expenseCh
	pettyCash := <-pettyCashCh
	labour := <-labourCh
	collections := <-collectionsCh

	if expense.err != nil {
		return nil, fmt.Errorf("reporte diario: %w", expense.err)
	}
	if pettyCash.err != nil {
		return nil, fmt.Errorf("reporte diario: %w", pettyCash.err)
	}
	if labour.err != nil {
		return nil, fmt.Errorf("reporte diario: %w", labour.err)
	}
	if collections.err != nil {
		return nil, fmt.Errorf("reporte diario: %w", collections.err)
	}

	// Ensamble en orden fijo de categorías.
	items := make([]dto.ReportItem, 0,
		len(expense.items)+len(pettyCash.items)+1+len(collections.items))
	items = append(items, expense.items...)
	items = append(items, pettyCash.items...)
	if labour.summary.TotalWages.IsPositive() {
		items = append(items, dto.ReportItem{
			Type:        dto.ItemTypeExpense,
			Category:    "Wages",
			Payee:       fmt.Sprintf("%d Workers", labour.summary.RecordCount),
			Description: "Daily Labour Wages Cons.",
			Amount:      labour.summary.TotalWages,
		})
	}
	items = append(items, collections.items...)

	totalExpense := decimal.Zero
	totalIncome := decimal.Zero
	for _, item := range items {
		switch item.Type {
		case dto.ItemTypeExpense:
			totalExpense = totalExpense.Add(item.Amount)
		case dto.ItemTypeIncome:
			totalIncome = totalIncome.Add(item.Amount)
		}
	}

	return &dto.DailyReport{
		Date:         b.windows.DateLabel(start),
		Items:        items,
		TotalExpense: totalExpense,
		TotalIncome:  totalIncome,
		NetBalance:   totalIncome.Sub(totalExpense),
	}, nil
}
