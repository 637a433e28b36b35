package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Constructora-api/internal/application/dto"
	"github.com/jhoicas/Constructora-api/internal/domain"
)

// Períodos del resumen de dashboard.
const (
	PeriodToday = "today"
	PeriodMonth = "month"
)

// SummaryUseCase proyección gruesa para gráficas: serie de buckets con
// ingreso, gasto y desglose (jornales, caja menor, gasto general), todo
// redondeado a 2 decimales. Es una proyección independiente del reporte
// detallado — el bucketing (hora del día para "today", día del mes para
// "month") y el tratamiento del inventario difieren del detalle — y no se
// deriva de él.
type SummaryUseCase struct {
	windows     *TimeWindowResolver
	labour      *LabourCostAggregator
	pettyCash   *PettyCashAggregator
	expenses    *ExpenseAggregator
	collections *CollectionsAggregator
	inventory   *InventoryMovementAggregator
	now         func() time.Time
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(
	windows *TimeWindowResolver,
	labour *LabourCostAggregator,
	pettyCash *PettyCashAggregator,
	expenses *ExpenseAggregator,
	collections *CollectionsAggregator,
	inventory *InventoryMovementAggregator,
) *SummaryUseCase {
	return &SummaryUseCase{
		windows:     windows,
		labour:      labour,
		pettyCash:   pettyCash,
		expenses:    expenses,
		collections: collections,
		inventory:   inventory,
		now:         time.Now,
	}
}

// WithNow fija el reloj del caso de uso. Solo para tests.
func (uc *SummaryUseCase) WithNow(now func() time.Time) *SummaryUseCase {
	uc.now = now
	return uc
}

// bucketWindow ventana de un bucket de la serie con sus etiquetas.
type bucketWindow struct {
	name       string
	month      string
	start, end time.Time
}

// Build arma el resumen del período pedido: "today" produce 24 buckets de una
// hora del día en curso; "month" un bucket por día calendario del mes en
// curso. El conteo de movimientos de material se calcula sobre la ventana
// completa y va aparte de la serie. Cualquier consulta que falle aborta el
// resumen completo.
func (uc *SummaryUseCase) Build(
	ctx context.Context,
	companyID, period string,
) (*dto.SummaryResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingCompany
	}

	var buckets []bucketWindow
	var windowStart, windowEnd time.Time

	switch period {
	case PeriodToday:
		dayStart, dayEnd := uc.windows.DayWindow(uc.now())
		windowStart, windowEnd = dayStart, dayEnd
		label := uc.windows.DateLabel(dayStart)
		for h := 0; h < 24; h++ {
			start := dayStart.Add(time.Duration(h) * time.Hour)
			buckets = append(buckets, bucketWindow{
				name:  fmt.Sprintf("%02d:00", h),
				month: label,
				start: start,
				end:   start.Add(time.Hour - time.Nanosecond),
			})
		}
	case PeriodMonth:
		nowLocal := uc.now().In(uc.windows.Location())
		monthFirst := time.Date(nowLocal.Year(), nowLocal.Month(), 1, 0, 0, 0, 0, uc.windows.Location())
		monthLast := monthFirst.AddDate(0, 1, -1)
		for _, day := range uc.windows.DaySequence(monthFirst, monthLast) {
			start, end := uc.windows.DayWindow(day)
			buckets = append(buckets, bucketWindow{
				name:  day.Format("02 Jan"),
				month: uc.windows.DateLabel(day),
				start: start,
				end:   end,
			})
		}
		windowStart, _ = uc.windows.DayWindow(monthFirst)
		_, windowEnd = uc.windows.DayWindow(monthLast)
	default:
		return nil, fmt.Errorf("%w: period debe ser %q o %q", domain.ErrInvalidInput, PeriodToday, PeriodMonth)
	}

	series := make([]dto.SummaryBucket, 0, len(buckets))
	for _, b := range buckets {
		labourSummary, err := uc.labour.Aggregate(ctx, companyID, b.start, b.end)
		if err != nil {
			return nil, fmt.Errorf("resumen %s: %w", b.name, err)
		}
		pettyTotal, err := uc.pettyCash.Sum(ctx, companyID, b.start, b.end)
		if err != nil {
			return nil, fmt.Errorf("resumen %s: %w", b.name, err)
		}
		expenseSummary, err := uc.expenses.Summarize(ctx, companyID, b.start, b.end)
		if err != nil {
			return nil, fmt.Errorf("resumen %s: %w", b.name, err)
		}
		income, err := uc.collections.Sum(ctx, companyID, b.start, b.end)
		if err != nil {
			return nil, fmt.Errorf("resumen %s: %w", b.name, err)
		}

		// Se redondean las partes y el gasto se suma de las partes redondeadas,
		// así expense == labour + pettyCash + general se sostiene exacto.
		labour := labourSummary.TotalWages.Round(2)
		petty := pettyTotal.Round(2)
		general := expenseSummary.Total.Round(2)
		series = append(series, dto.SummaryBucket{
			Name:    b.name,
			Month:   b.month,
			Income:  income.Round(2),
			Expense: labour.Add(petty).Add(general),
			Breakdown: dto.SummaryBreakdown{
				Labour:    labour,
				PettyCash: petty,
				General:   general,
			},
		})
	}

	movementCounts, err := uc.inventory.Aggregate(ctx, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("resumen: %w", err)
	}

	return &dto.SummaryResponse{
		Summary: series,
		Inventory: dto.MovementCounts{
			Inward:  movementCounts.InwardCount,
			Outward: movementCounts.OutwardCount,
		},
	}, nil
}
