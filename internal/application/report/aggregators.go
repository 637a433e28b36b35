package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Constructora-api/internal/application/dto"
	"github.com/jhoicas/Constructora-api/internal/domain/entity"
	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

// Cinco agregadores, uno por fuente transaccional. Cada uno toma una ventana
// inclusiva [start, end] y devuelve un resumen de forma fija. Son lecturas
// puras e independientes entre sí; un agregador que no puede ejecutar su
// consulta propaga el error al llamador, sin resultado parcial.

// ── Mano de obra ──────────────────────────────────────────────────────────────

// LabourCostAggregator suma jornales, anticipos y penalizaciones de asistencia.
type LabourCostAggregator struct {
	attendance repository.AttendanceRepository
}

// NewLabourCostAggregator construye el agregador.
func NewLabourCostAggregator(attendance repository.AttendanceRepository) *LabourCostAggregator {
	return &LabourCostAggregator{attendance: attendance}
}

// Aggregate resume la asistencia de la empresa en la ventana. Una ventana sin
// registros devuelve el resumen en cero.
func (a *LabourCostAggregator) Aggregate(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) (repository.LabourCostSummary, error) {
	summary, err := a.attendance.SummarizeWindow(ctx, companyID, start, end)
	if err != nil {
		return repository.LabourCostSummary{}, fmt.Errorf("agregador de mano de obra: %w", err)
	}
	return summary, nil
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryMovementAggregator cuenta entradas y salidas de material.
// El filtro es solo por ventana, sin acotar por empresa: los reportes
// históricos se emitieron siempre así y los conteos deben seguir cuadrando.
type InventoryMovementAggregator struct {
	movements repository.InventoryMovementRepository
}

// NewInventoryMovementAggregator construye el agregador.
func NewInventoryMovementAggregator(movements repository.InventoryMovementRepository) *InventoryMovementAggregator {
	return &InventoryMovementAggregator{movements: movements}
}

// Aggregate cuenta los movimientos de la ventana por tipo.
func (a *InventoryMovementAggregator) Aggregate(
	ctx context.Context,
	start, end time.Time,
) (repository.MovementCountSummary, error) {
	summary, err := a.movements.CountWindow(ctx, start, end)
	if err != nil {
		return repository.MovementCountSummary{}, fmt.Errorf("agregador de inventario: %w", err)
	}
	return summary, nil
}

// ── Cobros ────────────────────────────────────────────────────────────────────

// CollectionsAggregator recaudo de clientes: cobros con amount > 0 y removed=false.
type CollectionsAggregator struct {
	payments repository.PaymentRepository
}

// NewCollectionsAggregator construye el agregador.
func NewCollectionsAggregator(payments repository.PaymentRepository) *CollectionsAggregator {
	return &CollectionsAggregator{payments: payments}
}

// Items devuelve una línea de ingreso por cada cobro válido de la ventana.
// Payee es el nombre del cliente ("Unknown Client" si el cobro no tiene
// cliente resuelto); la descripción une nombre de villa y descripción del
// cobro con " | ".
func (a *CollectionsAggregator) Items(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) ([]dto.ReportItem, error) {
	rows, err := a.payments.ListWindow(ctx, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("agregador de cobros: %w", err)
	}

	items := make([]dto.ReportItem, 0, len(rows))
	for _, row := range rows {
		payee := "Unknown Client"
		if row.ClientName != nil && *row.ClientName != "" {
			payee = *row.ClientName
		}
		items = append(items, dto.ReportItem{
			Type:        dto.ItemTypeIncome,
			Category:    "Collection",
			Payee:       payee,
			Description: joinParts(row.VillaName, row.Description),
			Amount:      row.Amount,
		})
	}
	return items, nil
}

// Sum suma los cobros válidos de la ventana.
func (a *CollectionsAggregator) Sum(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) (decimal.Decimal, error) {
	total, err := a.payments.SumWindow(ctx, companyID, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("agregador de cobros: %w", err)
	}
	return total, nil
}

// ── Caja menor ────────────────────────────────────────────────────────────────

// PettyCashAggregator desembolsos de caja menor (type=outward).
type PettyCashAggregator struct {
	pettyCash repository.PettyCashRepository
}

// NewPettyCashAggregator construye el agregador.
func NewPettyCashAggregator(pettyCash repository.PettyCashRepository) *PettyCashAggregator {
	return &PettyCashAggregator{pettyCash: pettyCash}
}

// Items devuelve una línea de gasto por cada desembolso no eliminado de la
// ventana, con payee fijo "Cash".
func (a *PettyCashAggregator) Items(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) ([]dto.ReportItem, error) {
	rows, err := a.pettyCash.ListOutwardWindow(ctx, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("agregador de caja menor: %w", err)
	}

	items := make([]dto.ReportItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ReportItem{
			Type:        dto.ItemTypeExpense,
			Category:    "Petty Cash",
			Payee:       "Cash",
			Description: fallback(row.Description),
			Amount:      row.Amount,
		})
	}
	return items, nil
}

// Sum suma los desembolsos de la ventana (vista histórica, sin filtro removed).
func (a *PettyCashAggregator) Sum(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) (decimal.Decimal, error) {
	total, err := a.pettyCash.SumOutwardWindow(ctx, companyID, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("agregador de caja menor: %w", err)
	}
	return total, nil
}

// ── Gastos ────────────────────────────────────────────────────────────────────

// ExpenseAggregator gastos de obra no eliminados, con el nombre del
// destinatario resuelto según el tipo.
type ExpenseAggregator struct {
	expenses repository.ExpenseRepository
}

// NewExpenseAggregator construye el agregador.
func NewExpenseAggregator(expenses repository.ExpenseRepository) *ExpenseAggregator {
	return &ExpenseAggregator{expenses: expenses}
}

// Items devuelve una línea de gasto por cada registro de la ventana. La
// categoría es el tipo de destinatario; la descripción cae a la referencia y
// después a "-".
func (a *ExpenseAggregator) Items(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) ([]dto.ReportItem, error) {
	rows, err := a.expenses.ListWindow(ctx, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("agregador de gastos: %w", err)
	}

	items := make([]dto.ReportItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ReportItem{
			Type:        dto.ItemTypeExpense,
			Category:    row.RecipientType,
			Payee:       resolvePayee(row),
			Description: fallback(row.Description, row.Reference),
			Amount:      row.Amount,
		})
	}
	return items, nil
}

// Summarize totaliza los gastos de la ventana particionados por destinatario.
func (a *ExpenseAggregator) Summarize(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) (repository.ExpenseWindowSummary, error) {
	summary, err := a.expenses.SummarizeWindow(ctx, companyID, start, end)
	if err != nil {
		return repository.ExpenseWindowSummary{}, fmt.Errorf("agregador de gastos: %w", err)
	}
	return summary, nil
}

// resolvePayee elige el nombre a mostrar según el tipo de destinatario:
// proveedor, trabajador o etiqueta libre. Sin nombre resoluble: "N/A".
func resolvePayee(row repository.ExpenseRow) string {
	switch row.RecipientType {
	case entity.RecipientSupplier:
		if row.SupplierName != nil && *row.SupplierName != "" {
			return *row.SupplierName
		}
	case entity.RecipientLabour:
		if row.LabourName != nil && *row.LabourName != "" {
			return *row.LabourName
		}
	case entity.RecipientOther:
		if row.OtherRecipient != nil && *row.OtherRecipient != "" {
			return *row.OtherRecipient
		}
	}
	return "N/A"
}

// fallback devuelve el primer valor no vacío, o "-" si no hay ninguno.
func fallback(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return "-"
}

// joinParts une las partes no vacías con " | "; sin partes devuelve "-".
func joinParts(parts ...*string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != nil && *p != "" {
			nonEmpty = append(nonEmpty, *p)
		}
	}
	if len(nonEmpty) == 0 {
		return "-"
	}
	return strings.Join(nonEmpty, " | ")
}
