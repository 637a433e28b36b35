// Package pdf implementa la generación del PDF del reporte diario de
// conciliación de caja.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  "REPORTE DIARIO DE CAJA" + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Categoría | Pagado a | Descripción | Monto    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total gastos / Total ingresos / BALANCE NETO       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Constructora-api/internal/application/dto"
	"github.com/jhoicas/Constructora-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorIncome  = &props.Color{Red: 0, Green: 110, Blue: 60}
	colorExpense = &props.Color{Red: 160, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDailyReport genera el PDF del reporte diario y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDailyReport(
	_ context.Context,
	companyName string,
	r *dto.DailyReport,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Diario de Caja", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, r.Date))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, item := range r.Items {
		m.AddRows(itemRow(item))
	}
	if len(r.Items) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(text.New(
			"Sin movimientos registrados en el día",
			props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2},
		))))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa (izq) y título + fecha (der).
func headerRow(companyName, date string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DIARIO DE CAJA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+date, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tipo", 1, align.Center),
		h("Categoría", 2, align.Left),
		h("Pagado a", 3, align.Left),
		h("Descripción", 4, align.Left),
		h("Monto", 2, align.Right),
	)
}

// itemRow: una fila por línea de conciliación; el monto va en verde para
// ingresos y rojo para gastos.
func itemRow(item dto.ReportItem) core.Row {
	amountColor := colorExpense
	if item.Type == dto.ItemTypeIncome {
		amountColor = colorIncome
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(
			item.Type,
			props.Text{Size: 7, Align: align.Center, Top: 1, Color: colorGray},
		)),
		col.New(2).Add(text.New(
			item.Category,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			item.Payee,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(4).Add(text.New(
			item.Description,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			item.Amount.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: amountColor},
		)),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(r *dto.DailyReport) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, c *props.Color, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Color: c, Top: top})
	}
	grandLabel := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: top,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Total gastos:", 2),
			label("Total ingresos:", 9),
			grandLabel("BALANCE NETO:", 17),
		),
		col.New(4).Add(
			value(r.TotalExpense.StringFixed(2), colorExpense, 2),
			value(r.TotalIncome.StringFixed(2), colorIncome, 9),
			grandValue(r.NetBalance.StringFixed(2), 17),
		),
	)
}
