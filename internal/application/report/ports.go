package report

import (
	"context"

	"github.com/jhoicas/Constructora-api/internal/application/dto"
)

// PDFGenerator puerto hacia el renderizador de PDF del reporte diario.
// La implementación vive en infrastructure/pdf.
type PDFGenerator interface {
	GenerateDailyReport(ctx context.Context, companyName string, report *dto.DailyReport) ([]byte, error)
}
