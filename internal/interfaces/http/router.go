package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Constructora-api/internal/application/progress"
	"github.com/jhoicas/Constructora-api/internal/application/report"
	"github.com/jhoicas/Constructora-api/internal/domain/repository"
	"github.com/jhoicas/Constructora-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Windows     *report.TimeWindowResolver
	DailyReport *report.DailyReportBuilder
	RangeReport *report.RangeReportOrchestrator
	Summary     *report.SummaryUseCase
	Progress    *progress.UseCase
	PDF         report.PDFGenerator
	Companies   repository.CompanyRepository
	JWTSecret   string
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Todas las rutas requieren Bearer Token: la empresa sale del token y
	// acota cada consulta.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Reportes de conciliación (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.Windows, deps.DailyReport, deps.RangeReport, deps.Summary, deps.PDF, deps.Companies, deps.Logger)
	reports.Get("/daily", reportHandler.GetDaily)
	reports.Get("/daily/pdf", reportHandler.GetDailyPDF)
	reports.Get("/summary", reportHandler.GetSummary)

	// Avance de construcción (protegido)
	progressGroup := protected.Group("/progress")
	progressHandler := NewProgressHandler(deps.Progress, deps.Logger)
	progressGroup.Get("/villas", progressHandler.ListVillas)
	progressGroup.Get("/villas/:id", progressHandler.GetVilla)
}
