package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Constructora-api/internal/application/dto"
	"github.com/jhoicas/Constructora-api/internal/application/report"
	"github.com/jhoicas/Constructora-api/internal/domain"
	"github.com/jhoicas/Constructora-api/internal/domain/repository"
	"github.com/jhoicas/Constructora-api/pkg/logger"
)

// ReportHandler expone los reportes de conciliación diaria, el rango de días,
// el resumen de dashboard y la exportación PDF.
type ReportHandler struct {
	windows   *report.TimeWindowResolver
	daily     *report.DailyReportBuilder
	ranges    *report.RangeReportOrchestrator
	summary   *report.SummaryUseCase
	pdf       report.PDFGenerator
	companies repository.CompanyRepository
	log       *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(
	windows *report.TimeWindowResolver,
	daily *report.DailyReportBuilder,
	ranges *report.RangeReportOrchestrator,
	summary *report.SummaryUseCase,
	pdf report.PDFGenerator,
	companies repository.CompanyRepository,
	log *logger.Logger,
) *ReportHandler {
	return &ReportHandler{
		windows:   windows,
		daily:     daily,
		ranges:    ranges,
		summary:   summary,
		pdf:       pdf,
		companies: companies,
		log:       log,
	}
}

// parseDate interpreta una fecha YYYY-MM-DD en el offset de los reportes.
func (h *ReportHandler) parseDate(value string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", value, h.windows.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q, formato esperado YYYY-MM-DD", domain.ErrInvalidDate, value)
	}
	return d, nil
}

// respondError mapea los errores del dominio a códigos HTTP.
func (h *ReportHandler) respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingCompany):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "COMPANY_REQUIRED", Message: "empresa no identificada en el token"})
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("error interno en reporte")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_ERROR", Message: "error interno"})
	}
}

// GetDaily devuelve la conciliación detallada de un día (query `date`) o de un
// rango inclusivo de días si además viene `end_date`.
func (h *ReportHandler) GetDaily(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return h.respondError(c, domain.ErrMissingCompany)
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "query param date requerido (YYYY-MM-DD)"})
	}
	date, err := h.parseDate(dateStr)
	if err != nil {
		return h.respondError(c, err)
	}

	if endStr := c.Query("end_date"); endStr != "" {
		endDate, err := h.parseDate(endStr)
		if err != nil {
			return h.respondError(c, err)
		}
		reports, err := h.ranges.Build(c.UserContext(), companyID, date, endDate)
		if err != nil {
			return h.respondError(c, err)
		}
		return c.JSON(reports)
	}

	r, err := h.daily.Build(c.UserContext(), companyID, date)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(r)
}

// GetDailyPDF genera el PDF del reporte diario de caja de un día.
func (h *ReportHandler) GetDailyPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return h.respondError(c, domain.ErrMissingCompany)
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "query param date requerido (YYYY-MM-DD)"})
	}
	date, err := h.parseDate(dateStr)
	if err != nil {
		return h.respondError(c, err)
	}

	r, err := h.daily.Build(c.UserContext(), companyID, date)
	if err != nil {
		return h.respondError(c, err)
	}

	companyName, err := h.companies.GetName(c.UserContext(), companyID)
	if err != nil {
		return h.respondError(c, err)
	}

	pdfBytes, err := h.pdf.GenerateDailyReport(c.UserContext(), companyName, r)
	if err != nil {
		return h.respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reporte-diario-%s.pdf"`, r.Date))
	return c.Send(pdfBytes)
}

// GetSummary devuelve la serie gruesa para gráficas del dashboard.
// period: "today" (default) o "month".
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return h.respondError(c, domain.ErrMissingCompany)
	}

	period := c.Query("period", report.PeriodToday)
	resp, err := h.summary.Build(c.UserContext(), companyID, period)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(resp)
}
