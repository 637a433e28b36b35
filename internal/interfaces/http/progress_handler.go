package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Constructora-api/internal/application/dto"
	"github.com/jhoicas/Constructora-api/internal/application/progress"
	"github.com/jhoicas/Constructora-api/internal/domain"
	"github.com/jhoicas/Constructora-api/pkg/logger"
)

// ProgressHandler expone el avance de construcción derivado por villa.
type ProgressHandler struct {
	uc  *progress.UseCase
	log *logger.Logger
}

// NewProgressHandler construye el handler.
func NewProgressHandler(uc *progress.UseCase, log *logger.Logger) *ProgressHandler {
	return &ProgressHandler{uc: uc, log: log}
}

// ListVillas devuelve el avance de todas las villas de la empresa.
func (h *ProgressHandler) ListVillas(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "COMPANY_REQUIRED", Message: "empresa no identificada en el token"})
	}

	result, err := h.uc.ListVillaProgress(c.UserContext(), companyID)
	if err != nil {
		h.log.Error().Err(err).Msg("error derivando avance de villas")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_ERROR", Message: "error interno"})
	}
	return c.JSON(result)
}

// GetVilla devuelve el avance derivado de una sola villa.
func (h *ProgressHandler) GetVilla(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "COMPANY_REQUIRED", Message: "empresa no identificada en el token"})
	}

	result, err := h.uc.DeriveVilla(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
		}
		h.log.Error().Err(err).Str("villa_id", c.Params("id")).Msg("error derivando avance de villa")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_ERROR", Message: "error interno"})
	}
	return c.JSON(result)
}
