package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/garage-service/internal/api/dto"
	"github.com/spec-kit/garage-service/internal/service"
	apperrors "github.com/spec-kit/garage-service/pkg/util"
)

// ProgressHandler manages the progress log endpoints.
type ProgressHandler struct {
	progress *service.ProgressService
}

// NewProgressHandler constructs handler.
func NewProgressHandler(progress *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// CreateEntry POST /progress-logs.
func (h *ProgressHandler) CreateEntry(c *fiber.Ctx) error {
	var req dto.CreateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("ticket_number, date, time, status and description are required", details)
	}

	entry, err := h.progress.AddEntry(c.UserContext(), service.ProgressInput{
		TicketNumber: req.TicketNumber,
		Date:         req.Date,
		Time:         req.Time,
		Status:       req.Status,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.ProgressLogFromDomain(entry)})
}

// ListEntries GET /progress-logs/:ticket_number.
func (h *ProgressHandler) ListEntries(c *fiber.Ctx) error {
	entries, err := h.progress.ListEntries(c.UserContext(), c.Params("ticket_number"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ProgressLogsFromDomain(entries)})
}
