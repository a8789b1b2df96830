package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/garage-service/internal/api/dto"
	"github.com/spec-kit/garage-service/internal/service"
	apperrors "github.com/spec-kit/garage-service/pkg/util"
)

// InspectionsHandler manages inspection endpoints.
type InspectionsHandler struct {
	inspections *service.InspectionService
}

// NewInspectionsHandler constructs handler.
func NewInspectionsHandler(inspections *service.InspectionService) *InspectionsHandler {
	return &InspectionsHandler{inspections: inspections}
}

// CreateInspection POST /inspections.
func (h *InspectionsHandler) CreateInspection(c *fiber.Ctx) error {
	var req dto.CreateInspectionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("ticket_number and status are required", details)
	}

	record, err := h.inspections.RecordInspection(c.UserContext(), service.InspectionInput{
		TicketNumber:       req.TicketNumber,
		MainIssueResolved:  req.MainIssueResolved,
		ReassemblyVerified: req.ReassemblyVerified,
		GeneralCondition:   req.GeneralCondition,
		Notes:              req.Notes,
		Status:             req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.InspectionFromDomain(record)})
}

// ListInspections GET /inspections/:ticket_number.
func (h *InspectionsHandler) ListInspections(c *fiber.Ctx) error {
	records, err := h.inspections.ListInspections(c.UserContext(), c.Params("ticket_number"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.InspectionsFromDomain(records)})
}
