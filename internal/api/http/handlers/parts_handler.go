package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/garage-service/internal/api/dto"
	"github.com/spec-kit/garage-service/internal/service"
	apperrors "github.com/spec-kit/garage-service/pkg/util"
)

// PartsHandler manages disassembled-part endpoints.
type PartsHandler struct {
	parts *service.PartsService
}

// NewPartsHandler constructs handler.
func NewPartsHandler(parts *service.PartsService) *PartsHandler {
	return &PartsHandler{parts: parts}
}

// CreatePart POST /disassembled-parts.
func (h *PartsHandler) CreatePart(c *fiber.Ctx) error {
	var req dto.CreatePartRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("ticket_number, part_name, condition and status are required", details)
	}

	part, err := h.parts.CreatePart(c.UserContext(), service.PartCreateInput{
		TicketNumber: req.TicketNumber,
		PartName:     req.PartName,
		Condition:    req.Condition,
		Status:       req.Status,
		Notes:        req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.PartFromDomain(part)})
}

// ListParts GET /disassembled-parts/:ticket_number.
func (h *PartsHandler) ListParts(c *fiber.Ctx) error {
	parts, err := h.parts.ListParts(c.UserContext(), c.Params("ticket_number"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.PartsFromDomain(parts)})
}

// UpdatePartStatus PUT /disassembled-parts/:id.
func (h *PartsHandler) UpdatePartStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid part id", nil)
	}
	var req dto.UpdatePartStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("status is required", details)
	}

	part, err := h.parts.UpdatePartStatus(c.UserContext(), id, req.Status, req.ActorName)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.PartFromDomain(part)})
}

// TodayParts GET /today-parts.
func (h *PartsHandler) TodayParts(c *fiber.Ctx) error {
	groups, err := h.parts.TodayParts(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.TodayPartsGroup, 0, len(groups))
	for _, group := range groups {
		items = append(items, dto.TodayPartsGroup{
			TicketNumber:  group.TicketNumber,
			ReplacedParts: dto.PartsFromDomain(group.ReplacedParts),
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
