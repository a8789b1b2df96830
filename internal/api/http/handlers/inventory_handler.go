package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/garage-service/internal/api/dto"
	"github.com/spec-kit/garage-service/internal/service"
	apperrors "github.com/spec-kit/garage-service/pkg/util"
)

// InventoryHandler manages tool assignments and inventory part orders.
type InventoryHandler struct {
	inventory *service.InventoryService
}

// NewInventoryHandler constructs handler.
func NewInventoryHandler(inventory *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// CheckoutTool POST /tool-assignments.
func (h *InventoryHandler) CheckoutTool(c *fiber.Ctx) error {
	var req dto.CheckoutToolRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("ticket_number and tool_id are required", details)
	}

	assignment, err := h.inventory.CheckoutTool(c.UserContext(), service.ToolCheckoutInput{
		TicketNumber: req.TicketNumber,
		ToolID:       req.ToolID,
		ToolName:     req.ToolName,
		Quantity:     req.Quantity,
		AssignedBy:   req.AssignedBy,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.ToolAssignmentFromDomain(assignment)})
}

// ReturnTool PUT /tool-assignments/:id/return.
func (h *InventoryHandler) ReturnTool(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid assignment id", nil)
	}
	if err := h.inventory.ReturnTool(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "status": "returned"}})
}

// OrderPart POST /ordered-parts.
func (h *InventoryHandler) OrderPart(c *fiber.Ctx) error {
	var req dto.CreateOrderedPartRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("ticket_number and name are required", details)
	}

	part, err := h.inventory.OrderPart(c.UserContext(), service.OrderedPartInput{
		TicketNumber: req.TicketNumber,
		Name:         req.Name,
		SKU:          req.SKU,
		Price:        req.Price,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.OrderedPartFromDomain(part)})
}

// MarkPartArrived PUT /ordered-parts/:id/arrived.
func (h *InventoryHandler) MarkPartArrived(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid ordered part id", nil)
	}
	if err := h.inventory.MarkPartArrived(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "status": "arrived"}})
}
