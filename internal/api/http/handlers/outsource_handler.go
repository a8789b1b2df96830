package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/garage-service/internal/api/dto"
	"github.com/spec-kit/garage-service/internal/service"
	apperrors "github.com/spec-kit/garage-service/pkg/util"
)

// OutsourceHandler manages outsourced stock and mechanic endpoints.
type OutsourceHandler struct {
	outsource *service.OutsourceService
}

// NewOutsourceHandler constructs handler.
func NewOutsourceHandler(outsource *service.OutsourceService) *OutsourceHandler {
	return &OutsourceHandler{outsource: outsource}
}

// CreateStockItem POST /outsource-stock.
func (h *OutsourceHandler) CreateStockItem(c *fiber.Ctx) error {
	var req dto.CreateStockItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("ticket_number and name are required", details)
	}

	item, err := h.outsource.CreateStockItem(c.UserContext(), service.StockItemInput{
		TicketNumber: req.TicketNumber,
		Name:         req.Name,
		Category:     req.Category,
		SKU:          req.SKU,
		Price:        req.Price,
		Quantity:     req.Quantity,
		SourceShop:   req.SourceShop,
		Status:       req.Status,
		Notes:        req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.StockItemFromDomain(item)})
}

// UpdateStockStatus PUT /outsource-stock/:id.
func (h *OutsourceHandler) UpdateStockStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid stock item id", nil)
	}
	var req dto.UpdateStockStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("status is required", details)
	}

	if err := h.outsource.UpdateStockStatus(c.UserContext(), id, req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "status": req.Status}})
}

// CreateMechanic POST /outsource-mechanics.
func (h *OutsourceHandler) CreateMechanic(c *fiber.Ctx) error {
	var req dto.CreateMechanicRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("ticket_number and mechanic_name are required", details)
	}

	record, err := h.outsource.CreateMechanic(c.UserContext(), service.MechanicInput{
		TicketNumber:  req.TicketNumber,
		MechanicName:  req.MechanicName,
		Phone:         req.Phone,
		AgreedPayment: req.AgreedPayment,
		PaymentMethod: req.PaymentMethod,
		WorkDone:      req.WorkDone,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.MechanicFromDomain(record)})
}

// ListMechanics GET /outsource-mechanics/:ticket_number.
func (h *OutsourceHandler) ListMechanics(c *fiber.Ctx) error {
	records, err := h.outsource.ListMechanics(c.UserContext(), c.Params("ticket_number"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.MechanicsFromDomain(records)})
}

// AddPayment POST /outsource-mechanics/:id/payments.
func (h *OutsourceHandler) AddPayment(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid mechanic id", nil)
	}
	var req dto.AddPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("amount is required", details)
	}

	record, err := h.outsource.AddPayment(c.UserContext(), id, service.PaymentInput{
		Amount: req.Amount,
		Method: req.Method,
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.MechanicFromDomain(record)})
}
