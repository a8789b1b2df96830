package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/garage-service/internal/api/dto"
	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/service"
	apperrors "github.com/spec-kit/garage-service/pkg/util"
)

// BillingHandler manages bill endpoints.
type BillingHandler struct {
	billing *service.BillingService
}

// NewBillingHandler constructs handler.
func NewBillingHandler(billing *service.BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

// SaveBill POST /bills.
func (h *BillingHandler) SaveBill(c *fiber.Ctx) error {
	var req dto.SaveBillRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("ticket_number is required", details)
	}

	bill, err := h.billing.SaveBill(c.UserContext(), service.BillInput{
		TicketNumber:        req.TicketNumber,
		LaborCost:           req.LaborCost,
		PartsCost:           req.PartsCost,
		OutsourcedPartsCost: req.OutsourcedPartsCost,
		OutsourcedLaborCost: req.OutsourcedLaborCost,
		Subtotal:            req.Subtotal,
		TaxRate:             req.TaxRate,
		TaxAmount:           req.TaxAmount,
		Discount:            req.Discount,
		FinalTotal:          req.FinalTotal,
		Status:              domain.BillStatus(req.Status),
		LineItems:           dto.LineItemsToDomain(req.LineItems),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.BillFromDomain(bill)})
}

// GetBill GET /bills/:ticket_number.
func (h *BillingHandler) GetBill(c *fiber.Ctx) error {
	projection, err := h.billing.Project(c.UserContext(), c.Params("ticket_number"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.BillProjectionFromService(projection)})
}
