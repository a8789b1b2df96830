package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/garage-service/internal/api/dto"
	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/service"
	apperrors "github.com/spec-kit/garage-service/pkg/util"
)

// TicketsHandler manages the ticket workflow endpoints.
type TicketsHandler struct {
	tickets    *service.TicketService
	aggregator *service.AggregatorService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService, aggregator *service.AggregatorService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets, aggregator: aggregator}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("invalid ticket payload", details)
	}

	ticket, err := h.tickets.CreateTicket(c.UserContext(), service.TicketCreateInput{
		CustomerType: domain.CustomerType(req.CustomerType),
		CustomerID:   req.CustomerID,
		VehicleID:    req.VehicleID,
		Title:        req.Title,
		Description:  req.Description,
		Priority:     domain.TicketPriority(req.Priority),
		Type:         domain.TicketType(req.Type),
		UrgencyLevel: req.UrgencyLevel,
		MechanicID:   req.MechanicID,
		InspectorID:  req.InspectorID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.TicketFromDomain(ticket)})
}

// GetTicket GET /tickets/:ticket_number.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	composite, err := h.aggregator.AggregateOne(c.UserContext(), c.Params("ticket_number"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CompositeFromService(composite)})
}

// UpdateStatus PUT /update-status/:ticket_number.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("status is required", details)
	}

	ticket, err := h.tickets.Transition(c.UserContext(), c.Params("ticket_number"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketFromDomain(ticket)})
}

// ActiveTickets GET /active-tickets.
func (h *TicketsHandler) ActiveTickets(c *fiber.Ctx) error {
	composites, err := h.aggregator.AggregateActive(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.ActiveTicketResponse, 0, len(composites))
	for i := range composites {
		items = append(items, dto.ActiveTicketFromService(&composites[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CompletedCars GET /completed-cars.
func (h *TicketsHandler) CompletedCars(c *fiber.Ctx) error {
	composites, err := h.aggregator.AggregateCompleted(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.TicketCompositeResponse, 0, len(composites))
	for i := range composites {
		items = append(items, dto.CompositeFromService(&composites[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CompletedCar GET /completed-cars/:ticketNumber.
func (h *TicketsHandler) CompletedCar(c *fiber.Ctx) error {
	composite, err := h.aggregator.AggregateCompletedOne(c.UserContext(), c.Params("ticketNumber"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CompositeFromService(composite)})
}
