package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/repository"
	"github.com/spec-kit/garage-service/pkg/util"
)

// InventoryService covers the ticket-scoped inventory collaborations: tool
// checkouts and parts ordered from the shop's own stock.
type InventoryService struct {
	tools   repository.ToolAssignmentRepository
	ordered repository.OrderedPartRepository
	tickets repository.TicketRepository
}

// NewInventoryService constructs the service.
func NewInventoryService(
	tools repository.ToolAssignmentRepository,
	ordered repository.OrderedPartRepository,
	tickets repository.TicketRepository,
) *InventoryService {
	return &InventoryService{tools: tools, ordered: ordered, tickets: tickets}
}

// ToolCheckoutInput describes a tool checkout.
type ToolCheckoutInput struct {
	TicketNumber string
	ToolID       string
	ToolName     string
	Quantity     int
	AssignedBy   string
}

// CheckoutTool assigns a tool to a ticket.
func (s *InventoryService) CheckoutTool(ctx context.Context, input ToolCheckoutInput) (*domain.ToolAssignment, error) {
	if input.TicketNumber == "" || input.ToolID == "" {
		return nil, util.NewValidationError("ticket_number and tool_id are required", nil)
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}
	if _, err := s.tickets.GetByNumber(ctx, input.TicketNumber); err != nil {
		return nil, mapTicketError(err, input.TicketNumber)
	}

	assignment := &domain.ToolAssignment{
		TicketNumber: input.TicketNumber,
		ToolID:       input.ToolID,
		ToolName:     strings.TrimSpace(input.ToolName),
		Quantity:     input.Quantity,
		AssignedBy:   input.AssignedBy,
		Status:       domain.ToolStatusAssigned,
	}
	if err := s.tools.Create(ctx, assignment); err != nil {
		return nil, util.NewStorageError(err)
	}
	return assignment, nil
}

// ReturnTool marks an assignment returned. The row stays for the audit trail.
func (s *InventoryService) ReturnTool(ctx context.Context, id int64) error {
	if err := s.tools.MarkReturned(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("tool assignment", map[string]any{"id": id})
		}
		return util.NewStorageError(err)
	}
	return nil
}

// OrderedPartInput describes an inventory part order.
type OrderedPartInput struct {
	TicketNumber string
	Name         string
	SKU          string
	Price        domain.Money
	Quantity     int
}

// OrderPart records a part ordered from inventory for a ticket.
func (s *InventoryService) OrderPart(ctx context.Context, input OrderedPartInput) (*domain.OrderedPart, error) {
	if input.TicketNumber == "" || strings.TrimSpace(input.Name) == "" {
		return nil, util.NewValidationError("ticket_number and name are required", nil)
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}
	if _, err := s.tickets.GetByNumber(ctx, input.TicketNumber); err != nil {
		return nil, mapTicketError(err, input.TicketNumber)
	}

	part := &domain.OrderedPart{
		TicketNumber: input.TicketNumber,
		Name:         strings.TrimSpace(input.Name),
		SKU:          input.SKU,
		Price:        input.Price,
		Quantity:     input.Quantity,
		Status:       domain.OrderedPartStatusOrdered,
	}
	if err := s.ordered.Create(ctx, part); err != nil {
		return nil, util.NewStorageError(err)
	}
	return part, nil
}

// MarkPartArrived flips an ordered part to arrived.
func (s *InventoryService) MarkPartArrived(ctx context.Context, id int64) error {
	if err := s.ordered.UpdateStatus(ctx, id, domain.OrderedPartStatusArrived); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("ordered part", map[string]any{"id": id})
		}
		return util.NewStorageError(err)
	}
	return nil
}
