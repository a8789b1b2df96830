package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/garage-service/internal/config"
	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/repository"
	"github.com/spec-kit/garage-service/pkg/util"
)

// TicketService owns the ticket state machine. All status mutations go
// through Transition; nothing else writes ticket status.
type TicketService struct {
	tickets repository.TicketRepository
	cfg     config.WorkflowConfig
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, cfg config.WorkflowConfig) *TicketService {
	return &TicketService{tickets: tickets, cfg: cfg}
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	CustomerType domain.CustomerType
	CustomerID   string
	VehicleID    string
	Title        string
	Description  string
	Priority     domain.TicketPriority
	Type         domain.TicketType
	UrgencyLevel string
	MechanicID   *string
	InspectorID  *string
}

// CreateTicket registers a new service job in status pending.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.ServiceTicket, error) {
	if input.CustomerID == "" || input.VehicleID == "" || strings.TrimSpace(input.Title) == "" {
		return nil, util.NewValidationError("customer_id, vehicle_id and title are required", nil)
	}
	if input.CustomerType == "" {
		input.CustomerType = domain.CustomerTypeIndividual
	}
	if input.Priority == "" {
		input.Priority = domain.TicketPriorityMedium
	}
	if input.Type == "" {
		input.Type = domain.TicketTypeRegular
	}

	ticket := &domain.ServiceTicket{
		TicketNumber: generateTicketNumber(),
		CustomerType: input.CustomerType,
		CustomerID:   input.CustomerID,
		VehicleID:    input.VehicleID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Priority:     input.Priority,
		Type:         input.Type,
		UrgencyLevel: input.UrgencyLevel,
		Status:       domain.StatusPending,
		MechanicID:   input.MechanicID,
		InspectorID:  input.InspectorID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, util.NewStorageError(err)
	}
	return ticket, nil
}

// GetTicket fetches a ticket by its number.
func (s *TicketService) GetTicket(ctx context.Context, ticketNumber string) (*domain.ServiceTicket, error) {
	ticket, err := s.tickets.GetByNumber(ctx, ticketNumber)
	if err != nil {
		return nil, mapTicketError(err, ticketNumber)
	}
	return ticket, nil
}

// Transition validates rawStatus against the update allow-list and persists
// it. The workflow performs no reachability check by default: any allow-listed
// status may follow any other (manual override support). Strict adjacency
// validation is opt-in via config.
//
// No event fires on a ticket status change; only part returns notify.
func (s *TicketService) Transition(ctx context.Context, ticketNumber, rawStatus string) (*domain.ServiceTicket, error) {
	status, known := domain.ParseTicketStatus(rawStatus)
	if !known || !domain.IsUpdatable(status) {
		return nil, util.NewInvalidStatus(rawStatus)
	}

	if s.cfg.StrictTransitions {
		current, err := s.tickets.GetByNumber(ctx, ticketNumber)
		if err != nil {
			return nil, mapTicketError(err, ticketNumber)
		}
		if !domain.CanTransition(current.Status, status) {
			return nil, util.NewConflict("status not reachable from current state", map[string]any{
				"current": current.Status,
				"next":    status,
			})
		}
	}

	ticket, err := s.tickets.UpdateStatus(ctx, ticketNumber, status)
	if err != nil {
		return nil, mapTicketError(err, ticketNumber)
	}
	return ticket, nil
}

// SetCompletionEstimate records the estimated completion timestamp.
func (s *TicketService) SetCompletionEstimate(ctx context.Context, ticketNumber string, estimate time.Time) error {
	if err := s.tickets.SetEstimatedCompletion(ctx, ticketNumber, estimate); err != nil {
		return mapTicketError(err, ticketNumber)
	}
	return nil
}

func generateTicketNumber() string {
	return "SVT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func mapTicketError(err error, ticketNumber string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return util.NewNotFound("ticket", map[string]any{"ticket_number": ticketNumber})
	}
	return util.NewStorageError(err)
}
