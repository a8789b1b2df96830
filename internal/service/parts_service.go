package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/events"
	"github.com/spec-kit/garage-service/internal/repository"
	"github.com/spec-kit/garage-service/pkg/util"
)

// PartsService manages the disassembled-part lifecycle.
type PartsService struct {
	parts      repository.PartRepository
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// NewPartsService constructs the service.
func NewPartsService(parts repository.PartRepository, tickets repository.TicketRepository, dispatcher events.Dispatcher) *PartsService {
	return &PartsService{parts: parts, tickets: tickets, dispatcher: dispatcher}
}

// PartCreateInput describes a part removal log.
type PartCreateInput struct {
	TicketNumber string
	PartName     string
	Condition    string
	Status       string
	Notes        *string
}

// CreatePart logs a removed part against an existing ticket.
func (s *PartsService) CreatePart(ctx context.Context, input PartCreateInput) (*domain.DisassembledPart, error) {
	if input.TicketNumber == "" || strings.TrimSpace(input.PartName) == "" || strings.TrimSpace(input.Condition) == "" {
		return nil, util.NewValidationError("ticket_number, part_name and condition are required", nil)
	}
	status, ok := domain.ParsePartStatus(input.Status)
	if !ok {
		return nil, util.NewInvalidStatus(input.Status)
	}

	if _, err := s.tickets.GetByNumber(ctx, input.TicketNumber); err != nil {
		return nil, mapTicketError(err, input.TicketNumber)
	}

	part := &domain.DisassembledPart{
		TicketNumber: input.TicketNumber,
		PartName:     strings.TrimSpace(input.PartName),
		Condition:    strings.TrimSpace(input.Condition),
		Status:       status,
		Notes:        input.Notes,
	}
	if err := s.parts.Create(ctx, part); err != nil {
		return nil, util.NewStorageError(err)
	}
	return part, nil
}

// ListParts returns a ticket's parts, newest first.
func (s *PartsService) ListParts(ctx context.Context, ticketNumber string) ([]domain.DisassembledPart, error) {
	parts, err := s.parts.ListByTicket(ctx, ticketNumber)
	if err != nil {
		return nil, util.NewStorageError(err)
	}
	return parts, nil
}

// UpdatePartStatus moves a part between received and returned. The returned
// state is terminal: returned -> received is rejected. Marking a part returned
// publishes exactly one parts_returned event, after the write commits.
func (s *PartsService) UpdatePartStatus(ctx context.Context, id int64, rawStatus, actorName string) (*domain.DisassembledPart, error) {
	status, ok := domain.ParsePartStatus(rawStatus)
	if !ok {
		return nil, util.NewInvalidStatus(rawStatus)
	}

	part, err := s.parts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("part", map[string]any{"id": id})
		}
		return nil, util.NewStorageError(err)
	}
	if part.Status == domain.PartStatusReturned && status == domain.PartStatusReceived {
		return nil, util.NewConflict("a returned part cannot revert to received", nil)
	}

	if err := s.parts.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("part", map[string]any{"id": id})
		}
		return nil, util.NewStorageError(err)
	}

	wasReturned := part.Status == domain.PartStatusReturned
	part.Status = status
	if status == domain.PartStatusReturned && !wasReturned {
		s.publishPartsReturned(ctx, part, actorName)
	}
	return part, nil
}

// TicketParts groups a day's logged parts under their ticket.
type TicketParts struct {
	TicketNumber  string
	ReplacedParts []domain.DisassembledPart
}

// TodayParts returns parts logged today, grouped by ticket. Group order
// follows first appearance in the store's ordering.
func (s *PartsService) TodayParts(ctx context.Context) ([]TicketParts, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	parts, err := s.parts.ListLoggedSince(ctx, midnight)
	if err != nil {
		return nil, util.NewStorageError(err)
	}

	groups := []TicketParts{}
	index := map[string]int{}
	for _, part := range parts {
		i, seen := index[part.TicketNumber]
		if !seen {
			i = len(groups)
			index[part.TicketNumber] = i
			groups = append(groups, TicketParts{TicketNumber: part.TicketNumber, ReplacedParts: []domain.DisassembledPart{}})
		}
		groups[i].ReplacedParts = append(groups[i].ReplacedParts, part)
	}
	return groups, nil
}

func (s *PartsService) publishPartsReturned(ctx context.Context, part *domain.DisassembledPart, actorName string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:           uuid.NewString(),
		Type:         events.EventPartsReturned,
		TicketNumber: part.TicketNumber,
		Timestamp:    time.Now(),
		Payload: events.PartsReturnedPayload{
			PartRecordID: part.ID,
			TicketNumber: part.TicketNumber,
			ActorName:    actorName,
		},
	})
}
