package service

import (
	"context"
	"strings"

	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/repository"
	"github.com/spec-kit/garage-service/pkg/util"
)

// ProgressService manages the append-only narrative log.
type ProgressService struct {
	logs    repository.ProgressLogRepository
	tickets repository.TicketRepository
}

// NewProgressService constructs the service.
func NewProgressService(logs repository.ProgressLogRepository, tickets repository.TicketRepository) *ProgressService {
	return &ProgressService{logs: logs, tickets: tickets}
}

// ProgressInput describes one log entry. Every field is required.
type ProgressInput struct {
	TicketNumber string
	Date         string
	Time         string
	Status       string
	Description  string
}

// AddEntry appends a progress entry. Entries are never mutated or deleted.
func (s *ProgressService) AddEntry(ctx context.Context, input ProgressInput) (*domain.ProgressLogEntry, error) {
	if input.TicketNumber == "" || input.Date == "" || input.Time == "" ||
		strings.TrimSpace(input.Status) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, util.NewValidationError("ticket_number, date, time, status and description are required", nil)
	}
	if _, err := s.tickets.GetByNumber(ctx, input.TicketNumber); err != nil {
		return nil, mapTicketError(err, input.TicketNumber)
	}

	entry := &domain.ProgressLogEntry{
		TicketNumber: input.TicketNumber,
		Date:         input.Date,
		Time:         input.Time,
		StatusLabel:  domain.CanonicalStatus(input.Status),
		Description:  strings.TrimSpace(input.Description),
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, util.NewStorageError(err)
	}
	return entry, nil
}

// ListEntries returns a ticket's entries, newest first.
func (s *ProgressService) ListEntries(ctx context.Context, ticketNumber string) ([]domain.ProgressLogEntry, error) {
	entries, err := s.logs.ListByTicket(ctx, ticketNumber)
	if err != nil {
		return nil, util.NewStorageError(err)
	}
	return entries, nil
}
