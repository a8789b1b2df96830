package service

import (
	"context"

	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/repository"
	"github.com/spec-kit/garage-service/pkg/util"
)

// InspectionService records inspections. A ticket can accumulate several
// records: a failed inspection is followed by a re-inspection.
type InspectionService struct {
	inspections repository.InspectionRepository
	tickets     repository.TicketRepository
}

// NewInspectionService constructs the service.
func NewInspectionService(inspections repository.InspectionRepository, tickets repository.TicketRepository) *InspectionService {
	return &InspectionService{inspections: inspections, tickets: tickets}
}

// InspectionInput describes one inspection pass.
type InspectionInput struct {
	TicketNumber       string
	MainIssueResolved  bool
	ReassemblyVerified bool
	GeneralCondition   string
	Notes              *string
	Status             string
}

// RecordInspection stores an inspection outcome against a ticket.
func (s *InspectionService) RecordInspection(ctx context.Context, input InspectionInput) (*domain.InspectionRecord, error) {
	if input.TicketNumber == "" {
		return nil, util.NewValidationError("ticket_number is required", nil)
	}
	status := domain.InspectionStatus(domain.CanonicalStatus(input.Status))
	switch status {
	case domain.InspectionSuccessful, domain.InspectionFailed, domain.InspectionPending:
	default:
		return nil, util.NewInvalidStatus(input.Status)
	}
	if _, err := s.tickets.GetByNumber(ctx, input.TicketNumber); err != nil {
		return nil, mapTicketError(err, input.TicketNumber)
	}

	record := &domain.InspectionRecord{
		TicketNumber:       input.TicketNumber,
		MainIssueResolved:  input.MainIssueResolved,
		ReassemblyVerified: input.ReassemblyVerified,
		GeneralCondition:   input.GeneralCondition,
		Notes:              input.Notes,
		Status:             status,
	}
	if err := s.inspections.Create(ctx, record); err != nil {
		return nil, util.NewStorageError(err)
	}
	return record, nil
}

// ListInspections returns a ticket's inspections in chronological order.
func (s *InspectionService) ListInspections(ctx context.Context, ticketNumber string) ([]domain.InspectionRecord, error) {
	records, err := s.inspections.ListByTicket(ctx, ticketNumber)
	if err != nil {
		return nil, util.NewStorageError(err)
	}
	return records, nil
}
