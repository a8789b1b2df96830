package dto

import (
	"time"

	"github.com/spec-kit/garage-service/internal/domain"
)

// CreateInspectionRequest payload.
type CreateInspectionRequest struct {
	TicketNumber       string  `json:"ticket_number" validate:"required"`
	MainIssueResolved  bool    `json:"main_issue_resolved"`
	ReassemblyVerified bool    `json:"reassembly_verified"`
	GeneralCondition   string  `json:"general_condition"`
	Notes              *string `json:"notes"`
	Status             string  `json:"status" validate:"required"`
}

// InspectionResponse represents one inspection pass.
type InspectionResponse struct {
	ID                 int64     `json:"id"`
	TicketNumber       string    `json:"ticket_number"`
	MainIssueResolved  bool      `json:"main_issue_resolved"`
	ReassemblyVerified bool      `json:"reassembly_verified"`
	GeneralCondition   string    `json:"general_condition,omitempty"`
	Notes              *string   `json:"notes,omitempty"`
	Status             string    `json:"status"`
	InspectedAt        time.Time `json:"inspected_at"`
}

// InspectionFromDomain maps one record.
func InspectionFromDomain(r *domain.InspectionRecord) InspectionResponse {
	return InspectionResponse{
		ID:                 r.ID,
		TicketNumber:       r.TicketNumber,
		MainIssueResolved:  r.MainIssueResolved,
		ReassemblyVerified: r.ReassemblyVerified,
		GeneralCondition:   r.GeneralCondition,
		Notes:              r.Notes,
		Status:             string(r.Status),
		InspectedAt:        r.InspectedAt,
	}
}

// InspectionsFromDomain maps a slice, never returning nil.
func InspectionsFromDomain(records []domain.InspectionRecord) []InspectionResponse {
	result := make([]InspectionResponse, 0, len(records))
	for _, r := range records {
		result = append(result, InspectionResponse{
			ID:                 r.ID,
			TicketNumber:       r.TicketNumber,
			MainIssueResolved:  r.MainIssueResolved,
			ReassemblyVerified: r.ReassemblyVerified,
			GeneralCondition:   r.GeneralCondition,
			Notes:              r.Notes,
			Status:             string(r.Status),
			InspectedAt:        r.InspectedAt,
		})
	}
	return result
}
