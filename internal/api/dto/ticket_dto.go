package dto

import (
	"time"

	"github.com/spec-kit/garage-service/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	CustomerType string  `json:"customer_type" validate:"omitempty,oneof=individual company"`
	CustomerID   string  `json:"customer_id" validate:"required"`
	VehicleID    string  `json:"vehicle_id" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Priority     string  `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Type         string  `json:"type" validate:"omitempty,oneof=regular insurance sos"`
	UrgencyLevel string  `json:"urgency_level"`
	MechanicID   *string `json:"mechanic_id"`
	InspectorID  *string `json:"inspector_id"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// TicketResponse is the flat ticket view.
type TicketResponse struct {
	ID                  string     `json:"id"`
	TicketNumber        string     `json:"ticket_number"`
	CustomerType        string     `json:"customer_type"`
	CustomerID          string     `json:"customer_id"`
	VehicleID           string     `json:"vehicle_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Priority            string     `json:"priority"`
	Type                string     `json:"type"`
	UrgencyLevel        string     `json:"urgency_level,omitempty"`
	Status              string     `json:"status"`
	MechanicID          *string    `json:"mechanic_id,omitempty"`
	InspectorID         *string    `json:"inspector_id,omitempty"`
	EstimatedCompletion *time.Time `json:"estimated_completion,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// ActiveTicketResponse is the workshop view: the ticket plus the four
// collections the floor needs. Collections are always present, never null.
type ActiveTicketResponse struct {
	TicketResponse
	ToolAssignments    []ToolAssignmentResponse    `json:"tool_assignments"`
	OutsourceStock     []OutsourceStockResponse    `json:"outsource_stock"`
	OrderedParts       []OrderedPartResponse       `json:"ordered_parts"`
	OutsourceMechanics []OutsourceMechanicResponse `json:"outsource_mechanics"`
}

// TicketCompositeResponse is the full aggregated read model for one ticket.
// Every collection is always present, never null.
type TicketCompositeResponse struct {
	ActiveTicketResponse
	DisassembledParts []PartResponse          `json:"disassembled_parts"`
	ProgressLogs      []ProgressLogResponse   `json:"progress_logs"`
	Inspections       []InspectionResponse    `json:"inspections"`
	Billing           *BillProjectionResponse `json:"billing"`
}

// TicketFromDomain maps a domain ticket.
func TicketFromDomain(ticket *domain.ServiceTicket) TicketResponse {
	return TicketResponse{
		ID:                  ticket.ID,
		TicketNumber:        ticket.TicketNumber,
		CustomerType:        string(ticket.CustomerType),
		CustomerID:          ticket.CustomerID,
		VehicleID:           ticket.VehicleID,
		Title:               ticket.Title,
		Description:         ticket.Description,
		Priority:            string(ticket.Priority),
		Type:                string(ticket.Type),
		UrgencyLevel:        ticket.UrgencyLevel,
		Status:              string(ticket.Status),
		MechanicID:          ticket.MechanicID,
		InspectorID:         ticket.InspectorID,
		EstimatedCompletion: ticket.EstimatedCompletion,
		CompletedAt:         ticket.CompletedAt,
		CreatedAt:           ticket.CreatedAt,
		UpdatedAt:           ticket.UpdatedAt,
	}
}
