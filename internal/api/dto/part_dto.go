package dto

import (
	"time"

	"github.com/spec-kit/garage-service/internal/domain"
)

// CreatePartRequest payload.
type CreatePartRequest struct {
	TicketNumber string  `json:"ticket_number" validate:"required"`
	PartName     string  `json:"part_name" validate:"required"`
	Condition    string  `json:"condition" validate:"required"`
	Status       string  `json:"status" validate:"required"`
	Notes        *string `json:"notes"`
}

// UpdatePartStatusRequest payload.
type UpdatePartStatusRequest struct {
	Status    string `json:"status" validate:"required"`
	ActorName string `json:"actor_name"`
}

// PartResponse represents one disassembled part.
type PartResponse struct {
	ID           int64     `json:"id"`
	TicketNumber string    `json:"ticket_number"`
	PartName     string    `json:"part_name"`
	Condition    string    `json:"condition"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes,omitempty"`
	LoggedAt     time.Time `json:"logged_at"`
}

// TodayPartsGroup nests a day's parts under their ticket.
type TodayPartsGroup struct {
	TicketNumber  string         `json:"ticket_number"`
	ReplacedParts []PartResponse `json:"replacedParts"`
}

// PartFromDomain maps a domain part.
func PartFromDomain(part *domain.DisassembledPart) PartResponse {
	return PartResponse{
		ID:           part.ID,
		TicketNumber: part.TicketNumber,
		PartName:     part.PartName,
		Condition:    part.Condition,
		Status:       string(part.Status),
		Notes:        part.Notes,
		LoggedAt:     part.LoggedAt,
	}
}

// PartsFromDomain maps a slice, preserving order and never returning nil.
func PartsFromDomain(parts []domain.DisassembledPart) []PartResponse {
	result := make([]PartResponse, 0, len(parts))
	for i := range parts {
		result = append(result, PartFromDomain(&parts[i]))
	}
	return result
}
