package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/garage-service/internal/domain"
)

// CheckoutToolRequest payload.
type CheckoutToolRequest struct {
	TicketNumber string `json:"ticket_number" validate:"required"`
	ToolID       string `json:"tool_id" validate:"required"`
	ToolName     string `json:"tool_name"`
	Quantity     int    `json:"quantity" validate:"omitempty,min=1"`
	AssignedBy   string `json:"assigned_by"`
}

// ToolAssignmentResponse represents one checkout row.
type ToolAssignmentResponse struct {
	ID           int64      `json:"id"`
	TicketNumber string     `json:"ticket_number"`
	ToolID       string     `json:"tool_id"`
	ToolName     string     `json:"tool_name,omitempty"`
	Quantity     int        `json:"quantity"`
	AssignedBy   string     `json:"assigned_by,omitempty"`
	Status       string     `json:"status"`
	AssignedAt   time.Time  `json:"assigned_at"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty"`
}

// CreateOrderedPartRequest payload.
type CreateOrderedPartRequest struct {
	TicketNumber string          `json:"ticket_number" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity" validate:"omitempty,min=1"`
}

// OrderedPartResponse represents one inventory order row.
type OrderedPartResponse struct {
	ID           int64           `json:"id"`
	TicketNumber string          `json:"ticket_number"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Status       string          `json:"status"`
	OrderedAt    time.Time       `json:"ordered_at"`
	ArrivedAt    *time.Time      `json:"arrived_at,omitempty"`
}

// ToolAssignmentFromDomain maps one checkout row.
func ToolAssignmentFromDomain(a *domain.ToolAssignment) ToolAssignmentResponse {
	return ToolAssignmentResponse{
		ID:           a.ID,
		TicketNumber: a.TicketNumber,
		ToolID:       a.ToolID,
		ToolName:     a.ToolName,
		Quantity:     a.Quantity,
		AssignedBy:   a.AssignedBy,
		Status:       string(a.Status),
		AssignedAt:   a.AssignedAt,
		ReturnedAt:   a.ReturnedAt,
	}
}

// ToolAssignmentsFromDomain maps a slice, never returning nil.
func ToolAssignmentsFromDomain(assignments []domain.ToolAssignment) []ToolAssignmentResponse {
	result := make([]ToolAssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, ToolAssignmentFromDomain(&assignments[i]))
	}
	return result
}

// OrderedPartFromDomain maps one order row.
func OrderedPartFromDomain(p *domain.OrderedPart) OrderedPartResponse {
	return OrderedPartResponse{
		ID:           p.ID,
		TicketNumber: p.TicketNumber,
		Name:         p.Name,
		SKU:          p.SKU,
		Price:        p.Price,
		Quantity:     p.Quantity,
		Status:       string(p.Status),
		OrderedAt:    p.OrderedAt,
		ArrivedAt:    p.ArrivedAt,
	}
}

// OrderedPartsFromDomain maps a slice, never returning nil.
func OrderedPartsFromDomain(parts []domain.OrderedPart) []OrderedPartResponse {
	result := make([]OrderedPartResponse, 0, len(parts))
	for i := range parts {
		result = append(result, OrderedPartFromDomain(&parts[i]))
	}
	return result
}
