package dto

import (
	"time"

	"github.com/spec-kit/garage-service/internal/domain"
)

// CreateProgressRequest payload. All fields required.
type CreateProgressRequest struct {
	TicketNumber string `json:"ticket_number" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
	Status       string `json:"status" validate:"required"`
	Description  string `json:"description" validate:"required"`
}

// ProgressLogResponse represents one narrative entry.
type ProgressLogResponse struct {
	ID           int64     `json:"id"`
	TicketNumber string    `json:"ticket_number"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProgressLogFromDomain maps one entry.
func ProgressLogFromDomain(entry *domain.ProgressLogEntry) ProgressLogResponse {
	return ProgressLogResponse{
		ID:           entry.ID,
		TicketNumber: entry.TicketNumber,
		Date:         entry.Date,
		Time:         entry.Time,
		Status:       entry.StatusLabel,
		Description:  entry.Description,
		CreatedAt:    entry.CreatedAt,
	}
}

// ProgressLogsFromDomain maps a slice, never returning nil.
func ProgressLogsFromDomain(entries []domain.ProgressLogEntry) []ProgressLogResponse {
	result := make([]ProgressLogResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, ProgressLogResponse{
			ID:           entry.ID,
			TicketNumber: entry.TicketNumber,
			Date:         entry.Date,
			Time:         entry.Time,
			Status:       entry.StatusLabel,
			Description:  entry.Description,
			CreatedAt:    entry.CreatedAt,
		})
	}
	return result
}
