package domain

import "time"

// ToolAssignment tracks a tool checked out against a ticket. Rows are never
// deleted; returns flip the status and stamp ReturnedAt (audit trail).
type ToolAssignment struct {
	ID           int64
	TicketNumber string
	ToolID       string
	ToolName     string
	Quantity     int
	AssignedBy   string
	Status       ToolStatus
	AssignedAt   time.Time
	ReturnedAt   *time.Time
}
