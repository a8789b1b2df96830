package domain

import "time"

// ProgressLogEntry is an append-only narrative entry on a ticket. Entries are
// never mutated or deleted.
type ProgressLogEntry struct {
	ID           int64
	TicketNumber string
	Date         string
	Time         string
	StatusLabel  string
	Description  string
	CreatedAt    time.Time
}
