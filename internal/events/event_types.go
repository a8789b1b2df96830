package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	// EventPartsReturned fires when a disassembled part is marked returned.
	// This is the only workflow side effect that notifies other participants;
	// ticket status changes deliberately emit nothing.
	EventPartsReturned EventType = "parts_returned"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID           string      `json:"id"`
	Type         EventType   `json:"type"`
	TicketNumber string      `json:"ticket_number"`
	Timestamp    time.Time   `json:"timestamp"`
	Payload      interface{} `json:"payload"`
}

// PartsReturnedPayload payload.
type PartsReturnedPayload struct {
	PartRecordID int64  `json:"part_record_id"`
	TicketNumber string `json:"ticket_number"`
	ActorName    string `json:"actor_name"`
}
