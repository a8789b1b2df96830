package domain

import "time"

// DisassembledPart records a part a mechanic removed from the vehicle.
// Immutable once created except for Status, which only moves
// received -> returned.
type DisassembledPart struct {
	ID           int64
	TicketNumber string
	PartName     string
	Condition    string
	Status       PartStatus
	Notes        *string
	LoggedAt     time.Time
}

// OrderedPart is a part ordered from the shop's own inventory for a ticket.
type OrderedPart struct {
	ID           int64
	TicketNumber string
	Name         string
	SKU          string
	Price        Money
	Quantity     int
	Status       OrderedPartStatus
	OrderedAt    time.Time
	ArrivedAt    *time.Time
}
