package domain

import "time"

// CustomerType distinguishes individual from company customers.
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "individual"
	CustomerTypeCompany    CustomerType = "company"
)

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketType enumerates service job categories.
type TicketType string

const (
	TicketTypeRegular   TicketType = "regular"
	TicketTypeInsurance TicketType = "insurance"
	TicketTypeSOS       TicketType = "sos"
)

// ServiceTicket is the aggregate root for a repair job. Status is mutated only
// through the ticket service; sub-records hang off the ticket number.
type ServiceTicket struct {
	ID                  string
	TicketNumber        string
	CustomerType        CustomerType
	CustomerID          string
	VehicleID           string
	Title               string
	Description         string
	Priority            TicketPriority
	Type                TicketType
	UrgencyLevel        string
	Status              TicketStatus
	MechanicID          *string
	InspectorID         *string
	EstimatedCompletion *time.Time
	CompletedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
