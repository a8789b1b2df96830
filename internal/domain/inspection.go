package domain

import "time"

// InspectionRecord is one inspection pass over a ticket. A ticket can carry
// several (re-inspection after failure).
type InspectionRecord struct {
	ID                 int64
	TicketNumber       string
	MainIssueResolved  bool
	ReassemblyVerified bool
	GeneralCondition   string
	Notes              *string
	Status             InspectionStatus
	InspectedAt        time.Time
}
