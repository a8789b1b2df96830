package domain

import "strings"

// TicketStatus enumerates lifecycle states for service tickets. The vocabulary
// is closed: no other string is a valid ticket status.
type TicketStatus string

const (
	StatusPending              TicketStatus = "pending"
	StatusAssigned             TicketStatus = "assigned"
	StatusInProgress           TicketStatus = "in progress"
	StatusReadyForInspection   TicketStatus = "ready for inspection"
	StatusInspection           TicketStatus = "inspection"
	StatusSuccessfulInspection TicketStatus = "successful inspection"
	StatusInspectionFailed     TicketStatus = "inspection failed"
	StatusAwaitingBill         TicketStatus = "awaiting bill"
	StatusPaymentRequested     TicketStatus = "payment requested"
	StatusRequestPayment       TicketStatus = "request payment"
	StatusBilled               TicketStatus = "billed"
	StatusCompleted            TicketStatus = "completed"
	StatusAwaitingSurvey       TicketStatus = "awaiting survey"
	StatusAwaitingSalvageForm  TicketStatus = "awaiting salvage form"
)

// AllStatuses is the full closed vocabulary, in workflow order. The insurance
// branches (awaiting survey, awaiting salvage form) do not rejoin the main
// path but are valid states for insurance tickets.
var AllStatuses = []TicketStatus{
	StatusPending,
	StatusAssigned,
	StatusInProgress,
	StatusReadyForInspection,
	StatusInspection,
	StatusSuccessfulInspection,
	StatusInspectionFailed,
	StatusAwaitingBill,
	StatusPaymentRequested,
	StatusRequestPayment,
	StatusBilled,
	StatusCompleted,
	StatusAwaitingSurvey,
	StatusAwaitingSalvageForm,
}

// UpdateAllowList is the subset accepted by the update-status endpoint.
var UpdateAllowList = []TicketStatus{
	StatusPending,
	StatusAssigned,
	StatusInProgress,
	StatusReadyForInspection,
	StatusInspection,
	StatusSuccessfulInspection,
	StatusInspectionFailed,
	StatusCompleted,
}

// CompletedViewStatuses filters tickets shown on the completed-cars views.
var CompletedViewStatuses = []TicketStatus{
	StatusReadyForInspection,
	StatusInspection,
	StatusSuccessfulInspection,
	StatusInspectionFailed,
	StatusAwaitingBill,
	StatusPaymentRequested,
	StatusBilled,
	StatusRequestPayment,
	StatusCompleted,
}

// workflowGraph captures reachable next states for the strict-transition mode.
// Insurance branch states are terminal-ish: no programmatic continuation.
var workflowGraph = map[TicketStatus][]TicketStatus{
	StatusPending:              {StatusAssigned},
	StatusAssigned:             {StatusInProgress},
	StatusInProgress:           {StatusReadyForInspection},
	StatusReadyForInspection:   {StatusInspection},
	StatusInspection:           {StatusSuccessfulInspection, StatusInspectionFailed},
	StatusSuccessfulInspection: {StatusAwaitingBill, StatusRequestPayment},
	StatusInspectionFailed:     {StatusInProgress},
	StatusAwaitingBill:         {StatusPaymentRequested, StatusBilled},
	StatusPaymentRequested:     {StatusCompleted},
	StatusRequestPayment:       {StatusCompleted},
	StatusBilled:               {StatusPaymentRequested, StatusCompleted},
	StatusCompleted:            {},
	StatusAwaitingSurvey:       {},
	StatusAwaitingSalvageForm:  {},
}

// CanonicalStatus normalizes the status spellings seen in the wild
// ("in-progress", "In_Progress", " in  progress ") to the vocabulary form.
func CanonicalStatus(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// ParseTicketStatus canonicalizes raw and reports whether it belongs to the
// closed vocabulary.
func ParseTicketStatus(raw string) (TicketStatus, bool) {
	status := TicketStatus(CanonicalStatus(raw))
	return status, containsStatus(AllStatuses, status)
}

// IsUpdatable reports whether status belongs to the update-status allow-list.
func IsUpdatable(status TicketStatus) bool {
	return containsStatus(UpdateAllowList, status)
}

// CanTransition reports whether next is reachable from current in the
// workflow graph. Only consulted when strict transitions are enabled.
func CanTransition(current, next TicketStatus) bool {
	return containsStatus(workflowGraph[current], next)
}

// InCompletedView reports whether a ticket in the given status belongs on the
// completed-cars views.
func InCompletedView(status TicketStatus) bool {
	return containsStatus(CompletedViewStatuses, status)
}

// BillingEligible reports whether a ticket in the given status may carry a bill.
func BillingEligible(status TicketStatus) bool {
	switch status {
	case StatusSuccessfulInspection, StatusAwaitingBill, StatusPaymentRequested,
		StatusRequestPayment, StatusBilled, StatusCompleted:
		return true
	}
	return false
}

func containsStatus(set []TicketStatus, status TicketStatus) bool {
	for _, candidate := range set {
		if candidate == status {
			return true
		}
	}
	return false
}

// PartStatus enumerates disassembled-part states.
type PartStatus string

const (
	PartStatusReceived PartStatus = "received"
	PartStatusReturned PartStatus = "returned"
)

// ParsePartStatus canonicalizes raw and reports vocabulary membership.
func ParsePartStatus(raw string) (PartStatus, bool) {
	status := PartStatus(CanonicalStatus(raw))
	return status, status == PartStatusReceived || status == PartStatusReturned
}

// StockStatus enumerates outsourced stock item states.
type StockStatus string

const (
	StockStatusRequested StockStatus = "requested"
	StockStatusOrdered   StockStatus = "ordered"
	StockStatusReceived  StockStatus = "received"
)

// ParseStockStatus canonicalizes raw and reports vocabulary membership.
func ParseStockStatus(raw string) (StockStatus, bool) {
	status := StockStatus(CanonicalStatus(raw))
	switch status {
	case StockStatusRequested, StockStatusOrdered, StockStatusReceived:
		return status, true
	}
	return status, false
}

// OrderedPartStatus enumerates inventory-ordered part states.
type OrderedPartStatus string

const (
	OrderedPartStatusOrdered OrderedPartStatus = "ordered"
	OrderedPartStatusArrived OrderedPartStatus = "arrived"
)

// ToolStatus enumerates tool assignment states.
type ToolStatus string

const (
	ToolStatusAssigned ToolStatus = "assigned"
	ToolStatusReturned ToolStatus = "returned"
)

// InspectionStatus enumerates inspection outcomes.
type InspectionStatus string

const (
	InspectionSuccessful InspectionStatus = "successful"
	InspectionFailed     InspectionStatus = "failed"
	InspectionPending    InspectionStatus = "pending"
)

// BillStatus enumerates bill states.
type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusInvoiced BillStatus = "invoiced"
	BillStatusPaid     BillStatus = "paid"
)
