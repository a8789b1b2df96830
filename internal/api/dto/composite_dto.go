package dto

import (
	"github.com/spec-kit/garage-service/internal/service"
)

// ActiveTicketFromService maps the four-way aggregation.
func ActiveTicketFromService(composite *service.TicketComposite) ActiveTicketResponse {
	return ActiveTicketResponse{
		TicketResponse:     TicketFromDomain(&composite.Ticket),
		ToolAssignments:    ToolAssignmentsFromDomain(composite.ToolAssignments),
		OutsourceStock:     StockItemsFromDomain(composite.OutsourceStock),
		OrderedParts:       OrderedPartsFromDomain(composite.OrderedParts),
		OutsourceMechanics: MechanicsFromDomain(composite.OutsourceMechanics),
	}
}

// CompositeFromService maps the full seven-way aggregation.
func CompositeFromService(composite *service.TicketComposite) TicketCompositeResponse {
	response := TicketCompositeResponse{
		ActiveTicketResponse: ActiveTicketFromService(composite),
		DisassembledParts:    PartsFromDomain(composite.DisassembledParts),
		ProgressLogs:         ProgressLogsFromDomain(composite.ProgressTimeline),
		Inspections:          InspectionsFromDomain(composite.Inspections),
	}
	if composite.Billing != nil {
		projection := BillProjectionFromService(*composite.Billing)
		response.Billing = &projection
	}
	return response
}
