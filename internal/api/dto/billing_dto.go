package dto

import (
	"github.com/shopspring/decimal"

	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/service"
)

// SaveBillRequest payload.
type SaveBillRequest struct {
	TicketNumber        string                `json:"ticket_number" validate:"required"`
	LaborCost           decimal.Decimal       `json:"labor_cost"`
	PartsCost           decimal.Decimal       `json:"parts_cost"`
	OutsourcedPartsCost decimal.Decimal       `json:"outsourced_parts_cost"`
	OutsourcedLaborCost decimal.Decimal       `json:"outsourced_labor_cost"`
	Subtotal            decimal.Decimal       `json:"subtotal"`
	TaxRate             decimal.Decimal       `json:"tax_rate"`
	TaxAmount           decimal.Decimal       `json:"tax_amount"`
	Discount            decimal.Decimal       `json:"discount"`
	FinalTotal          decimal.Decimal       `json:"final_total"`
	Status              string                `json:"status" validate:"omitempty,oneof=pending invoiced paid"`
	LineItems           []BillLineItemRequest `json:"line_items"`
}

// BillLineItemRequest is one proforma line.
type BillLineItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity" validate:"omitempty,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// BillLineItemResponse is one stored line.
type BillLineItemResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Size        string          `json:"size,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// BillProjectionResponse reports the financial summary. When no bill exists
// has_bill is false and every numeric field is omitted, so an unissued bill
// can never read as a $0 invoice.
type BillProjectionResponse struct {
	HasBill             bool                   `json:"has_bill"`
	TicketNumber        string                 `json:"ticket_number"`
	LaborCost           *decimal.Decimal       `json:"labor_cost,omitempty"`
	PartsCost           *decimal.Decimal       `json:"parts_cost,omitempty"`
	OutsourcedPartsCost *decimal.Decimal       `json:"outsourced_parts_cost,omitempty"`
	OutsourcedLaborCost *decimal.Decimal       `json:"outsourced_labor_cost,omitempty"`
	Subtotal            *decimal.Decimal       `json:"subtotal,omitempty"`
	TaxRate             *decimal.Decimal       `json:"tax_rate,omitempty"`
	TaxAmount           *decimal.Decimal       `json:"tax_amount,omitempty"`
	Discount            *decimal.Decimal       `json:"discount,omitempty"`
	FinalTotal          *decimal.Decimal       `json:"final_total,omitempty"`
	Status              string                 `json:"status,omitempty"`
	LineItems           []BillLineItemResponse `json:"line_items,omitempty"`
}

// BillProjectionFromService maps the projection.
func BillProjectionFromService(projection service.BillProjection) BillProjectionResponse {
	if !projection.HasBill {
		return BillProjectionResponse{HasBill: false, TicketNumber: projection.TicketNumber}
	}
	items := make([]BillLineItemResponse, 0, len(projection.LineItems))
	for _, item := range projection.LineItems {
		items = append(items, BillLineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}
	return BillProjectionResponse{
		HasBill:             true,
		TicketNumber:        projection.TicketNumber,
		LaborCost:           &projection.LaborCost,
		PartsCost:           &projection.PartsCost,
		OutsourcedPartsCost: &projection.OutsourcedPartsCost,
		OutsourcedLaborCost: &projection.OutsourcedLaborCost,
		Subtotal:            &projection.Subtotal,
		TaxRate:             &projection.TaxRate,
		TaxAmount:           &projection.TaxAmount,
		Discount:            &projection.Discount,
		FinalTotal:          &projection.FinalTotal,
		Status:              string(projection.Status),
		LineItems:           items,
	}
}

// BillFromDomain maps a stored bill onto the projection shape.
func BillFromDomain(bill *domain.Bill) BillProjectionResponse {
	items := make([]BillLineItemResponse, 0, len(bill.LineItems))
	for _, item := range bill.LineItems {
		items = append(items, BillLineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}
	return BillProjectionResponse{
		HasBill:             true,
		TicketNumber:        bill.TicketNumber,
		LaborCost:           &bill.LaborCost,
		PartsCost:           &bill.PartsCost,
		OutsourcedPartsCost: &bill.OutsourcedPartsCost,
		OutsourcedLaborCost: &bill.OutsourcedLaborCost,
		Subtotal:            &bill.Subtotal,
		TaxRate:             &bill.TaxRate,
		TaxAmount:           &bill.TaxAmount,
		Discount:            &bill.Discount,
		FinalTotal:          &bill.FinalTotal,
		Status:              string(bill.Status),
		LineItems:           items,
	}
}

// LineItemsToDomain converts request lines.
func LineItemsToDomain(items []BillLineItemRequest) []domain.BillLineItem {
	result := make([]domain.BillLineItem, 0, len(items))
	for _, item := range items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		result = append(result, domain.BillLineItem{
			Description: item.Description,
			Size:        item.Size,
			Quantity:    quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}
	return result
}
