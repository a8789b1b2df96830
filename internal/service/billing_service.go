package service

import (
	"context"

	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/repository"
	"github.com/spec-kit/garage-service/pkg/util"
)

// BillProjection is the financial summary derived for a ticket. HasBill is
// explicit so the absence of a bill is never mistaken for a zero invoice.
type BillProjection struct {
	HasBill             bool
	TicketNumber        string
	LaborCost           domain.Money
	PartsCost           domain.Money
	OutsourcedPartsCost domain.Money
	OutsourcedLaborCost domain.Money
	Subtotal            domain.Money
	TaxRate             domain.Money
	TaxAmount           domain.Money
	Discount            domain.Money
	FinalTotal          domain.Money
	Status              domain.BillStatus
	LineItems           []domain.BillLineItem
}

// BillingService projects bills and guards bill creation.
type BillingService struct {
	bills   repository.BillRepository
	tickets repository.TicketRepository
}

// NewBillingService constructs the service.
func NewBillingService(bills repository.BillRepository, tickets repository.TicketRepository) *BillingService {
	return &BillingService{bills: bills, tickets: tickets}
}

// Project derives the financial summary for a ticket. The persisted subtotal
// is authoritative when set; it is recomputed from the cost components only
// when stored as zero. Tax, discount and final total are read as stored: the
// tax rate is externally supplied and never recalculated here.
func (s *BillingService) Project(ctx context.Context, ticketNumber string) (BillProjection, error) {
	bill, found, err := s.bills.GetByTicket(ctx, ticketNumber)
	if err != nil {
		return BillProjection{}, util.NewStorageError(err)
	}
	if !found {
		return BillProjection{HasBill: false, TicketNumber: ticketNumber}, nil
	}
	return projectBill(bill), nil
}

func projectBill(bill *domain.Bill) BillProjection {
	subtotal := bill.Subtotal
	if subtotal.IsZero() {
		subtotal = bill.LaborCost.
			Add(bill.PartsCost).
			Add(bill.OutsourcedPartsCost).
			Add(bill.OutsourcedLaborCost)
	}
	return BillProjection{
		HasBill:             true,
		TicketNumber:        bill.TicketNumber,
		LaborCost:           bill.LaborCost,
		PartsCost:           bill.PartsCost,
		OutsourcedPartsCost: bill.OutsourcedPartsCost,
		OutsourcedLaborCost: bill.OutsourcedLaborCost,
		Subtotal:            subtotal,
		TaxRate:             bill.TaxRate,
		TaxAmount:           bill.TaxAmount,
		Discount:            bill.Discount,
		FinalTotal:          bill.FinalTotal,
		Status:              bill.Status,
		LineItems:           bill.LineItems,
	}
}

// BillInput describes a bill upsert.
type BillInput struct {
	TicketNumber        string
	LaborCost           domain.Money
	PartsCost           domain.Money
	OutsourcedPartsCost domain.Money
	OutsourcedLaborCost domain.Money
	Subtotal            domain.Money
	TaxRate             domain.Money
	TaxAmount           domain.Money
	Discount            domain.Money
	FinalTotal          domain.Money
	Status              domain.BillStatus
	LineItems           []domain.BillLineItem
}

// SaveBill creates or replaces a ticket's bill. The ticket must exist and be
// in a billing-eligible status.
func (s *BillingService) SaveBill(ctx context.Context, input BillInput) (*domain.Bill, error) {
	if input.TicketNumber == "" {
		return nil, util.NewValidationError("ticket_number is required", nil)
	}
	ticket, err := s.tickets.GetByNumber(ctx, input.TicketNumber)
	if err != nil {
		return nil, mapTicketError(err, input.TicketNumber)
	}
	if !domain.BillingEligible(ticket.Status) {
		return nil, util.NewConflict("ticket is not billing-eligible", map[string]any{
			"status": ticket.Status,
		})
	}
	if input.Status == "" {
		input.Status = domain.BillStatusPending
	}

	bill := &domain.Bill{
		TicketNumber:        input.TicketNumber,
		LaborCost:           input.LaborCost,
		PartsCost:           input.PartsCost,
		OutsourcedPartsCost: input.OutsourcedPartsCost,
		OutsourcedLaborCost: input.OutsourcedLaborCost,
		Subtotal:            input.Subtotal,
		TaxRate:             input.TaxRate,
		TaxAmount:           input.TaxAmount,
		Discount:            input.Discount,
		FinalTotal:          input.FinalTotal,
		Status:              input.Status,
		LineItems:           input.LineItems,
	}
	if err := s.bills.Upsert(ctx, bill); err != nil {
		return nil, util.NewStorageError(err)
	}
	return bill, nil
}
