package domain

import "time"

// Bill is the zero-or-one financial record for a ticket.
type Bill struct {
	ID                  int64
	TicketNumber        string
	LaborCost           Money
	PartsCost           Money
	OutsourcedPartsCost Money
	OutsourcedLaborCost Money
	Subtotal            Money
	TaxRate             Money
	TaxAmount           Money
	Discount            Money
	FinalTotal          Money
	Status              BillStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time

	LineItems []BillLineItem
}

// BillLineItem is a line carried over from a source proforma.
type BillLineItem struct {
	ID          int64
	BillID      int64
	Description string
	Size        string
	Quantity    int
	UnitPrice   Money
	Amount      Money
}
