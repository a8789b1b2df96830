package domain

import "time"

// OutsourceStockItem is a part sourced from a third-party shop outside the
// normal inventory.
type OutsourceStockItem struct {
	ID           int64
	TicketNumber string
	Name         string
	Category     string
	SKU          string
	Price        Money
	Quantity     int
	SourceShop   string
	Status       StockStatus
	Notes        *string
	RequestedAt  time.Time
	ReceivedAt   *time.Time
}

// OutsourceMechanicRecord tracks an external mechanic hired for a ticket,
// together with the agreed payment. Payments accumulate in an append-only
// ledger; balances are derived, never stored.
type OutsourceMechanicRecord struct {
	ID            int64
	TicketNumber  string
	MechanicName  string
	Phone         string
	AgreedPayment Money
	PaymentMethod string
	WorkDone      string
	Notes         *string
	CreatedAt     time.Time

	Payments []MechanicPayment
}

// MechanicPayment is one ledger entry against an outsourced mechanic.
type MechanicPayment struct {
	ID         int64
	MechanicID int64
	Amount     Money
	Method     string
	PaidAt     time.Time
	Notes      *string
}

// TotalPaid sums the ledger.
func (r *OutsourceMechanicRecord) TotalPaid() Money {
	total := Zero
	for _, p := range r.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// RemainingBalance is agreed payment minus total paid, clamped at zero for
// user-facing output. Use RawBalance to detect overpayment.
func (r *OutsourceMechanicRecord) RemainingBalance() Money {
	raw := r.RawBalance()
	if raw.IsNegative() {
		return Zero
	}
	return raw
}

// RawBalance is the unclamped arithmetic; negative means overpaid.
func (r *OutsourceMechanicRecord) RawBalance() Money {
	return r.AgreedPayment.Sub(r.TotalPaid())
}
