package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/garage-service/internal/domain"
)

// CreateStockItemRequest payload.
type CreateStockItemRequest struct {
	TicketNumber string          `json:"ticket_number" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Category     string          `json:"category"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity" validate:"omitempty,min=1"`
	SourceShop   string          `json:"source_shop"`
	Status       string          `json:"status"`
	Notes        *string         `json:"notes"`
}

// UpdateStockStatusRequest payload.
type UpdateStockStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OutsourceStockResponse represents one outsourced stock item.
type OutsourceStockResponse struct {
	ID           int64           `json:"id"`
	TicketNumber string          `json:"ticket_number"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	SKU          string          `json:"sku,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	SourceShop   string          `json:"source_shop,omitempty"`
	Status       string          `json:"status"`
	Notes        *string         `json:"notes,omitempty"`
	RequestedAt  time.Time       `json:"requested_at"`
	ReceivedAt   *time.Time      `json:"received_at,omitempty"`
}

// CreateMechanicRequest payload.
type CreateMechanicRequest struct {
	TicketNumber  string          `json:"ticket_number" validate:"required"`
	MechanicName  string          `json:"mechanic_name" validate:"required"`
	Phone         string          `json:"phone"`
	AgreedPayment decimal.Decimal `json:"agreed_payment"`
	PaymentMethod string          `json:"payment_method"`
	WorkDone      string          `json:"work_done"`
	Notes         *string         `json:"notes"`
}

// AddPaymentRequest payload.
type AddPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
	Method string          `json:"method"`
	Notes  *string         `json:"notes"`
}

// MechanicPaymentResponse is one ledger entry.
type MechanicPaymentResponse struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method,omitempty"`
	PaidAt time.Time       `json:"paid_at"`
	Notes  *string         `json:"notes,omitempty"`
}

// OutsourceMechanicResponse carries the mechanic with derived balances. The
// remaining balance is clamped at zero; overpaid flags the raw arithmetic
// going negative.
type OutsourceMechanicResponse struct {
	ID               int64                     `json:"id"`
	TicketNumber     string                    `json:"ticket_number"`
	MechanicName     string                    `json:"mechanic_name"`
	Phone            string                    `json:"phone,omitempty"`
	AgreedPayment    decimal.Decimal           `json:"agreed_payment"`
	PaymentMethod    string                    `json:"payment_method,omitempty"`
	WorkDone         string                    `json:"work_done,omitempty"`
	Notes            *string                   `json:"notes,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	Payments         []MechanicPaymentResponse `json:"payments"`
	TotalPaid        decimal.Decimal           `json:"total_paid"`
	RemainingBalance decimal.Decimal           `json:"remaining_balance"`
	Overpaid         bool                      `json:"overpaid"`
}

// StockItemFromDomain maps one stock item.
func StockItemFromDomain(item *domain.OutsourceStockItem) OutsourceStockResponse {
	return OutsourceStockResponse{
		ID:           item.ID,
		TicketNumber: item.TicketNumber,
		Name:         item.Name,
		Category:     item.Category,
		SKU:          item.SKU,
		Price:        item.Price,
		Quantity:     item.Quantity,
		SourceShop:   item.SourceShop,
		Status:       string(item.Status),
		Notes:        item.Notes,
		RequestedAt:  item.RequestedAt,
		ReceivedAt:   item.ReceivedAt,
	}
}

// StockItemsFromDomain maps a slice, never returning nil.
func StockItemsFromDomain(items []domain.OutsourceStockItem) []OutsourceStockResponse {
	result := make([]OutsourceStockResponse, 0, len(items))
	for i := range items {
		result = append(result, StockItemFromDomain(&items[i]))
	}
	return result
}

// MechanicFromDomain maps a mechanic record with its ledger.
func MechanicFromDomain(record *domain.OutsourceMechanicRecord) OutsourceMechanicResponse {
	payments := make([]MechanicPaymentResponse, 0, len(record.Payments))
	for _, p := range record.Payments {
		payments = append(payments, MechanicPaymentResponse{
			ID:     p.ID,
			Amount: p.Amount,
			Method: p.Method,
			PaidAt: p.PaidAt,
			Notes:  p.Notes,
		})
	}
	return OutsourceMechanicResponse{
		ID:               record.ID,
		TicketNumber:     record.TicketNumber,
		MechanicName:     record.MechanicName,
		Phone:            record.Phone,
		AgreedPayment:    record.AgreedPayment,
		PaymentMethod:    record.PaymentMethod,
		WorkDone:         record.WorkDone,
		Notes:            record.Notes,
		CreatedAt:        record.CreatedAt,
		Payments:         payments,
		TotalPaid:        record.TotalPaid(),
		RemainingBalance: record.RemainingBalance(),
		Overpaid:         record.RawBalance().IsNegative(),
	}
}

// MechanicsFromDomain maps a slice, never returning nil.
func MechanicsFromDomain(records []domain.OutsourceMechanicRecord) []OutsourceMechanicResponse {
	result := make([]OutsourceMechanicResponse, 0, len(records))
	for i := range records {
		result = append(result, MechanicFromDomain(&records[i]))
	}
	return result
}
