package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/repository"
	"github.com/spec-kit/garage-service/pkg/util"
)

// OutsourceService manages third-party stock and outsourced mechanics.
type OutsourceService struct {
	stock     repository.OutsourceStockRepository
	mechanics repository.OutsourceMechanicRepository
	tickets   repository.TicketRepository
}

// NewOutsourceService constructs the service.
func NewOutsourceService(
	stock repository.OutsourceStockRepository,
	mechanics repository.OutsourceMechanicRepository,
	tickets repository.TicketRepository,
) *OutsourceService {
	return &OutsourceService{stock: stock, mechanics: mechanics, tickets: tickets}
}

// StockItemInput describes an outsourced stock request.
type StockItemInput struct {
	TicketNumber string
	Name         string
	Category     string
	SKU          string
	Price        domain.Money
	Quantity     int
	SourceShop   string
	Status       string
	Notes        *string
}

// CreateStockItem records a part sourced outside normal inventory.
func (s *OutsourceService) CreateStockItem(ctx context.Context, input StockItemInput) (*domain.OutsourceStockItem, error) {
	if input.TicketNumber == "" || strings.TrimSpace(input.Name) == "" {
		return nil, util.NewValidationError("ticket_number and name are required", nil)
	}
	status := domain.StockStatusRequested
	if input.Status != "" {
		parsed, ok := domain.ParseStockStatus(input.Status)
		if !ok {
			return nil, util.NewInvalidStatus(input.Status)
		}
		status = parsed
	}
	if _, err := s.tickets.GetByNumber(ctx, input.TicketNumber); err != nil {
		return nil, mapTicketError(err, input.TicketNumber)
	}

	item := &domain.OutsourceStockItem{
		TicketNumber: input.TicketNumber,
		Name:         strings.TrimSpace(input.Name),
		Category:     input.Category,
		SKU:          input.SKU,
		Price:        input.Price,
		Quantity:     input.Quantity,
		SourceShop:   input.SourceShop,
		Status:       status,
		Notes:        input.Notes,
	}
	if err := s.stock.Create(ctx, item); err != nil {
		return nil, util.NewStorageError(err)
	}
	return item, nil
}

// UpdateStockStatus advances a stock item through requested/ordered/received.
func (s *OutsourceService) UpdateStockStatus(ctx context.Context, id int64, rawStatus string) error {
	status, ok := domain.ParseStockStatus(rawStatus)
	if !ok {
		return util.NewInvalidStatus(rawStatus)
	}
	if err := s.stock.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("outsource stock item", map[string]any{"id": id})
		}
		return util.NewStorageError(err)
	}
	return nil
}

// MechanicInput describes an outsourced mechanic engagement.
type MechanicInput struct {
	TicketNumber  string
	MechanicName  string
	Phone         string
	AgreedPayment domain.Money
	PaymentMethod string
	WorkDone      string
	Notes         *string
}

// CreateMechanic records an external mechanic hired for a ticket.
func (s *OutsourceService) CreateMechanic(ctx context.Context, input MechanicInput) (*domain.OutsourceMechanicRecord, error) {
	if input.TicketNumber == "" || strings.TrimSpace(input.MechanicName) == "" {
		return nil, util.NewValidationError("ticket_number and mechanic_name are required", nil)
	}
	if _, err := s.tickets.GetByNumber(ctx, input.TicketNumber); err != nil {
		return nil, mapTicketError(err, input.TicketNumber)
	}

	record := &domain.OutsourceMechanicRecord{
		TicketNumber:  input.TicketNumber,
		MechanicName:  strings.TrimSpace(input.MechanicName),
		Phone:         input.Phone,
		AgreedPayment: input.AgreedPayment,
		PaymentMethod: input.PaymentMethod,
		WorkDone:      input.WorkDone,
		Notes:         input.Notes,
	}
	if err := s.mechanics.Create(ctx, record); err != nil {
		return nil, util.NewStorageError(err)
	}
	record.Payments = []domain.MechanicPayment{}
	return record, nil
}

// PaymentInput describes one ledger entry.
type PaymentInput struct {
	Amount domain.Money
	Method string
	Notes  *string
}

// AddPayment appends a payment to a mechanic's ledger and returns the record
// with the refreshed ledger.
func (s *OutsourceService) AddPayment(ctx context.Context, mechanicID int64, input PaymentInput) (*domain.OutsourceMechanicRecord, error) {
	if input.Amount.IsNegative() || input.Amount.IsZero() {
		return nil, util.NewValidationError("amount must be positive", nil)
	}
	record, err := s.mechanics.GetByID(ctx, mechanicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("outsource mechanic", map[string]any{"id": mechanicID})
		}
		return nil, util.NewStorageError(err)
	}

	payment := &domain.MechanicPayment{
		MechanicID: mechanicID,
		Amount:     input.Amount,
		Method:     input.Method,
		Notes:      input.Notes,
	}
	if err := s.mechanics.AddPayment(ctx, payment); err != nil {
		return nil, util.NewStorageError(err)
	}

	payments, err := s.mechanics.ListPayments(ctx, mechanicID)
	if err != nil {
		return nil, util.NewStorageError(err)
	}
	record.Payments = payments
	return record, nil
}

// ListMechanics returns a ticket's outsourced mechanics with their ledgers.
func (s *OutsourceService) ListMechanics(ctx context.Context, ticketNumber string) ([]domain.OutsourceMechanicRecord, error) {
	records, err := s.mechanics.ListByTicket(ctx, ticketNumber)
	if err != nil {
		return nil, util.NewStorageError(err)
	}
	for i := range records {
		payments, err := s.mechanics.ListPayments(ctx, records[i].ID)
		if err != nil {
			return nil, util.NewStorageError(err)
		}
		records[i].Payments = payments
	}
	return records, nil
}
