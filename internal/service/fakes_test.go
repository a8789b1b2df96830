package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/events"
)

// fakeTicketRepo keeps tickets in memory, keyed by ticket number. Insertion
// order is remembered so list results are deterministic.
type fakeTicketRepo struct {
	tickets map[string]*domain.ServiceTicket
	order   []string
	listErr error
}

func newFakeTicketRepo(tickets ...*domain.ServiceTicket) *fakeTicketRepo {
	repo := &fakeTicketRepo{tickets: map[string]*domain.ServiceTicket{}}
	for _, t := range tickets {
		repo.tickets[t.TicketNumber] = t
		repo.order = append(repo.order, t.TicketNumber)
	}
	return repo
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.ServiceTicket) error {
	ticket.ID = "id-" + ticket.TicketNumber
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	r.tickets[ticket.TicketNumber] = ticket
	r.order = append(r.order, ticket.TicketNumber)
	return nil
}

func (r *fakeTicketRepo) GetByNumber(_ context.Context, ticketNumber string) (*domain.ServiceTicket, error) {
	ticket, ok := r.tickets[ticketNumber]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *ticket
	return &clone, nil
}

func (r *fakeTicketRepo) UpdateStatus(_ context.Context, ticketNumber string, status domain.TicketStatus) (*domain.ServiceTicket, error) {
	ticket, ok := r.tickets[ticketNumber]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	ticket.Status = status
	ticket.UpdatedAt = time.Now()
	if status == domain.StatusCompleted {
		now := time.Now()
		ticket.CompletedAt = &now
	}
	clone := *ticket
	return &clone, nil
}

func (r *fakeTicketRepo) SetEstimatedCompletion(_ context.Context, ticketNumber string, estimate time.Time) error {
	ticket, ok := r.tickets[ticketNumber]
	if !ok {
		return pgx.ErrNoRows
	}
	ticket.EstimatedCompletion = &estimate
	return nil
}

func (r *fakeTicketRepo) ListByStatuses(_ context.Context, statuses []domain.TicketStatus) ([]domain.ServiceTicket, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	wanted := map[domain.TicketStatus]bool{}
	for _, status := range statuses {
		wanted[status] = true
	}
	var result []domain.ServiceTicket
	for _, number := range r.order {
		if ticket := r.tickets[number]; wanted[ticket.Status] {
			result = append(result, *ticket)
		}
	}
	return result, nil
}

// fakePartRepo keeps disassembled parts in memory.
type fakePartRepo struct {
	parts  map[int64]*domain.DisassembledPart
	nextID int64
}

func newFakePartRepo() *fakePartRepo {
	return &fakePartRepo{parts: map[int64]*domain.DisassembledPart{}, nextID: 1}
}

func (r *fakePartRepo) Create(_ context.Context, part *domain.DisassembledPart) error {
	part.ID = r.nextID
	r.nextID++
	if part.LoggedAt.IsZero() {
		part.LoggedAt = time.Now()
	}
	clone := *part
	r.parts[part.ID] = &clone
	return nil
}

func (r *fakePartRepo) GetByID(_ context.Context, id int64) (*domain.DisassembledPart, error) {
	part, ok := r.parts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *part
	return &clone, nil
}

func (r *fakePartRepo) ListByTicket(_ context.Context, ticketNumber string) ([]domain.DisassembledPart, error) {
	var result []domain.DisassembledPart
	for _, part := range r.parts {
		if part.TicketNumber == ticketNumber {
			result = append(result, *part)
		}
	}
	return result, nil
}

func (r *fakePartRepo) UpdateStatus(_ context.Context, id int64, status domain.PartStatus) error {
	part, ok := r.parts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	part.Status = status
	return nil
}

func (r *fakePartRepo) ListLoggedSince(_ context.Context, since time.Time) ([]domain.DisassembledPart, error) {
	var result []domain.DisassembledPart
	for id := int64(1); id < r.nextID; id++ {
		part, ok := r.parts[id]
		if ok && !part.LoggedAt.Before(since) {
			result = append(result, *part)
		}
	}
	return result, nil
}

// recordingDispatcher captures published events.
type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

// collection fakes for the aggregator tests; err injects a fetch failure.

type fakeToolRepo struct {
	byTicket map[string][]domain.ToolAssignment
	delay    map[string]time.Duration
	err      error
}

func (r *fakeToolRepo) Create(_ context.Context, assignment *domain.ToolAssignment) error {
	assignment.ID = int64(len(r.byTicket[assignment.TicketNumber]) + 1)
	r.byTicket[assignment.TicketNumber] = append(r.byTicket[assignment.TicketNumber], *assignment)
	return nil
}

func (r *fakeToolRepo) ListByTicket(_ context.Context, ticketNumber string) ([]domain.ToolAssignment, error) {
	if r.err != nil {
		return nil, r.err
	}
	if d := r.delay[ticketNumber]; d > 0 {
		time.Sleep(d)
	}
	return r.byTicket[ticketNumber], nil
}

func (r *fakeToolRepo) MarkReturned(context.Context, int64) error { return nil }

type fakeStockRepo struct {
	byTicket map[string][]domain.OutsourceStockItem
	err      error
}

func (r *fakeStockRepo) Create(_ context.Context, item *domain.OutsourceStockItem) error {
	r.byTicket[item.TicketNumber] = append(r.byTicket[item.TicketNumber], *item)
	return nil
}

func (r *fakeStockRepo) ListByTicket(_ context.Context, ticketNumber string) ([]domain.OutsourceStockItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byTicket[ticketNumber], nil
}

func (r *fakeStockRepo) UpdateStatus(context.Context, int64, domain.StockStatus) error { return nil }

type fakeOrderedRepo struct {
	byTicket map[string][]domain.OrderedPart
	err      error
}

func (r *fakeOrderedRepo) Create(_ context.Context, part *domain.OrderedPart) error {
	r.byTicket[part.TicketNumber] = append(r.byTicket[part.TicketNumber], *part)
	return nil
}

func (r *fakeOrderedRepo) ListByTicket(_ context.Context, ticketNumber string) ([]domain.OrderedPart, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byTicket[ticketNumber], nil
}

func (r *fakeOrderedRepo) UpdateStatus(context.Context, int64, domain.OrderedPartStatus) error {
	return nil
}

type fakeMechanicRepo struct {
	byTicket map[string][]domain.OutsourceMechanicRecord
	payments map[int64][]domain.MechanicPayment
	err      error
}

func (r *fakeMechanicRepo) Create(_ context.Context, record *domain.OutsourceMechanicRecord) error {
	r.byTicket[record.TicketNumber] = append(r.byTicket[record.TicketNumber], *record)
	return nil
}

func (r *fakeMechanicRepo) GetByID(_ context.Context, id int64) (*domain.OutsourceMechanicRecord, error) {
	for _, records := range r.byTicket {
		for i := range records {
			if records[i].ID == id {
				clone := records[i]
				return &clone, nil
			}
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeMechanicRepo) ListByTicket(_ context.Context, ticketNumber string) ([]domain.OutsourceMechanicRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byTicket[ticketNumber], nil
}

func (r *fakeMechanicRepo) AddPayment(_ context.Context, payment *domain.MechanicPayment) error {
	payment.ID = int64(len(r.payments[payment.MechanicID]) + 1)
	payment.PaidAt = time.Now()
	r.payments[payment.MechanicID] = append(r.payments[payment.MechanicID], *payment)
	return nil
}

func (r *fakeMechanicRepo) ListPayments(_ context.Context, mechanicID int64) ([]domain.MechanicPayment, error) {
	return r.payments[mechanicID], nil
}

type fakeProgressRepo struct {
	byTicket map[string][]domain.ProgressLogEntry
	err      error
}

func (r *fakeProgressRepo) Create(_ context.Context, entry *domain.ProgressLogEntry) error {
	entry.ID = int64(len(r.byTicket[entry.TicketNumber]) + 1)
	entry.CreatedAt = time.Now()
	r.byTicket[entry.TicketNumber] = append(r.byTicket[entry.TicketNumber], *entry)
	return nil
}

func (r *fakeProgressRepo) ListByTicket(_ context.Context, ticketNumber string) ([]domain.ProgressLogEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	entries := r.byTicket[ticketNumber]
	reversed := make([]domain.ProgressLogEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		reversed = append(reversed, entries[i])
	}
	return reversed, nil
}

func (r *fakeProgressRepo) ListTimeline(_ context.Context, ticketNumber string) ([]domain.ProgressLogEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byTicket[ticketNumber], nil
}

type fakeInspectionRepo struct {
	byTicket map[string][]domain.InspectionRecord
	err      error
}

func (r *fakeInspectionRepo) Create(_ context.Context, record *domain.InspectionRecord) error {
	record.ID = int64(len(r.byTicket[record.TicketNumber]) + 1)
	record.InspectedAt = time.Now()
	r.byTicket[record.TicketNumber] = append(r.byTicket[record.TicketNumber], *record)
	return nil
}

func (r *fakeInspectionRepo) ListByTicket(_ context.Context, ticketNumber string) ([]domain.InspectionRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byTicket[ticketNumber], nil
}

type fakeBillRepo struct {
	byTicket map[string]*domain.Bill
	err      error
}

func (r *fakeBillRepo) Upsert(_ context.Context, bill *domain.Bill) error {
	if r.err != nil {
		return r.err
	}
	clone := *bill
	r.byTicket[bill.TicketNumber] = &clone
	return nil
}

func (r *fakeBillRepo) GetByTicket(_ context.Context, ticketNumber string) (*domain.Bill, bool, error) {
	if r.err != nil {
		return nil, false, r.err
	}
	bill, ok := r.byTicket[ticketNumber]
	if !ok {
		return nil, false, nil
	}
	clone := *bill
	return &clone, true, nil
}
