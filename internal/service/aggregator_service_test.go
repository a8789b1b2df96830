package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/observability"
	"github.com/spec-kit/garage-service/pkg/util"
)

type aggregatorFixture struct {
	tickets  *fakeTicketRepo
	parts    *fakePartRepo
	tools    *fakeToolRepo
	ordered  *fakeOrderedRepo
	stock    *fakeStockRepo
	mechanic *fakeMechanicRepo
	progress *fakeProgressRepo
	inspect  *fakeInspectionRepo
	bills    *fakeBillRepo
	svc      *AggregatorService
}

func newAggregatorFixture(tickets ...*domain.ServiceTicket) *aggregatorFixture {
	f := &aggregatorFixture{
		tickets:  newFakeTicketRepo(tickets...),
		parts:    newFakePartRepo(),
		tools:    &fakeToolRepo{byTicket: map[string][]domain.ToolAssignment{}},
		ordered:  &fakeOrderedRepo{byTicket: map[string][]domain.OrderedPart{}},
		stock:    &fakeStockRepo{byTicket: map[string][]domain.OutsourceStockItem{}},
		mechanic: &fakeMechanicRepo{byTicket: map[string][]domain.OutsourceMechanicRecord{}, payments: map[int64][]domain.MechanicPayment{}},
		progress: &fakeProgressRepo{byTicket: map[string][]domain.ProgressLogEntry{}},
		inspect:  &fakeInspectionRepo{byTicket: map[string][]domain.InspectionRecord{}},
		bills:    &fakeBillRepo{byTicket: map[string]*domain.Bill{}},
	}
	f.svc = NewAggregatorService(AggregatorDependencies{
		TicketRepo:     f.tickets,
		PartRepo:       f.parts,
		ToolRepo:       f.tools,
		OrderedRepo:    f.ordered,
		StockRepo:      f.stock,
		MechanicRepo:   f.mechanic,
		ProgressRepo:   f.progress,
		InspectionRepo: f.inspect,
		Billing:        NewBillingService(f.bills, f.tickets),
		Logger:         zap.NewNop(),
		Metrics:        observability.NewMetrics(),
	})
	return f
}

func TestAggregateOneUnknownTicket(t *testing.T) {
	t.Parallel()

	f := newAggregatorFixture()

	_, err := f.svc.AggregateOne(context.Background(), "SVT-MISSING1")
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestAggregateOneCollectionsNeverNil(t *testing.T) {
	t.Parallel()

	f := newAggregatorFixture(ticketFixture("SVT-00000001", domain.StatusCompleted))

	composite, err := f.svc.AggregateOne(context.Background(), "SVT-00000001")
	require.NoError(t, err)

	assert.NotNil(t, composite.ToolAssignments)
	assert.NotNil(t, composite.OutsourceStock)
	assert.NotNil(t, composite.OrderedParts)
	assert.NotNil(t, composite.OutsourceMechanics)
	assert.NotNil(t, composite.DisassembledParts)
	assert.NotNil(t, composite.ProgressTimeline)
	assert.NotNil(t, composite.Inspections)
	require.NotNil(t, composite.Billing)
	assert.False(t, composite.Billing.HasBill)
}

func TestAggregateOneDegradesFailedSubFetch(t *testing.T) {
	t.Parallel()

	f := newAggregatorFixture(ticketFixture("SVT-00000001", domain.StatusCompleted))
	f.tools.byTicket["SVT-00000001"] = []domain.ToolAssignment{{ID: 1, TicketNumber: "SVT-00000001", ToolID: "T-7"}}
	f.inspect.err = errors.New("join table corrupt")

	composite, err := f.svc.AggregateOne(context.Background(), "SVT-00000001")
	require.NoError(t, err)

	// the failing collection degrades to empty, the rest survive
	assert.Empty(t, composite.Inspections)
	require.Len(t, composite.ToolAssignments, 1)
	assert.Equal(t, "T-7", composite.ToolAssignments[0].ToolID)
}

func TestAggregateActiveFiltersInProgress(t *testing.T) {
	t.Parallel()

	f := newAggregatorFixture(
		ticketFixture("SVT-00000001", domain.StatusInProgress),
		ticketFixture("SVT-00000002", domain.StatusPending),
		ticketFixture("SVT-00000003", domain.StatusInProgress),
	)

	composites, err := f.svc.AggregateActive(context.Background())
	require.NoError(t, err)
	require.Len(t, composites, 2)
	for _, composite := range composites {
		assert.Equal(t, domain.StatusInProgress, composite.Ticket.Status)
		assert.NotNil(t, composite.ToolAssignments)
		// active view carries no billing projection
		assert.Nil(t, composite.Billing)
	}
}

func TestAggregateBatchPreservesQueryOrder(t *testing.T) {
	t.Parallel()

	numbers := []string{"SVT-00000001", "SVT-00000002", "SVT-00000003", "SVT-00000004", "SVT-00000005"}
	tickets := make([]*domain.ServiceTicket, 0, len(numbers))
	for _, number := range numbers {
		tickets = append(tickets, ticketFixture(number, domain.StatusInProgress))
	}
	f := newAggregatorFixture(tickets...)

	// skew the per-ticket fetches so earlier tickets finish last
	f.tools.delay = map[string]time.Duration{}
	for i, number := range numbers {
		f.tools.delay[number] = time.Duration(len(numbers)-i) * 5 * time.Millisecond
	}

	composites, err := f.svc.AggregateActive(context.Background())
	require.NoError(t, err)
	require.Len(t, composites, len(numbers))
	for i, number := range numbers {
		assert.Equal(t, number, composites[i].Ticket.TicketNumber)
	}
}

func TestAggregateCompletedOneRejectsActiveTicket(t *testing.T) {
	t.Parallel()

	f := newAggregatorFixture(ticketFixture("SVT-00000001", domain.StatusInProgress))

	_, err := f.svc.AggregateCompletedOne(context.Background(), "SVT-00000001")
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestAggregateCompletedOneAcceptsCompletedViewStatuses(t *testing.T) {
	t.Parallel()

	f := newAggregatorFixture(
		ticketFixture("SVT-00000001", domain.StatusReadyForInspection),
		ticketFixture("SVT-00000002", domain.StatusCompleted),
	)

	for _, number := range []string{"SVT-00000001", "SVT-00000002"} {
		composite, err := f.svc.AggregateCompletedOne(context.Background(), number)
		require.NoError(t, err)
		assert.Equal(t, number, composite.Ticket.TicketNumber)
		require.NotNil(t, composite.Billing)
	}
}

func TestAggregateCompletedAttachesLedgersAndBill(t *testing.T) {
	t.Parallel()

	f := newAggregatorFixture(ticketFixture("SVT-00000001", domain.StatusCompleted))
	f.mechanic.byTicket["SVT-00000001"] = []domain.OutsourceMechanicRecord{{
		ID:            7,
		TicketNumber:  "SVT-00000001",
		MechanicName:  "Sam",
		AgreedPayment: decimal.NewFromInt(1000),
	}}
	f.mechanic.payments[7] = []domain.MechanicPayment{
		{ID: 1, MechanicID: 7, Amount: decimal.NewFromInt(400)},
		{ID: 2, MechanicID: 7, Amount: decimal.NewFromInt(400)},
	}
	f.bills.byTicket["SVT-00000001"] = &domain.Bill{
		TicketNumber: "SVT-00000001",
		Subtotal:     decimal.NewFromInt(1500),
		FinalTotal:   decimal.NewFromInt(1650),
		Status:       domain.BillStatusPending,
	}

	composites, err := f.svc.AggregateCompleted(context.Background())
	require.NoError(t, err)
	require.Len(t, composites, 1)

	composite := composites[0]
	require.Len(t, composite.OutsourceMechanics, 1)
	mechanic := composite.OutsourceMechanics[0]
	assert.True(t, mechanic.TotalPaid().Equal(decimal.NewFromInt(800)))
	assert.True(t, mechanic.RemainingBalance().Equal(decimal.NewFromInt(200)))

	require.NotNil(t, composite.Billing)
	assert.True(t, composite.Billing.HasBill)
	assert.True(t, composite.Billing.Subtotal.Equal(decimal.NewFromInt(1500)))
}

func TestAggregateBatchAbortsWhenAnchorListFails(t *testing.T) {
	t.Parallel()

	f := newAggregatorFixture(ticketFixture("SVT-00000001", domain.StatusInProgress))
	f.tickets.listErr = errors.New("connection refused")

	_, err := f.svc.AggregateActive(context.Background())
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "STORAGE_ERROR", domainErr.Code)
}
