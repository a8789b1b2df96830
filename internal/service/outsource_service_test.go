package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/pkg/util"
)

func newOutsourceFixture() (*OutsourceService, *fakeMechanicRepo) {
	mechanics := &fakeMechanicRepo{
		byTicket: map[string][]domain.OutsourceMechanicRecord{},
		payments: map[int64][]domain.MechanicPayment{},
	}
	stock := &fakeStockRepo{byTicket: map[string][]domain.OutsourceStockItem{}}
	tickets := newFakeTicketRepo(ticketFixture("SVT-00000001", domain.StatusInProgress))
	return NewOutsourceService(stock, mechanics, tickets), mechanics
}

func TestAddPaymentRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	svc, mechanics := newOutsourceFixture()
	mechanics.byTicket["SVT-00000001"] = []domain.OutsourceMechanicRecord{{
		ID:            1,
		TicketNumber:  "SVT-00000001",
		MechanicName:  "Sam",
		AgreedPayment: decimal.NewFromInt(500),
	}}

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := svc.AddPayment(context.Background(), 1, PaymentInput{Amount: amount})
		var domainErr *util.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	}
}

func TestAddPaymentRefreshesLedger(t *testing.T) {
	t.Parallel()

	svc, mechanics := newOutsourceFixture()
	mechanics.byTicket["SVT-00000001"] = []domain.OutsourceMechanicRecord{{
		ID:            1,
		TicketNumber:  "SVT-00000001",
		MechanicName:  "Sam",
		AgreedPayment: decimal.NewFromInt(1000),
	}}

	record, err := svc.AddPayment(context.Background(), 1, PaymentInput{Amount: decimal.NewFromInt(400)})
	require.NoError(t, err)
	require.Len(t, record.Payments, 1)

	record, err = svc.AddPayment(context.Background(), 1, PaymentInput{Amount: decimal.NewFromInt(400)})
	require.NoError(t, err)
	require.Len(t, record.Payments, 2)
	assert.True(t, record.TotalPaid().Equal(decimal.NewFromInt(800)))
	assert.True(t, record.RemainingBalance().Equal(decimal.NewFromInt(200)))
}

func TestAddPaymentUnknownMechanic(t *testing.T) {
	t.Parallel()

	svc, _ := newOutsourceFixture()

	_, err := svc.AddPayment(context.Background(), 42, PaymentInput{Amount: decimal.NewFromInt(10)})
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestCreateStockItemDefaultsToRequested(t *testing.T) {
	t.Parallel()

	svc, _ := newOutsourceFixture()

	item, err := svc.CreateStockItem(context.Background(), StockItemInput{
		TicketNumber: "SVT-00000001",
		Name:         "headlight assembly",
		Quantity:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StockStatusRequested, item.Status)
}

func TestCreateStockItemRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newOutsourceFixture()

	_, err := svc.CreateStockItem(context.Background(), StockItemInput{
		TicketNumber: "SVT-00000001",
		Name:         "headlight assembly",
		Status:       "lost in transit",
	})
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATUS", domainErr.Code)
}
