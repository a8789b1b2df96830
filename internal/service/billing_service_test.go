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

func newBillingFixture(ticketStatus domain.TicketStatus) (*BillingService, *fakeBillRepo) {
	bills := &fakeBillRepo{byTicket: map[string]*domain.Bill{}}
	tickets := newFakeTicketRepo(ticketFixture("SVT-00000001", ticketStatus))
	return NewBillingService(bills, tickets), bills
}

func TestProjectNoBill(t *testing.T) {
	t.Parallel()

	svc, _ := newBillingFixture(domain.StatusCompleted)

	projection, err := svc.Project(context.Background(), "SVT-00000001")
	require.NoError(t, err)
	assert.False(t, projection.HasBill)
	assert.Equal(t, "SVT-00000001", projection.TicketNumber)
	assert.True(t, projection.Subtotal.IsZero())
}

func TestProjectTrustsStoredSubtotal(t *testing.T) {
	t.Parallel()

	svc, bills := newBillingFixture(domain.StatusCompleted)
	bills.byTicket["SVT-00000001"] = &domain.Bill{
		TicketNumber: "SVT-00000001",
		LaborCost:    decimal.NewFromInt(100),
		PartsCost:    decimal.NewFromInt(100),
		Subtotal:     decimal.NewFromInt(999),
		FinalTotal:   decimal.NewFromInt(999),
	}

	projection, err := svc.Project(context.Background(), "SVT-00000001")
	require.NoError(t, err)
	assert.True(t, projection.HasBill)
	// stored subtotal wins even when it disagrees with the components
	assert.True(t, projection.Subtotal.Equal(decimal.NewFromInt(999)))
}

func TestProjectRecomputesZeroSubtotal(t *testing.T) {
	t.Parallel()

	svc, bills := newBillingFixture(domain.StatusCompleted)
	bills.byTicket["SVT-00000001"] = &domain.Bill{
		TicketNumber:        "SVT-00000001",
		LaborCost:           decimal.NewFromInt(200),
		PartsCost:           decimal.NewFromInt(150),
		OutsourcedPartsCost: decimal.NewFromInt(50),
		OutsourcedLaborCost: decimal.NewFromInt(100),
	}

	projection, err := svc.Project(context.Background(), "SVT-00000001")
	require.NoError(t, err)
	assert.True(t, projection.Subtotal.Equal(decimal.NewFromInt(500)))
}

func TestProjectNeverRecomputesTaxOrFinal(t *testing.T) {
	t.Parallel()

	svc, bills := newBillingFixture(domain.StatusCompleted)
	bills.byTicket["SVT-00000001"] = &domain.Bill{
		TicketNumber: "SVT-00000001",
		Subtotal:     decimal.NewFromInt(1000),
		TaxRate:      decimal.NewFromFloat(0.07),
		TaxAmount:    decimal.NewFromInt(12),
		Discount:     decimal.NewFromInt(5),
		FinalTotal:   decimal.NewFromInt(42),
	}

	projection, err := svc.Project(context.Background(), "SVT-00000001")
	require.NoError(t, err)
	assert.True(t, projection.TaxAmount.Equal(decimal.NewFromInt(12)))
	assert.True(t, projection.FinalTotal.Equal(decimal.NewFromInt(42)))
}

func TestSaveBillRejectsIneligibleTicket(t *testing.T) {
	t.Parallel()

	svc, _ := newBillingFixture(domain.StatusInProgress)

	_, err := svc.SaveBill(context.Background(), BillInput{TicketNumber: "SVT-00000001"})
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestSaveBillDefaultsStatusPending(t *testing.T) {
	t.Parallel()

	svc, bills := newBillingFixture(domain.StatusAwaitingBill)

	bill, err := svc.SaveBill(context.Background(), BillInput{
		TicketNumber: "SVT-00000001",
		Subtotal:     decimal.NewFromInt(300),
		FinalTotal:   decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BillStatusPending, bill.Status)

	stored, found, err := bills.GetByTicket(context.Background(), "SVT-00000001")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, stored.Subtotal.Equal(decimal.NewFromInt(300)))
}

func TestSaveBillUnknownTicket(t *testing.T) {
	t.Parallel()

	svc, _ := newBillingFixture(domain.StatusCompleted)

	_, err := svc.SaveBill(context.Background(), BillInput{TicketNumber: "SVT-MISSING1"})
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
