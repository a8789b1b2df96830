package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"In Progress", "in progress"},
		{"in-progress", "in progress"},
		{"IN_PROGRESS", "in progress"},
		{"  ready   for  inspection ", "ready for inspection"},
		{"completed", "completed"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanonicalStatus(tc.raw), "raw=%q", tc.raw)
	}
}

func TestParseTicketStatus(t *testing.T) {
	t.Parallel()

	for _, status := range AllStatuses {
		parsed, ok := ParseTicketStatus(string(status))
		assert.True(t, ok, "status %q should parse", status)
		assert.Equal(t, status, parsed)
	}

	_, ok := ParseTicketStatus("exploded")
	assert.False(t, ok)
	_, ok = ParseTicketStatus("")
	assert.False(t, ok)
}

func TestIsUpdatable(t *testing.T) {
	t.Parallel()

	for _, status := range UpdateAllowList {
		assert.True(t, IsUpdatable(status), "status %q should be updatable", status)
	}

	blocked := []TicketStatus{
		StatusAwaitingBill,
		StatusPaymentRequested,
		StatusRequestPayment,
		StatusBilled,
		StatusAwaitingSurvey,
		StatusAwaitingSalvageForm,
	}
	for _, status := range blocked {
		assert.False(t, IsUpdatable(status), "status %q should be blocked", status)
	}
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	assert.True(t, CanTransition(StatusPending, StatusAssigned))
	assert.True(t, CanTransition(StatusInspection, StatusInspectionFailed))
	assert.True(t, CanTransition(StatusInspectionFailed, StatusInProgress))

	assert.False(t, CanTransition(StatusPending, StatusCompleted))
	assert.False(t, CanTransition(StatusCompleted, StatusPending))
	assert.False(t, CanTransition(StatusAwaitingSurvey, StatusInProgress))
}

func TestInCompletedView(t *testing.T) {
	t.Parallel()

	for _, status := range CompletedViewStatuses {
		assert.True(t, InCompletedView(status), "status %q belongs to the completed view", status)
	}

	assert.False(t, InCompletedView(StatusPending))
	assert.False(t, InCompletedView(StatusInProgress))
	assert.False(t, InCompletedView(StatusAwaitingSurvey))
}

func TestBillingEligible(t *testing.T) {
	t.Parallel()

	assert.True(t, BillingEligible(StatusSuccessfulInspection))
	assert.True(t, BillingEligible(StatusAwaitingBill))
	assert.True(t, BillingEligible(StatusCompleted))

	assert.False(t, BillingEligible(StatusPending))
	assert.False(t, BillingEligible(StatusInProgress))
	assert.False(t, BillingEligible(StatusInspectionFailed))
}

func TestParsePartStatus(t *testing.T) {
	t.Parallel()

	status, ok := ParsePartStatus("Returned")
	assert.True(t, ok)
	assert.Equal(t, PartStatusReturned, status)

	_, ok = ParsePartStatus("lost")
	assert.False(t, ok)
}

func TestParseStockStatus(t *testing.T) {
	t.Parallel()

	status, ok := ParseStockStatus("ORDERED")
	assert.True(t, ok)
	assert.Equal(t, StockStatusOrdered, status)

	_, ok = ParseStockStatus("shipped")
	assert.False(t, ok)
}
