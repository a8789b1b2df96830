package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func money(v int64) Money {
	return decimal.NewFromInt(v)
}

func TestMechanicLedgerBalances(t *testing.T) {
	t.Parallel()

	record := OutsourceMechanicRecord{
		AgreedPayment: money(1000),
		Payments: []MechanicPayment{
			{Amount: money(400)},
			{Amount: money(400)},
		},
	}

	assert.True(t, record.TotalPaid().Equal(money(800)))
	assert.True(t, record.RemainingBalance().Equal(money(200)))
	assert.True(t, record.RawBalance().Equal(money(200)))
}

func TestMechanicLedgerOverpaymentClampsToZero(t *testing.T) {
	t.Parallel()

	record := OutsourceMechanicRecord{
		AgreedPayment: money(500),
		Payments: []MechanicPayment{
			{Amount: money(300)},
			{Amount: money(300)},
		},
	}

	assert.True(t, record.RemainingBalance().IsZero())
	assert.True(t, record.RawBalance().IsNegative())
	assert.True(t, record.RawBalance().Equal(money(-100)))
}

func TestMechanicLedgerEmpty(t *testing.T) {
	t.Parallel()

	record := OutsourceMechanicRecord{AgreedPayment: money(750)}

	assert.True(t, record.TotalPaid().IsZero())
	assert.True(t, record.RemainingBalance().Equal(money(750)))
}
