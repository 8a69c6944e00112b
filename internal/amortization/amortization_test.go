package amortization

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     float64
		expected  float64
	}{
		{name: "30y textbook mortgage", principal: 200000, rate: 6, years: 30, expected: 1199.10},
		{name: "seller finance 15y", principal: 90000, rate: 7, years: 15, expected: 808.95},
		{name: "zero rate", principal: 90000, rate: 0, years: 15, expected: 0},
		{name: "zero term", principal: 90000, rate: 7, years: 0, expected: 0},
		{name: "zero principal", principal: 0, rate: 7, years: 15, expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(tt.principal, tt.rate, tt.years)
			assert.InDelta(t, tt.expected, got, 0.05)
			assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
		})
	}
}

func TestRemainingBalanceSellerFinance(t *testing.T) {
	principal := 100000.0 - 10000.0
	payment := MonthlyPayment(principal, 7, 15)

	bal := RemainingBalance(principal, payment, 7, 12)
	assert.Less(t, bal, principal)
	assert.Greater(t, bal, 0.0)
}

func TestRemainingBalanceMonotonic(t *testing.T) {
	principal := 150000.0
	payment := MonthlyPayment(principal, 5, 10)

	prev := principal
	for m := 1; m <= 130; m++ {
		bal := RemainingBalance(principal, payment, 5, m)
		assert.GreaterOrEqual(t, bal, 0.0, "month %d", m)
		assert.LessOrEqual(t, bal, prev, "month %d", m)
		prev = bal
	}
	assert.Equal(t, 0.0, RemainingBalance(principal, payment, 5, 125))
}

func TestRemainingBalanceClampsOverpayment(t *testing.T) {
	assert.Equal(t, 0.0, RemainingBalance(1000, 5000, 6, 3))
	assert.Equal(t, 1000.0, RemainingBalance(1000, 50, 6, 0))
}

func TestTrajectoryIsIndependentPerCall(t *testing.T) {
	a := Trajectory(50000, 600, 6, 6)
	b := Trajectory(50000, 600, 6, 12)
	require.Len(t, a, 6)
	require.Len(t, b, 12)
	assert.Equal(t, a, b[:6])
	assert.Equal(t, RemainingBalance(50000, 600, 6, 6), a[5])
}

func TestInterestPaid(t *testing.T) {
	principal := 90000.0
	payment := MonthlyPayment(principal, 7, 15)
	interest := InterestPaid(principal, payment, 7, 12)
	bal := RemainingBalance(principal, payment, 7, 12)

	// principal reduction + interest == payments made
	assert.InDelta(t, TotalPaid(payment, 12), (principal-bal)+interest, 1e-6)
}

func TestMonths(t *testing.T) {
	assert.Equal(t, 0, Months(-2))
	assert.Equal(t, 0, Months(math.NaN()))
	assert.Equal(t, 5, Months(4.2))
	assert.Equal(t, 6, Months(6))
	assert.Equal(t, MaxMonths, Months(1e9))
}
