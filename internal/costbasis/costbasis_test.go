package costbasis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairCost(t *testing.T) {
	for _, base := range []float64{0, 1, 12500, 20000} {
		assert.Equal(t, base, RepairCost(base, 0))
		for _, hedge := range []float64{0, 5, 10, 100} {
			assert.GreaterOrEqual(t, RepairCost(base, hedge), base)
		}
	}
	assert.InDelta(t, 22000.0, RepairCost(20000, 10), 1e-9)
}

func TestHoldingAndOtherCosts(t *testing.T) {
	holding := HoldingTimeMonths(4, 2)
	assert.Equal(t, 6.0, holding)
	assert.Equal(t, 4.0, HoldingTimeMonths(4, 0))

	// 6*300 + 2500 + 6*(50+200+25)
	assert.InDelta(t, 1800+2500+1650.0, OtherCosts(holding, 300, 2500, 50, 200, 25), 1e-9)
}

func TestAllInCost(t *testing.T) {
	assert.Equal(t, 15.0, AllInCost(1, 2, 3, 4, 5))
	assert.Equal(t, 0.0, AllInCost(0, 0, 0, 0, 0))
}

func TestMaxWholesaleOffer(t *testing.T) {
	// no expenses: 300000 - 15000 - 30000
	assert.InDelta(t, 255000.0, MaxWholesaleOffer(300000, 0, 0.05, 0.10), 1e-9)
	// with expenses
	assert.InDelta(t, 215000.0, MaxWholesaleOffer(300000, 40000, 0.05, 0.10), 1e-9)
}

func TestPercentOfARV(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		arv      float64
		expected float64
	}{
		{name: "normal", amount: 255000, arv: 300000, expected: 85},
		{name: "over 100 is infeasible", amount: 400000, arv: 300000, expected: 0},
		{name: "negative offer", amount: -1000, arv: 300000, expected: 0},
		{name: "zero arv", amount: 1000, arv: 0, expected: 0},
		{name: "exactly 100", amount: 300000, arv: 300000, expected: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PercentOfARV(tt.amount, tt.arv), 1e-9)
		})
	}
}

func TestRatioGuards(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(10, 0))
	assert.Equal(t, 0.0, Ratio(10, math.NaN()))
	assert.Equal(t, 0.0, Ratio(math.Inf(1), 2))
	assert.Equal(t, -50.0, PercentRatio(-1, 2))
	assert.Equal(t, 0.0, CostPerSqft(150000, 0))
	assert.Equal(t, 100.0, CostPerSqft(150000, 1500))
}
