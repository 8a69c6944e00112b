package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "zero", input: 0, expected: "$0.00"},
		{name: "small", input: 12.5, expected: "$12.50"},
		{name: "thousands", input: 1234.567, expected: "$1,234.57"},
		{name: "millions", input: 1234567.891, expected: "$1,234,567.89"},
		{name: "exact group boundary", input: 100000, expected: "$100,000.00"},
		{name: "negative", input: -15000.25, expected: "-$15,000.25"},
		{name: "nan", input: math.NaN(), expected: "$0.00"},
		{name: "infinity", input: math.Inf(-1), expected: "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatUSD(tt.input))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "11.11%", FormatPercent(100.0/9.0))
	assert.Equal(t, "-5.00%", FormatPercent(-5))
	assert.Equal(t, "0.00%", FormatPercent(math.NaN()))
}

func TestFormatMonths(t *testing.T) {
	assert.Equal(t, "6 months", FormatMonths(6))
	assert.Equal(t, "4.5 months", FormatMonths(4.5))
}

func TestDealResultFlatten(t *testing.T) {
	r := DealResult{Items: []LineItem{
		{Key: "net_profit", Kind: KindCurrency, Value: 15000},
		{Key: "roi", Kind: KindPercent, Value: 11.111},
	}}

	assert.Equal(t, map[string]float64{"net_profit": 15000, "roi": 11.111}, r.Values())
	assert.Equal(t, map[string]string{"net_profit": "$15,000.00", "roi": "11.11%"}, r.Formatted())
	assert.Equal(t, 0.0, r.Value("missing"))
}

func TestSanitize(t *testing.T) {
	b := BuyAssumptions{ARV: math.NaN(), HedgeExpense: 150, RepairCost: math.Inf(1)}.Sanitize()
	assert.Equal(t, 0.0, b.ARV)
	assert.Equal(t, 100.0, b.HedgeExpense)
	assert.Equal(t, 0.0, b.RepairCost)

	s := SellAssumptions{PercentVacant: -3, WholesaleProfit: math.NaN()}.Sanitize()
	assert.Equal(t, 0.0, s.PercentVacant)
	assert.Equal(t, 0.0, s.WholesaleProfit)
}

func TestParseStrategies(t *testing.T) {
	b, err := ParseBuyStrategy(" Seller ")
	assert.NoError(t, err)
	assert.Equal(t, BuySeller, b)

	s, err := ParseSellStrategy("purchase")
	assert.NoError(t, err)
	assert.Equal(t, SellFlip, s)

	_, err = ParseSellStrategy("barter")
	assert.Error(t, err)
}
