package strategy

import (
	"deal-analyzer/internal/model"
)

var ErrUnknownStrategy = model.ErrUnknownStrategy

// permitted lists, per buy strategy, the sell strategies that make sense.
// A lease-optioned or seller-financed property cannot be wholesaled, and a
// wholesale contract can only be assigned.
var permitted = map[model.BuyStrategy][]model.SellStrategy{
	model.BuyWholesaling: {model.SellWholesaling},
	model.BuyPurchase:    {model.SellWholesaling, model.SellFlip, model.SellRent, model.SellLease, model.SellSeller},
	model.BuyLease:       {model.SellFlip, model.SellRent, model.SellLease, model.SellSeller},
	model.BuySeller:      {model.SellFlip, model.SellRent, model.SellLease, model.SellSeller},
}

// AllowedSells returns the sell strategies selectable after choosing buy.
// The returned slice is a copy.
func AllowedSells(buy model.BuyStrategy) []model.SellStrategy {
	src := permitted[buy]
	out := make([]model.SellStrategy, len(src))
	copy(out, src)
	return out
}

// Compatible reports whether (buy, sell) is a permitted pairing.
func Compatible(buy model.BuyStrategy, sell model.SellStrategy) bool {
	for _, s := range permitted[buy] {
		if s == sell {
			return true
		}
	}
	return false
}

// Pair is a (buy, sell) strategy combination.
type Pair struct {
	Buy  model.BuyStrategy  `json:"buy"`
	Sell model.SellStrategy `json:"sell"`
}

// Pairs enumerates every permitted combination in a stable order.
func Pairs() []Pair {
	var out []Pair
	for _, b := range model.BuyStrategies {
		for _, s := range permitted[b] {
			out = append(out, Pair{Buy: b, Sell: s})
		}
	}
	return out
}

// MatrixRow is one row of the compatibility matrix, for presenters that render
// every sell option and disable the incompatible ones.
type MatrixRow struct {
	Buy     model.BuyStrategy           `json:"buy"`
	Label   string                      `json:"label"`
	Enabled map[model.SellStrategy]bool `json:"enabled"`
}

// Matrix returns the full buy x sell grid.
func Matrix() []MatrixRow {
	rows := make([]MatrixRow, 0, len(model.BuyStrategies))
	for _, b := range model.BuyStrategies {
		row := MatrixRow{Buy: b, Label: b.Label(), Enabled: map[model.SellStrategy]bool{}}
		for _, s := range model.SellStrategies {
			row.Enabled[s] = Compatible(b, s)
		}
		rows = append(rows, row)
	}
	return rows
}
