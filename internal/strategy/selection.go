package strategy

import (
	"fmt"

	"deal-analyzer/internal/model"
)

// Selection tracks the buy/sell choice of one analysis.
// States: buy in {none, wholesaling, purchase, lease, seller}; sell is only ever
// none or a strategy permitted for the current buy.
type Selection struct {
	Buy  model.BuyStrategy  `json:"buy"`
	Sell model.SellStrategy `json:"sell"`
}

// NewSelection starts with nothing selected.
func NewSelection() Selection {
	return Selection{Buy: model.BuyNone, Sell: model.SellNone}
}

// SelectBuy switches the buy strategy. Any sell choice is cleared, even when
// the same buy strategy is selected again.
func (s *Selection) SelectBuy(buy model.BuyStrategy) error {
	if buy != model.BuyNone {
		if _, ok := permitted[buy]; !ok {
			return fmt.Errorf("%w: buy %q", ErrUnknownStrategy, buy)
		}
	}
	s.Buy = buy
	s.Sell = model.SellNone
	return nil
}

// SelectSell applies sell when it is permitted for the current buy strategy and
// reports whether it was applied. Selecting none always succeeds.
func (s *Selection) SelectSell(sell model.SellStrategy) bool {
	if sell == model.SellNone {
		s.Sell = model.SellNone
		return true
	}
	if !Compatible(s.Buy, sell) {
		return false
	}
	s.Sell = sell
	return true
}

// Complete reports whether both sides are chosen.
func (s Selection) Complete() bool {
	return s.Buy != model.BuyNone && s.Sell != model.SellNone
}

func (s Selection) Pair() Pair {
	return Pair{Buy: s.Buy, Sell: s.Sell}
}
