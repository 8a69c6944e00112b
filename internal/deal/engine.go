// Package deal turns buy/sell assumptions into a DealResult, one calculator per
// permitted strategy pair.
package deal

import (
	"deal-analyzer/internal/model"
	"deal-analyzer/internal/strategy"
)

// DefaultClosingCostMultiplier inflates the seller-finance/seller-finance
// expense total to approximate closing costs on both notes.
const DefaultClosingCostMultiplier = 1.0675

// Options are the engine's modelling knobs. The zero value is not useful; use DefaultOptions.
type Options struct {
	// ClosingCostMultiplier is applied to the expense total of deals that end in
	// a seller-financed note to a downstream buyer.
	ClosingCostMultiplier float64 `yaml:"closing_cost_multiplier"`
	// ReceivedTermFromSellLeg counts the downstream buyer's payments over the
	// sell-side amortization term instead of the buy-side term in the
	// seller-finance/seller-finance calculator.
	ReceivedTermFromSellLeg bool `yaml:"received_term_from_sell_leg"`
}

func DefaultOptions() Options {
	return Options{ClosingCostMultiplier: DefaultClosingCostMultiplier}
}

type input struct {
	buy  model.BuyAssumptions
	sell model.SellAssumptions
	opts Options
}

type calculator func(in input) model.DealResult

var calculators = map[strategy.Pair]calculator{
	{Buy: model.BuyWholesaling, Sell: model.SellWholesaling}: wholesaleDeal,

	{Buy: model.BuyPurchase, Sell: model.SellWholesaling}: wholesaleDeal,
	{Buy: model.BuyPurchase, Sell: model.SellFlip}:        purchaseFlip,
	{Buy: model.BuyPurchase, Sell: model.SellRent}:        purchaseRent,
	{Buy: model.BuyPurchase, Sell: model.SellLease}:       purchaseLease,
	{Buy: model.BuyPurchase, Sell: model.SellSeller}:      purchaseSellerFinance,

	{Buy: model.BuyLease, Sell: model.SellFlip}:   leaseFlip,
	{Buy: model.BuyLease, Sell: model.SellRent}:   leaseRent,
	{Buy: model.BuyLease, Sell: model.SellLease}:  leaseLease,
	{Buy: model.BuyLease, Sell: model.SellSeller}: leaseSellerFinance,

	{Buy: model.BuySeller, Sell: model.SellFlip}:   sellerFlip,
	{Buy: model.BuySeller, Sell: model.SellRent}:   sellerRent,
	{Buy: model.BuySeller, Sell: model.SellLease}:  sellerLease,
	{Buy: model.BuySeller, Sell: model.SellSeller}: sellerSellerFinance,
}

// Engine is stateless apart from its options and safe for concurrent use.
type Engine struct {
	opts Options
}

func New(opts Options) *Engine {
	if opts.ClosingCostMultiplier <= 0 {
		opts.ClosingCostMultiplier = DefaultClosingCostMultiplier
	}
	return &Engine{opts: opts}
}

func (e *Engine) Options() Options { return e.opts }

// Supports reports whether a calculator exists for the pair.
func Supports(buy model.BuyStrategy, sell model.SellStrategy) bool {
	_, ok := calculators[strategy.Pair{Buy: buy, Sell: sell}]
	return ok
}

// Compute evaluates a deal. It never fails: inputs are sanitized first and an
// incompatible pair yields a zero result with Compatible=false.
func (e *Engine) Compute(buy model.BuyStrategy, sell model.SellStrategy, b model.BuyAssumptions, s model.SellAssumptions) model.DealResult {
	calc, ok := calculators[strategy.Pair{Buy: buy, Sell: sell}]
	if !ok || !strategy.Compatible(buy, sell) {
		return model.DealResult{Buy: buy, Sell: sell, Compatible: false, Items: []model.LineItem{}}
	}
	b.Strategy = buy
	s.Strategy = sell
	res := calc(input{buy: b.Sanitize(), sell: s.Sanitize(), opts: e.opts})
	res.Buy = buy
	res.Sell = sell
	res.Compatible = true
	return res
}
