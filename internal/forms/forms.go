// Package forms owns the per-strategy shape of the assumption records: which
// fields a strategy recognizes, how raw user input is coerced into them, and
// how a property's baseline attributes are copied in.
package forms

import (
	"errors"
	"fmt"

	"deal-analyzer/internal/model"
)

var ErrUnknownField = errors.New("unknown field")

type buyAccessor func(*model.BuyAssumptions) *float64
type sellAccessor func(*model.SellAssumptions) *float64

var buyRegistry = map[string]buyAccessor{
	"arv":                func(b *model.BuyAssumptions) *float64 { return &b.ARV },
	"estPurchasePrice":   func(b *model.BuyAssumptions) *float64 { return &b.EstPurchasePrice },
	"propSqft":           func(b *model.BuyAssumptions) *float64 { return &b.PropSqft },
	"repairCost":         func(b *model.BuyAssumptions) *float64 { return &b.RepairCost },
	"hedgeExpense":       func(b *model.BuyAssumptions) *float64 { return &b.HedgeExpense },
	"repairPeriod":       func(b *model.BuyAssumptions) *float64 { return &b.RepairPeriod },
	"monthlyHoldingCost": func(b *model.BuyAssumptions) *float64 { return &b.MonthlyHoldingCost },
	"closingCost":        func(b *model.BuyAssumptions) *float64 { return &b.ClosingCost },
	"propertyInsurance":  func(b *model.BuyAssumptions) *float64 { return &b.PropertyInsurance },
	"propertyTax":        func(b *model.BuyAssumptions) *float64 { return &b.PropertyTax },
	"hoa":                func(b *model.BuyAssumptions) *float64 { return &b.HOA },
	"marketingCost":      func(b *model.BuyAssumptions) *float64 { return &b.MarketingCost },
	"sellingCost":        func(b *model.BuyAssumptions) *float64 { return &b.SellingCost },
	"loanAmount":         func(b *model.BuyAssumptions) *float64 { return &b.LoanAmount },
	"downPayment":        func(b *model.BuyAssumptions) *float64 { return &b.DownPayment },
	"interestRate":       func(b *model.BuyAssumptions) *float64 { return &b.InterestRate },
	"amortizationTerm":   func(b *model.BuyAssumptions) *float64 { return &b.AmortizationTerm },
	"balloonTerm":        func(b *model.BuyAssumptions) *float64 { return &b.BalloonTerm },
	"salesPrice":         func(b *model.BuyAssumptions) *float64 { return &b.SalesPrice },
	"optionPayment":      func(b *model.BuyAssumptions) *float64 { return &b.OptionPayment },
	"monthlyRental":      func(b *model.BuyAssumptions) *float64 { return &b.MonthlyRental },
	"monthlyCredit":      func(b *model.BuyAssumptions) *float64 { return &b.MonthlyCredit },
	"leaseTerm":          func(b *model.BuyAssumptions) *float64 { return &b.LeaseTerm },
}

var sellRegistry = map[string]sellAccessor{
	"wholesaleProfit":     func(s *model.SellAssumptions) *float64 { return &s.WholesaleProfit },
	"buyerProfit":         func(s *model.SellAssumptions) *float64 { return &s.BuyerProfit },
	"askingPrice":         func(s *model.SellAssumptions) *float64 { return &s.AskingPrice },
	"monthsToSell":        func(s *model.SellAssumptions) *float64 { return &s.MonthsToSell },
	"marketingCost":       func(s *model.SellAssumptions) *float64 { return &s.MarketingCost },
	"sellingCost":         func(s *model.SellAssumptions) *float64 { return &s.SellingCost },
	"monthlyHoldingCost":  func(s *model.SellAssumptions) *float64 { return &s.MonthlyHoldingCost },
	"estimatedRepairCost": func(s *model.SellAssumptions) *float64 { return &s.EstimatedRepairCost },
	"monthlyOperating":    func(s *model.SellAssumptions) *float64 { return &s.MonthlyOperating },
	"percentVacant":       func(s *model.SellAssumptions) *float64 { return &s.PercentVacant },
	"monthlyOpCost":       func(s *model.SellAssumptions) *float64 { return &s.MonthlyOpCost },
	"rentalHolding":       func(s *model.SellAssumptions) *float64 { return &s.RentalHolding },
	"salesPrice":          func(s *model.SellAssumptions) *float64 { return &s.SalesPrice },
	"optionPayment":       func(s *model.SellAssumptions) *float64 { return &s.OptionPayment },
	"monthlyRental":       func(s *model.SellAssumptions) *float64 { return &s.MonthlyRental },
	"monthlyCredits":      func(s *model.SellAssumptions) *float64 { return &s.MonthlyCredits },
	"optionTerm":          func(s *model.SellAssumptions) *float64 { return &s.OptionTerm },
	"loanAmount":          func(s *model.SellAssumptions) *float64 { return &s.LoanAmount },
	"downPayment":         func(s *model.SellAssumptions) *float64 { return &s.DownPayment },
	"interestRate":        func(s *model.SellAssumptions) *float64 { return &s.InterestRate },
	"amortizationTerm":    func(s *model.SellAssumptions) *float64 { return &s.AmortizationTerm },
	"balloonTerm":         func(s *model.SellAssumptions) *float64 { return &s.BalloonTerm },
	"propertyInsurance":   func(s *model.SellAssumptions) *float64 { return &s.PropertyInsurance },
	"propertyTax":         func(s *model.SellAssumptions) *float64 { return &s.PropertyTax },
	"hoa":                 func(s *model.SellAssumptions) *float64 { return &s.HOA },
}

var purchaseFields = []string{
	"arv", "estPurchasePrice", "propSqft", "repairCost", "hedgeExpense", "repairPeriod",
	"monthlyHoldingCost", "closingCost", "propertyInsurance", "propertyTax", "hoa",
}

var buyShapes = map[model.BuyStrategy][]string{
	model.BuyWholesaling: {
		"arv", "repairCost", "hedgeExpense", "closingCost", "monthlyHoldingCost",
		"repairPeriod", "marketingCost", "sellingCost",
	},
	model.BuyPurchase: purchaseFields,
	model.BuyLease:    {"salesPrice", "optionPayment", "monthlyRental", "monthlyCredit", "leaseTerm"},
	model.BuySeller: append(append([]string{}, purchaseFields...),
		"loanAmount", "downPayment", "interestRate", "amortizationTerm", "balloonTerm"),
}

var sellShapes = map[model.SellStrategy][]string{
	model.SellWholesaling: {"wholesaleProfit", "buyerProfit"},
	model.SellFlip:        {"askingPrice", "monthsToSell", "marketingCost", "sellingCost"},
	model.SellRent:        {"monthlyOperating", "percentVacant", "monthlyOpCost"},
	model.SellLease:       {"salesPrice", "optionPayment", "monthlyRental", "monthlyCredits", "optionTerm"},
	model.SellSeller: {
		"salesPrice", "monthsToSell", "loanAmount", "downPayment", "interestRate",
		"amortizationTerm", "balloonTerm", "propertyInsurance", "propertyTax", "hoa",
	},
}

// Empty returns a fresh record for buy with every field zeroed.
func Empty(buy model.BuyStrategy) model.BuyAssumptions {
	return model.BuyAssumptions{Strategy: buy}
}

func EmptySell(sell model.SellStrategy) model.SellAssumptions {
	return model.SellAssumptions{Strategy: sell}
}

// BuyFields lists the fields buy recognizes in display order. None has no fields.
func BuyFields(buy model.BuyStrategy) []string {
	return append([]string(nil), buyShapes[buy]...)
}

// SellFields lists the fields a sell strategy recognizes. A lease-option buy
// has no rehab or carry of its own, so its flip and rent legs carry extra
// fields for those costs.
func SellFields(buy model.BuyStrategy, sell model.SellStrategy) []string {
	out := append([]string(nil), sellShapes[sell]...)
	if buy == model.BuyLease {
		switch sell {
		case model.SellFlip:
			out = append(out, "monthlyHoldingCost", "estimatedRepairCost")
		case model.SellRent:
			out = append(out, "rentalHolding")
		}
	}
	return out
}

func contains(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

// UpdateField coerces value and stores it in the named field of b. The field
// must be part of b.Strategy's shape.
func UpdateField(b *model.BuyAssumptions, name string, value any) error {
	acc, ok := buyRegistry[name]
	if !ok || !contains(buyShapes[b.Strategy], name) {
		return fmt.Errorf("%w: %q for %s buy", ErrUnknownField, name, b.Strategy)
	}
	*acc(b) = ParseNumber(value)
	return nil
}

// UpdateSellField is UpdateField for the sell record; buy selects the variant shape.
func UpdateSellField(buy model.BuyStrategy, s *model.SellAssumptions, name string, value any) error {
	acc, ok := sellRegistry[name]
	if !ok || !contains(SellFields(buy, s.Strategy), name) {
		return fmt.Errorf("%w: %q for %s sell", ErrUnknownField, name, s.Strategy)
	}
	*acc(s) = ParseNumber(value)
	return nil
}

// ApplyFields validates every name before writing, so either all fields are
// updated or none are.
func ApplyFields(b *model.BuyAssumptions, values map[string]any) error {
	next := *b
	for name, v := range values {
		if err := UpdateField(&next, name, v); err != nil {
			return err
		}
	}
	*b = next
	return nil
}

func ApplySellFields(buy model.BuyStrategy, s *model.SellAssumptions, values map[string]any) error {
	next := *s
	for name, v := range values {
		if err := UpdateSellField(buy, &next, name, v); err != nil {
			return err
		}
	}
	*s = next
	return nil
}

// BuyValues returns the recognized fields of b and their values.
func BuyValues(b model.BuyAssumptions) map[string]float64 {
	fields := buyShapes[b.Strategy]
	out := make(map[string]float64, len(fields))
	for _, name := range fields {
		out[name] = *buyRegistry[name](&b)
	}
	return out
}

func SellValues(buy model.BuyStrategy, s model.SellAssumptions) map[string]float64 {
	fields := SellFields(buy, s.Strategy)
	out := make(map[string]float64, len(fields))
	for _, name := range fields {
		out[name] = *sellRegistry[name](&s)
	}
	return out
}
