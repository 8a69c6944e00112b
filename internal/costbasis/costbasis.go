// Package costbasis computes acquisition-side cost figures shared by the deal calculators.
package costbasis

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RepairCost adds the hedge (contingency percent) on top of the base repair estimate.
func RepairCost(base, hedgePercent float64) float64 {
	return base + base*(hedgePercent/100)
}

// HoldingTimeMonths is the repair period plus the months spent marketing the property.
// Pure-hold strategies pass monthsToSell = 0.
func HoldingTimeMonths(repairPeriod, monthsToSell float64) float64 {
	return repairPeriod + monthsToSell
}

// MonthlySideCost is the monthly insurance + tax + HOA carry.
func MonthlySideCost(insurance, tax, hoa float64) float64 {
	return insurance + tax + hoa
}

// OtherCosts is every non-repair carrying cost for the holding period plus closing.
func OtherCosts(holdingMonths, monthlyHoldingCost, closingCost, monthlyInsurance, monthlyTax, monthlyHOA float64) float64 {
	return holdingMonths*monthlyHoldingCost +
		closingCost +
		holdingMonths*MonthlySideCost(monthlyInsurance, monthlyTax, monthlyHOA)
}

// AllInCost is the sum of every cost bucket including the purchase price.
func AllInCost(repair, other, marketing, selling, purchasePrice float64) float64 {
	return floats.Sum([]float64{repair, other, marketing, selling, purchasePrice})
}

// WholesaleExpenses are the end buyer's estimated expenses that a wholesaler
// deducts from ARV before arriving at an offer.
func WholesaleExpenses(repair, closingCost, monthlyHoldingCost, repairPeriod, marketing, selling float64) float64 {
	return repair + closingCost + monthlyHoldingCost*repairPeriod + marketing + selling
}

// MaxWholesaleOffer is the highest price a wholesaler can contract at while
// leaving both the wholesaler and the end buyer their target profit.
// Profit percentages are fractions of ARV (0.05 == 5%).
func MaxWholesaleOffer(arv, expenses, wholesalerProfitPct, buyerProfitPct float64) float64 {
	if expenses > 0 {
		return arv - expenses - arv*wholesalerProfitPct - arv*buyerProfitPct
	}
	return arv - arv*wholesalerProfitPct - arv*buyerProfitPct
}

// PercentOfARV is amount/arv*100, reported as 0 when the ratio leaves [0,100].
func PercentOfARV(amount, arv float64) float64 {
	return ClampPercent(PercentRatio(amount, arv))
}

// CostPerSqft is only meaningful for a positive square footage.
func CostPerSqft(price, sqft float64) float64 {
	if sqft <= 0 {
		return 0
	}
	return Finite(price / sqft)
}

// Ratio divides num by den, returning 0 for a zero or non-finite denominator
// and for any non-finite result.
func Ratio(num, den float64) float64 {
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0
	}
	return Finite(num / den)
}

// PercentRatio is Ratio * 100.
func PercentRatio(num, den float64) float64 {
	return Ratio(num, den) * 100
}

// ClampPercent passes values in [0,100] through and maps everything else to 0.
func ClampPercent(pct float64) float64 {
	if pct < 0 || pct > 100 || math.IsNaN(pct) {
		return 0
	}
	return pct
}

// Finite maps NaN and ±Inf to 0.
func Finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
