// Package amortization holds fixed-rate loan math shared by every seller-finance calculator.
package amortization

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MonthlyRate converts an annual percentage rate into a monthly fraction (rate/1200).
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 1200
}

// MonthlyPayment is the level payment that amortizes principal over termYears.
//
//	payment = principal * r / (1 - (1+r)^(-n)),  r = rate/1200, n = termYears*12
//
// Returns 0 when r == 0 or n == 0, and whenever the formula would not produce a
// finite number.
func MonthlyPayment(principal, annualRatePercent, termYears float64) float64 {
	r := MonthlyRate(annualRatePercent)
	n := termYears * 12
	if r == 0 || n == 0 {
		return 0
	}
	p := principal * r / (1 - math.Pow(1+r, -n))
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}

// RemainingBalance projects the outstanding balance after months payments.
// The balance is clamped to 0 the first time it reaches zero or below.
func RemainingBalance(principal, payment, annualRatePercent float64, months int) float64 {
	traj := Trajectory(principal, payment, annualRatePercent, months)
	if len(traj) == 0 {
		return math.Max(principal, 0)
	}
	return traj[len(traj)-1]
}

// Trajectory returns the balance after each month, len == months.
// Each call starts from principal; nothing is shared between calls.
func Trajectory(principal, payment, annualRatePercent float64, months int) []float64 {
	if months <= 0 {
		return nil
	}
	if months > MaxMonths {
		months = MaxMonths
	}
	r := MonthlyRate(annualRatePercent)
	out := make([]float64, months)
	balance := principal
	for i := 0; i < months; i++ {
		if balance > 0 {
			balance = balance*(1+r) - payment
		}
		if balance <= 0 || math.IsNaN(balance) {
			balance = 0
		}
		out[i] = balance
	}
	return out
}

// TotalPaid is payment * months, 0 for non-positive months.
func TotalPaid(payment float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	return payment * float64(months)
}

// InterestPaid is the interest portion of the first months payments.
func InterestPaid(principal, payment, annualRatePercent float64, months int) float64 {
	traj := Trajectory(principal, payment, annualRatePercent, months)
	if len(traj) == 0 {
		return 0
	}
	r := MonthlyRate(annualRatePercent)
	interest := make([]float64, len(traj))
	prev := principal
	for i, bal := range traj {
		if prev > 0 {
			interest[i] = prev * r
		}
		prev = bal
	}
	return floats.Sum(interest)
}

// MaxMonths bounds projections; 100 years is well past any amortization term.
const MaxMonths = 1200

// Months converts a (possibly fractional) month count from user input into a
// whole number of payment periods, rounding up partial months.
func Months(x float64) int {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= MaxMonths {
		return MaxMonths
	}
	return int(math.Ceil(x))
}
