package deal

import (
	"math"

	"deal-analyzer/internal/amortization"
	"deal-analyzer/internal/model"
)

// newLoan sizes a fixed-rate note and projects its balance over holdingMonths.
// A down payment larger than the loan amount leaves nothing to finance.
func newLoan(principal, ratePct, termYears, balloonYears, holdingMonths float64) *model.LoanState {
	principal = math.Max(principal, 0)
	payment := amortization.MonthlyPayment(principal, ratePct, termYears)
	held := amortization.Months(holdingMonths)
	traj := amortization.Trajectory(principal, payment, ratePct, held)

	ls := &model.LoanState{
		Principal:      principal,
		AnnualRate:     ratePct,
		TermYears:      termYears,
		MonthlyPayment: payment,
		HoldingMonths:  held,
		BalanceAtSale:  amortization.RemainingBalance(principal, payment, ratePct, held),
		Trajectory:     traj,
	}
	if bm := amortization.Months(balloonYears * 12); bm > 0 {
		ls.BalloonMonths = bm
		ls.BalloonBalance = amortization.RemainingBalance(principal, payment, ratePct, bm)
	}
	return ls
}

// buyLoan is the note assumed from the upstream seller.
func buyLoan(b model.BuyAssumptions, holdingMonths float64) *model.LoanState {
	return newLoan(b.FinancedPrincipal(), b.InterestRate, b.AmortizationTerm, b.BalloonTerm, holdingMonths)
}

// sellLoan is the note extended to the downstream buyer; it starts at closing,
// so no holding period applies.
func sellLoan(s model.SellAssumptions) *model.LoanState {
	return newLoan(s.FinancedPrincipal(), s.InterestRate, s.AmortizationTerm, s.BalloonTerm, 0)
}

// noteReceipts is the down payment plus every scheduled payment over termYears.
func noteReceipts(down, payment, termYears float64) float64 {
	return down + amortization.TotalPaid(payment, amortization.Months(termYears*12))
}

// addNoteItems appends the standard rows describing a seller-finance note.
// prefix namespaces the keys ("buy" or "sell").
func addNoteItems(bd *breakdown, prefix, party string, price float64, ln *model.LoanState, side float64) {
	if price != 0 {
		bd.money(prefix+"_sales_price", party+" Sales Price", price)
	}
	bd.money(prefix+"_financed_principal", party+" Financed Principal", ln.Principal)
	bd.money(prefix+"_monthly_payment", party+" Monthly Payment (P&I)", ln.MonthlyPayment)
	bd.money(prefix+"_monthly_side_costs", party+" Insurance, Tax & HOA", side)
	bd.money(prefix+"_total_monthly_payment", party+" Total Monthly Payment", ln.MonthlyPayment+side)
	if ln.BalloonMonths > 0 {
		bd.months(prefix+"_balloon_months", party+" Balloon Due", float64(ln.BalloonMonths))
		bd.money(prefix+"_balloon_balance", party+" Balloon Balance", ln.BalloonBalance)
	}
}

// Amortize sizes a standalone note and projects it over months payments.
func Amortize(principal, ratePct, termYears, balloonYears float64, months int) *model.LoanState {
	return newLoan(principal, ratePct, termYears, balloonYears, float64(months))
}
