package deal

import (
	"deal-analyzer/internal/amortization"
	"deal-analyzer/internal/costbasis"
	"deal-analyzer/internal/model"
)

// sellerFlip takes over seller financing, rehabs and resells, paying off the
// note's remaining balance at closing.
func sellerFlip(in input) model.DealResult {
	b, s := in.buy, in.sell

	repair := costbasis.RepairCost(b.RepairCost, b.HedgeExpense)
	holding := costbasis.HoldingTimeMonths(b.RepairPeriod, s.MonthsToSell)
	other := costbasis.OtherCosts(holding, b.MonthlyHoldingCost, b.ClosingCost, b.PropertyInsurance, b.PropertyTax, b.HOA)
	loan := buyLoan(b, holding)

	loanPayments := loan.MonthlyPayment * float64(loan.HoldingMonths)
	allCost := costbasis.AllInCost(repair, other, s.MarketingCost, s.SellingCost, b.EstPurchasePrice)
	cash := b.DownPayment + loanPayments + allCost - b.EstPurchasePrice - s.SellingCost
	payoff := loan.BalanceAtSale + cash
	profit := s.AskingPrice - (payoff + s.SellingCost)

	var bd breakdown
	bd.money("purchase_price", "Purchase Price", b.EstPurchasePrice)
	addNoteItems(&bd, "buy", "Seller", 0, loan, b.MonthlySideCost())
	bd.money("repair_cost", "Repair Cost (with hedge)", repair)
	bd.months("holding_time", "Holding Time", holding)
	bd.money("other_costs", "Holding, Closing & Carry Costs", other)
	bd.money("loan_payments", "Loan Payments While Holding", loanPayments)
	bd.money("marketing_cost", "Marketing Cost", s.MarketingCost)
	bd.money("cash_required", "Cash Required", cash)
	bd.money("balance_at_sale", "Loan Balance at Sale", loan.BalanceAtSale)
	bd.money("asking_price", "Asking Price", s.AskingPrice)
	bd.money("selling_cost", "Selling Cost", s.SellingCost)
	bd.money("net_profit", "Net Profit", profit)
	bd.pct("roi", "ROI", costbasis.PercentRatio(profit, payoff))
	bd.pct("cash_on_cash", "Cash on Cash", costbasis.PercentRatio(profit, cash))

	res := bd.result(headline{
		cashRequired: cash,
		allIn:        payoff,
		netProfit:    profit,
		roi:          costbasis.PercentRatio(profit, payoff),
		coc:          costbasis.PercentRatio(profit, cash),
	})
	res.BuyLoan = loan
	return res
}

func sellerRent(in input) model.DealResult {
	b, s := in.buy, in.sell

	repair := costbasis.RepairCost(b.RepairCost, b.HedgeExpense)
	holding := costbasis.HoldingTimeMonths(b.RepairPeriod, 0)
	other := costbasis.OtherCosts(holding, b.MonthlyHoldingCost, b.ClosingCost, b.PropertyInsurance, b.PropertyTax, b.HOA)
	loan := buyLoan(b, holding)

	loanPayments := loan.MonthlyPayment * float64(loan.HoldingMonths)
	cash := other + repair + loanPayments + b.DownPayment
	allIn := cash + b.EstPurchasePrice - b.DownPayment
	side := b.MonthlySideCost()
	noi, vacancy := netOperatingIncome(s, side)
	monthlyCF := noi - loan.MonthlyPayment
	annual := monthlyCF * 12
	coc := costbasis.PercentRatio(annual, cash)
	roi := costbasis.PercentRatio(annual, allIn)

	var bd breakdown
	bd.money("purchase_price", "Purchase Price", b.EstPurchasePrice)
	addNoteItems(&bd, "buy", "Seller", 0, loan, side)
	bd.money("repair_cost", "Repair Cost (with hedge)", repair)
	bd.months("holding_time", "Holding Time", holding)
	bd.money("other_costs", "Holding, Closing & Carry Costs", other)
	bd.money("loan_payments", "Loan Payments While Holding", loanPayments)
	bd.money("cash_required", "Cash Required", cash)
	bd.money("all_in_cost", "All-In Cost", allIn)
	bd.money("monthly_rent", "Monthly Rental Income", s.MonthlyOperating)
	bd.money("vacancy", "Vacancy Allowance", vacancy)
	bd.money("monthly_operating_cost", "Monthly Operating Cost", s.MonthlyOpCost)
	bd.money("net_operating_income", "Net Operating Income", noi)
	bd.money("monthly_cash_flow", "Monthly Cash Flow", monthlyCF)
	bd.money("annual_cash_flow", "Annual Cash Flow", annual)
	bd.pct("roi", "ROI", roi)
	bd.pct("cash_on_cash", "Cash on Cash", coc)

	res := bd.result(headline{
		cashRequired: cash,
		allIn:        allIn,
		noi:          noi,
		annual:       annual,
		netProfit:    annual,
		roi:          roi,
		coc:          coc,
	})
	res.BuyLoan = loan
	return res
}

// sellerLease keeps the upstream note in place while a tenant-buyer holds an
// option. Profit is the option payment plus rent over the option term net of
// insurance, tax and HOA; the note balance at exercise is reported but not
// netted against the strike.
func sellerLease(in input) model.DealResult {
	b, s := in.buy, in.sell

	repair := costbasis.RepairCost(b.RepairCost, b.HedgeExpense)
	holding := costbasis.HoldingTimeMonths(b.RepairPeriod, 0)
	other := costbasis.OtherCosts(holding, b.MonthlyHoldingCost, b.ClosingCost, b.PropertyInsurance, b.PropertyTax, b.HOA)
	loan := buyLoan(b, holding+s.OptionTerm)

	side := b.MonthlySideCost()
	loanPayments := loan.MonthlyPayment * float64(amortization.Months(holding))
	cash := b.DownPayment + loanPayments + repair + other
	allIn := cash + b.EstPurchasePrice - b.DownPayment
	monthlyCF := s.MonthlyRental - side
	totalCF := monthlyCF * s.OptionTerm
	credits := s.MonthlyCredits * s.OptionTerm
	profit := totalCF + s.OptionPayment
	annual := monthlyCF * 12

	var bd breakdown
	bd.money("purchase_price", "Purchase Price", b.EstPurchasePrice)
	addNoteItems(&bd, "buy", "Seller", 0, loan, side)
	bd.money("repair_cost", "Repair Cost (with hedge)", repair)
	bd.money("other_costs", "Holding, Closing & Carry Costs", other)
	bd.money("loan_payments", "Loan Payments While Holding", loanPayments)
	bd.money("cash_required", "Cash Required", cash)
	bd.money("option_sales_price", "Option Sales Price", s.SalesPrice)
	bd.money("option_payment", "Option Payment Received", s.OptionPayment)
	bd.money("monthly_rent", "Monthly Rent from Buyer", s.MonthlyRental)
	bd.money("monthly_cash_flow", "Monthly Cash Flow", monthlyCF)
	bd.months("option_term", "Option Term", s.OptionTerm)
	bd.money("total_cash_flow", "Total Cash Flow", totalCF)
	bd.money("total_credits", "Rent Credits Given", credits)
	bd.money("balance_at_exercise", "Loan Balance at Exercise", loan.BalanceAtSale)
	bd.money("net_profit", "Net Profit", profit)
	bd.pct("roi", "ROI", costbasis.PercentRatio(profit, cash))
	bd.pct("cash_on_cash", "Cash on Cash", costbasis.PercentRatio(annual, cash))

	res := bd.result(headline{
		cashRequired: cash,
		allIn:        allIn,
		annual:       annual,
		netProfit:    profit,
		roi:          costbasis.PercentRatio(profit, cash),
		coc:          costbasis.PercentRatio(annual, cash),
	})
	res.BuyLoan = loan
	return res
}

// sellerSellerFinance wraps the upstream note: the end buyer pays a new note
// while the investor keeps paying the original one.
func sellerSellerFinance(in input) model.DealResult {
	b, s := in.buy, in.sell

	repair := costbasis.RepairCost(b.RepairCost, b.HedgeExpense)
	holding := costbasis.HoldingTimeMonths(b.RepairPeriod, s.MonthsToSell)
	other := costbasis.OtherCosts(holding, b.MonthlyHoldingCost, b.ClosingCost, b.PropertyInsurance, b.PropertyTax, b.HOA)
	buyNote := buyLoan(b, holding)
	sellNote := sellLoan(s)

	term := b.AmortizationTerm
	if in.opts.ReceivedTermFromSellLeg {
		term = s.AmortizationTerm
	}
	received := noteReceipts(s.DownPayment, sellNote.MonthlyPayment, term)
	expense := (repair + other + b.LoanAmount) * in.opts.ClosingCostMultiplier
	profit := received - expense
	allCost := costbasis.AllInCost(repair, other, 0, 0, b.EstPurchasePrice)
	cash := b.DownPayment + repair + other + buyNote.MonthlyPayment*float64(buyNote.HoldingMonths)
	spread := sellNote.MonthlyPayment - buyNote.MonthlyPayment
	annual := spread * 12

	var bd breakdown
	bd.money("purchase_price", "Purchase Price", b.EstPurchasePrice)
	addNoteItems(&bd, "buy", "Seller", 0, buyNote, b.MonthlySideCost())
	bd.money("repair_cost", "Repair Cost (with hedge)", repair)
	bd.months("holding_time", "Holding Time", holding)
	bd.money("other_costs", "Holding, Closing & Carry Costs", other)
	addNoteItems(&bd, "sell", "Buyer", s.SalesPrice, sellNote, s.MonthlySideCost())
	bd.money("monthly_spread", "Monthly Payment Spread", spread)
	bd.money("total_received", "Total Received", received)
	bd.money("total_expenses", "Total Expenses", expense)
	bd.money("cash_required", "Cash Required", cash)
	bd.money("net_profit", "Net Profit", profit)
	bd.pct("roi", "ROI", costbasis.PercentRatio(profit, allCost))
	bd.pct("cash_on_cash", "Cash on Cash", costbasis.PercentRatio(annual, cash))

	res := bd.result(headline{
		cashRequired: cash,
		allIn:        allCost,
		annual:       annual,
		netProfit:    profit,
		roi:          costbasis.PercentRatio(profit, allCost),
		coc:          costbasis.PercentRatio(annual, cash),
	})
	res.BuyLoan = buyNote
	res.SellLoan = sellNote
	return res
}
