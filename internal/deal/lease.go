package deal

import (
	"deal-analyzer/internal/costbasis"
	"deal-analyzer/internal/model"
)

// leaseFlip controls the property through a lease option, fixes it up, and
// exercises the option when an end buyer closes.
func leaseFlip(in input) model.DealResult {
	b, s := in.buy, in.sell
	months := s.MonthsToSell

	holdingCost := s.MonthlyHoldingCost * months
	outOfPocket := b.OptionPayment + b.MonthlyRental*months + s.MarketingCost + holdingCost + s.EstimatedRepairCost
	credits := b.MonthlyCredit * months
	allIn := b.SalesPrice + outOfPocket + s.SellingCost - b.OptionPayment - credits
	profit := s.AskingPrice - allIn

	var bd breakdown
	bd.money("option_sales_price", "Option Purchase Price", b.SalesPrice)
	bd.money("option_payment", "Option Payment", b.OptionPayment)
	bd.months("holding_time", "Holding Time", months)
	bd.money("rent_paid", "Rent Paid to Owner", b.MonthlyRental*months)
	bd.money("rent_credits", "Rent Credits Earned", credits)
	bd.money("holding_cost", "Holding Cost", holdingCost)
	bd.money("repair_cost", "Estimated Repair Cost", s.EstimatedRepairCost)
	bd.money("marketing_cost", "Marketing Cost", s.MarketingCost)
	bd.money("selling_cost", "Selling Cost", s.SellingCost)
	bd.money("cash_required", "Cash Required", outOfPocket)
	bd.money("all_in_cost", "All-In Cost", allIn)
	bd.money("asking_price", "Asking Price", s.AskingPrice)
	bd.money("net_profit", "Net Profit", profit)
	bd.pct("roi", "ROI", costbasis.PercentRatio(profit, allIn))
	bd.pct("cash_on_cash", "Cash on Cash", costbasis.PercentRatio(profit, outOfPocket))

	return bd.result(headline{
		cashRequired: outOfPocket,
		allIn:        allIn,
		netProfit:    profit,
		roi:          costbasis.PercentRatio(profit, allIn),
		coc:          costbasis.PercentRatio(profit, outOfPocket),
	})
}

// leaseRent sub-lets a lease-optioned property to a tenant.
func leaseRent(in input) model.DealResult {
	b, s := in.buy, in.sell

	noi, vacancy := netOperatingIncome(s, 0)
	monthlyCF := noi - b.MonthlyRental
	annual := monthlyCF * 12
	total := monthlyCF * s.RentalHolding
	coc := costbasis.PercentRatio(annual, b.OptionPayment)
	roi := costbasis.PercentRatio(total, b.OptionPayment)

	var bd breakdown
	bd.money("option_payment", "Option Payment", b.OptionPayment)
	bd.money("monthly_rent", "Monthly Rental Income", s.MonthlyOperating)
	bd.money("vacancy", "Vacancy Allowance", vacancy)
	bd.money("monthly_operating_cost", "Monthly Operating Cost", s.MonthlyOpCost)
	bd.money("net_operating_income", "Net Operating Income", noi)
	bd.money("lease_payment", "Lease Payment to Owner", b.MonthlyRental)
	bd.money("monthly_cash_flow", "Monthly Cash Flow", monthlyCF)
	bd.money("annual_cash_flow", "Annual Cash Flow", annual)
	bd.months("rental_holding", "Rental Holding Period", s.RentalHolding)
	bd.money("net_profit", "Total Cash Flow", total)
	bd.pct("roi", "ROI", roi)
	bd.pct("cash_on_cash", "Cash on Cash", coc)

	return bd.result(headline{
		cashRequired: b.OptionPayment,
		allIn:        b.OptionPayment,
		noi:          noi,
		annual:       annual,
		netProfit:    total,
		roi:          roi,
		coc:          coc,
	})
}

// leaseLease sandwiches a lease option: the end buyer pays more rent, a larger
// option fee and a higher strike than the upstream owner charges.
func leaseLease(in input) model.DealResult {
	b, s := in.buy, in.sell
	term := s.OptionTerm

	optionSpread := s.OptionPayment - b.OptionPayment
	monthlyCF := s.MonthlyRental - b.MonthlyRental
	totalCF := monthlyCF * term
	creditSpread := (b.MonthlyCredit - s.MonthlyCredits) * term
	backEnd := (s.SalesPrice - b.SalesPrice) + (b.OptionPayment - s.OptionPayment) + creditSpread
	profit := optionSpread + totalCF + backEnd
	annual := monthlyCF * 12

	var bd breakdown
	bd.money("buy_option_payment", "Option Payment Paid", b.OptionPayment)
	bd.money("sell_option_payment", "Option Payment Received", s.OptionPayment)
	bd.money("option_spread", "Option Payment Spread", optionSpread)
	bd.money("buy_monthly_rent", "Rent Paid to Owner", b.MonthlyRental)
	bd.money("sell_monthly_rent", "Rent from Buyer", s.MonthlyRental)
	bd.money("monthly_cash_flow", "Monthly Cash Flow", monthlyCF)
	bd.months("option_term", "Option Term", term)
	bd.money("total_cash_flow", "Total Cash Flow", totalCF)
	bd.money("credit_spread", "Rent Credit Spread", creditSpread)
	bd.money("buy_sales_price", "Owner Strike Price", b.SalesPrice)
	bd.money("sell_sales_price", "Buyer Strike Price", s.SalesPrice)
	bd.money("back_end", "Back-End Profit", backEnd)
	bd.money("net_profit", "Net Profit", profit)
	bd.pct("roi", "ROI", costbasis.PercentRatio(profit, b.OptionPayment))
	bd.pct("cash_on_cash", "Cash on Cash", costbasis.PercentRatio(annual, b.OptionPayment))

	return bd.result(headline{
		cashRequired: b.OptionPayment,
		allIn:        b.OptionPayment,
		annual:       annual,
		netProfit:    profit,
		roi:          costbasis.PercentRatio(profit, b.OptionPayment),
		coc:          costbasis.PercentRatio(annual, b.OptionPayment),
	})
}

// leaseSellerFinance exercises the upstream option at closing and carries a
// note for the end buyer.
func leaseSellerFinance(in input) model.DealResult {
	b, s := in.buy, in.sell
	months := s.MonthsToSell

	rent := b.MonthlyRental * months
	credits := b.MonthlyCredit * months
	strike := b.SalesPrice - b.OptionPayment - credits
	allIn := b.OptionPayment + rent + strike

	note := sellLoan(s)
	received := noteReceipts(s.DownPayment, note.MonthlyPayment, s.AmortizationTerm)
	expense := allIn * in.opts.ClosingCostMultiplier
	profit := received - expense
	annual := note.MonthlyPayment * 12
	tiedUp := allIn - s.DownPayment

	var bd breakdown
	bd.money("option_payment", "Option Payment", b.OptionPayment)
	bd.months("holding_time", "Holding Time", months)
	bd.money("rent_paid", "Rent Paid to Owner", rent)
	bd.money("strike_due", "Balance Due at Exercise", strike)
	bd.money("all_in_cost", "All-In Cost", allIn)
	addNoteItems(&bd, "sell", "Buyer", s.SalesPrice, note, s.MonthlySideCost())
	bd.money("total_received", "Total Received", received)
	bd.money("total_expenses", "Total Expenses", expense)
	bd.money("net_profit", "Net Profit", profit)
	bd.pct("roi", "ROI", costbasis.PercentRatio(profit, expense))
	bd.pct("cash_on_cash", "Cash on Cash", costbasis.PercentRatio(annual, tiedUp))

	res := bd.result(headline{
		cashRequired: b.OptionPayment + rent,
		allIn:        allIn,
		annual:       annual,
		netProfit:    profit,
		roi:          costbasis.PercentRatio(profit, expense),
		coc:          costbasis.PercentRatio(annual, tiedUp),
	})
	res.SellLoan = note
	return res
}
