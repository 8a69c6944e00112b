package deal

import (
	"deal-analyzer/internal/costbasis"
	"deal-analyzer/internal/model"
)

func purchaseFlip(in input) model.DealResult {
	b, s := in.buy, in.sell

	repair := costbasis.RepairCost(b.RepairCost, b.HedgeExpense)
	holding := costbasis.HoldingTimeMonths(b.RepairPeriod, s.MonthsToSell)
	other := costbasis.OtherCosts(holding, b.MonthlyHoldingCost, b.ClosingCost, b.PropertyInsurance, b.PropertyTax, b.HOA)
	allIn := costbasis.AllInCost(repair, other, s.MarketingCost, s.SellingCost, b.EstPurchasePrice)
	cash := allIn - s.SellingCost
	profit := s.AskingPrice - allIn

	var bd breakdown
	bd.money("purchase_price", "Purchase Price", b.EstPurchasePrice)
	bd.money("cost_per_sqft", "Cost per Sq Ft", costbasis.CostPerSqft(b.EstPurchasePrice, b.PropSqft))
	bd.money("repair_cost", "Repair Cost (with hedge)", repair)
	bd.months("holding_time", "Holding Time", holding)
	bd.money("other_costs", "Holding, Closing & Carry Costs", other)
	bd.money("marketing_cost", "Marketing Cost", s.MarketingCost)
	bd.money("selling_cost", "Selling Cost", s.SellingCost)
	bd.money("all_in_cost", "All-In Cost", allIn)
	bd.pct("percent_of_arv", "All-In as % of ARV", costbasis.PercentOfARV(allIn, b.ARV))
	bd.money("cash_required", "Cash Required", cash)
	bd.money("asking_price", "Asking Price", s.AskingPrice)
	bd.money("net_profit", "Net Profit", profit)
	bd.pct("roi", "ROI", costbasis.PercentRatio(profit, allIn))
	bd.pct("cash_on_cash", "Cash on Cash", costbasis.PercentRatio(profit, cash))

	return bd.result(headline{
		cashRequired: cash,
		allIn:        allIn,
		netProfit:    profit,
		roi:          costbasis.PercentRatio(profit, allIn),
		coc:          costbasis.PercentRatio(profit, cash),
	})
}

// netOperatingIncome is rent less vacancy, operating expenses and side costs.
func netOperatingIncome(s model.SellAssumptions, side float64) (noi, vacancy float64) {
	vacancy = s.MonthlyOperating * s.PercentVacant / 100
	return s.MonthlyOperating - vacancy - s.MonthlyOpCost - side, vacancy
}

func purchaseRent(in input) model.DealResult {
	b, s := in.buy, in.sell

	repair := costbasis.RepairCost(b.RepairCost, b.HedgeExpense)
	holding := costbasis.HoldingTimeMonths(b.RepairPeriod, 0)
	other := costbasis.OtherCosts(holding, b.MonthlyHoldingCost, b.ClosingCost, b.PropertyInsurance, b.PropertyTax, b.HOA)
	allIn := costbasis.AllInCost(repair, other, 0, 0, b.EstPurchasePrice)
	side := b.MonthlySideCost()
	noi, vacancy := netOperatingIncome(s, side)
	annual := noi * 12
	coc := costbasis.PercentRatio(annual, allIn)

	var bd breakdown
	bd.money("purchase_price", "Purchase Price", b.EstPurchasePrice)
	bd.money("repair_cost", "Repair Cost (with hedge)", repair)
	bd.months("holding_time", "Holding Time", holding)
	bd.money("other_costs", "Holding, Closing & Carry Costs", other)
	bd.money("all_in_cost", "All-In Cost", allIn)
	bd.pct("percent_of_arv", "All-In as % of ARV", costbasis.PercentOfARV(allIn, b.ARV))
	bd.money("monthly_rent", "Monthly Rental Income", s.MonthlyOperating)
	bd.money("vacancy", "Vacancy Allowance", vacancy)
	bd.money("monthly_operating_cost", "Monthly Operating Cost", s.MonthlyOpCost)
	bd.money("monthly_side_costs", "Insurance, Tax & HOA", side)
	bd.money("net_operating_income", "Net Operating Income", noi)
	bd.money("annual_cash_flow", "Annual Cash Flow", annual)
	bd.pct("cash_on_cash", "Cash on Cash", coc)

	return bd.result(headline{
		cashRequired: allIn,
		allIn:        allIn,
		noi:          noi,
		annual:       annual,
		netProfit:    annual,
		roi:          coc,
		coc:          coc,
	})
}

// purchaseLease buys outright, rehabs, then gives a tenant-buyer an option.
func purchaseLease(in input) model.DealResult {
	b, s := in.buy, in.sell

	repair := costbasis.RepairCost(b.RepairCost, b.HedgeExpense)
	side := b.MonthlySideCost()
	carry := (side + b.MonthlyHoldingCost) * b.RepairPeriod
	cash := b.EstPurchasePrice + repair + carry + b.ClosingCost

	monthlyCF := s.MonthlyRental - side
	totalCF := monthlyCF * s.OptionTerm
	credits := s.MonthlyCredits * s.OptionTerm
	backEnd := (s.SalesPrice - b.EstPurchasePrice) - s.OptionPayment - credits - repair - carry - b.ClosingCost
	profit := totalCF + s.OptionPayment + backEnd
	annual := monthlyCF * 12

	var bd breakdown
	bd.money("purchase_price", "Purchase Price", b.EstPurchasePrice)
	bd.money("repair_cost", "Repair Cost (with hedge)", repair)
	bd.money("carry_cost", "Carry During Repairs", carry)
	bd.money("closing_cost", "Closing Cost", b.ClosingCost)
	bd.money("cash_required", "Cash Required", cash)
	bd.money("option_sales_price", "Option Sales Price", s.SalesPrice)
	bd.money("option_payment", "Option Payment Received", s.OptionPayment)
	bd.money("buyer_balance", "Buyer Balance at Exercise", s.SalesPrice-s.OptionPayment-credits)
	bd.money("monthly_rent", "Monthly Rent from Buyer", s.MonthlyRental)
	bd.money("monthly_side_costs", "Insurance, Tax & HOA", side)
	bd.money("monthly_cash_flow", "Monthly Cash Flow", monthlyCF)
	bd.months("option_term", "Option Term", s.OptionTerm)
	bd.money("total_cash_flow", "Total Cash Flow", totalCF)
	bd.money("total_credits", "Rent Credits Given", credits)
	bd.money("back_end", "Back-End Profit", backEnd)
	bd.money("net_profit", "Net Profit", profit)
	bd.pct("roi", "ROI", costbasis.PercentRatio(profit, cash))
	bd.pct("cash_on_cash", "Cash on Cash", costbasis.PercentRatio(annual, cash))

	return bd.result(headline{
		cashRequired: cash,
		allIn:        cash,
		annual:       annual,
		netProfit:    profit,
		roi:          costbasis.PercentRatio(profit, cash),
		coc:          costbasis.PercentRatio(annual, cash),
	})
}

// purchaseSellerFinance buys outright and carries a note for the end buyer.
func purchaseSellerFinance(in input) model.DealResult {
	b, s := in.buy, in.sell

	repair := costbasis.RepairCost(b.RepairCost, b.HedgeExpense)
	holding := costbasis.HoldingTimeMonths(b.RepairPeriod, s.MonthsToSell)
	other := costbasis.OtherCosts(holding, b.MonthlyHoldingCost, b.ClosingCost, b.PropertyInsurance, b.PropertyTax, b.HOA)
	allIn := costbasis.AllInCost(repair, other, 0, 0, b.EstPurchasePrice)

	note := sellLoan(s)
	received := noteReceipts(s.DownPayment, note.MonthlyPayment, s.AmortizationTerm)
	expense := allIn * in.opts.ClosingCostMultiplier
	profit := received - expense
	annual := note.MonthlyPayment * 12
	tiedUp := allIn - s.DownPayment

	var bd breakdown
	bd.money("purchase_price", "Purchase Price", b.EstPurchasePrice)
	bd.money("repair_cost", "Repair Cost (with hedge)", repair)
	bd.months("holding_time", "Holding Time", holding)
	bd.money("other_costs", "Holding, Closing & Carry Costs", other)
	bd.money("all_in_cost", "All-In Cost", allIn)
	addNoteItems(&bd, "sell", "Buyer", s.SalesPrice, note, s.MonthlySideCost())
	bd.money("total_received", "Total Received", received)
	bd.money("total_expenses", "Total Expenses", expense)
	bd.money("net_profit", "Net Profit", profit)
	bd.pct("roi", "ROI", costbasis.PercentRatio(profit, allIn))
	bd.pct("cash_on_cash", "Cash on Cash", costbasis.PercentRatio(annual, tiedUp))

	res := bd.result(headline{
		cashRequired: allIn,
		allIn:        allIn,
		annual:       annual,
		netProfit:    profit,
		roi:          costbasis.PercentRatio(profit, allIn),
		coc:          costbasis.PercentRatio(annual, tiedUp),
	})
	res.SellLoan = note
	return res
}
