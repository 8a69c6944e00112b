package deal

import (
	"deal-analyzer/internal/costbasis"
	"deal-analyzer/internal/model"
)

// wholesaleDeal assigns the contract to an end buyer. The wholesaler's fee and
// the buyer's margin are both fixed shares of ARV; the maximum cash offer is
// what remains after both margins and the buyer's rehab expenses.
func wholesaleDeal(in input) model.DealResult {
	b, s := in.buy, in.sell

	repair := costbasis.RepairCost(b.RepairCost, b.HedgeExpense)
	expenses := costbasis.WholesaleExpenses(repair, b.ClosingCost, b.MonthlyHoldingCost, b.RepairPeriod, b.MarketingCost, b.SellingCost)
	wp := s.WholesaleProfit / 100
	bp := s.BuyerProfit / 100

	netProfit := b.ARV * wp
	buyerProfit := b.ARV * bp
	buyerROI := costbasis.PercentRatio(buyerProfit, b.ARV-buyerProfit)
	maxOffer := costbasis.MaxWholesaleOffer(b.ARV, expenses, wp, bp)

	var bd breakdown
	bd.money("arv", "After Repair Value", b.ARV)
	bd.money("repair_cost", "Repair Cost (with hedge)", repair)
	bd.months("repair_period", "Repair Period", b.RepairPeriod)
	bd.money("buyer_expenses", "Buyer Expenses", expenses)
	bd.money("max_cash_offer", "Maximum Cash Offer", maxOffer)
	bd.pct("percent_of_arv", "Offer as % of ARV", costbasis.PercentOfARV(maxOffer, b.ARV))
	bd.money("buyer_net_profit", "Buyer Net Profit", buyerProfit)
	bd.pct("buyer_roi", "Buyer ROI", buyerROI)
	bd.money("net_profit", "Wholesale Net Profit", netProfit)

	return bd.result(headline{
		allIn:     maxOffer + expenses,
		netProfit: netProfit,
		roi:       buyerROI,
	})
}
