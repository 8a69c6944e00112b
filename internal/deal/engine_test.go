package deal

import (
	"bytes"
	"encoding/csv"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deal-analyzer/internal/amortization"
	"deal-analyzer/internal/model"
	"deal-analyzer/internal/strategy"
)

func TestWholesaleScenario(t *testing.T) {
	e := New(DefaultOptions())
	res := e.Compute(model.BuyWholesaling, model.SellWholesaling,
		model.BuyAssumptions{ARV: 300000},
		model.SellAssumptions{WholesaleProfit: 5, BuyerProfit: 10},
	)

	require.True(t, res.Compatible)
	assert.InDelta(t, 15000, res.NetProfit, 1e-9)
	assert.InDelta(t, 30000, res.Value("buyer_net_profit"), 1e-9)
	assert.InDelta(t, 11.11, res.Value("buyer_roi"), 0.01)
	assert.InDelta(t, 255000, res.Value("max_cash_offer"), 1e-9)
	assert.InDelta(t, 85, res.Value("percent_of_arv"), 1e-9)
}

func TestPurchaseRentScenario(t *testing.T) {
	e := New(DefaultOptions())
	res := e.Compute(model.BuyPurchase, model.SellRent,
		model.BuyAssumptions{
			EstPurchasePrice:  150000,
			RepairCost:        20000,
			HedgeExpense:      10,
			PropertyInsurance: 50,
			PropertyTax:       200,
		},
		model.SellAssumptions{MonthlyOperating: 1800, PercentVacant: 5, MonthlyOpCost: 150},
	)

	assert.InDelta(t, 1310, res.NetOperatingIncome, 1e-9)
	assert.InDelta(t, 15720, res.AnnualCashFlow, 1e-9)
	assert.InDelta(t, 22000, res.Value("repair_cost"), 1e-9)
	assert.InDelta(t, 172000, res.AllInCost, 1e-9)
	assert.InDelta(t, 15720.0/172000*100, res.CashOnCash, 1e-9)
}

func TestSellerFinanceAmortizationScenario(t *testing.T) {
	e := New(DefaultOptions())
	res := e.Compute(model.BuySeller, model.SellFlip,
		model.BuyAssumptions{
			LoanAmount:       100000,
			DownPayment:      10000,
			InterestRate:     7,
			AmortizationTerm: 15,
			RepairPeriod:     12,
		},
		model.SellAssumptions{},
	)

	require.NotNil(t, res.BuyLoan)
	assert.InDelta(t, 808.96, res.BuyLoan.MonthlyPayment, 0.05)
	assert.Equal(t, 12, res.BuyLoan.HoldingMonths)
	assert.Less(t, res.BuyLoan.BalanceAtSale, 90000.0)
	assert.Greater(t, res.BuyLoan.BalanceAtSale, 0.0)
	assert.Len(t, res.BuyLoan.Trajectory, 12)
}

func TestPurchaseFlip(t *testing.T) {
	e := New(DefaultOptions())
	res := e.Compute(model.BuyPurchase, model.SellFlip,
		model.BuyAssumptions{
			ARV:                200000,
			EstPurchasePrice:   100000,
			PropSqft:           1000,
			RepairCost:         20000,
			HedgeExpense:       10,
			RepairPeriod:       3,
			MonthlyHoldingCost: 200,
			ClosingCost:        3000,
			PropertyInsurance:  50,
			PropertyTax:        100,
		},
		model.SellAssumptions{AskingPrice: 160000, MonthsToSell: 2, MarketingCost: 1000, SellingCost: 6000},
	)

	assert.InDelta(t, 5, res.Value("holding_time"), 1e-9)
	assert.InDelta(t, 4750, res.Value("other_costs"), 1e-9)
	assert.InDelta(t, 133750, res.AllInCost, 1e-9)
	assert.InDelta(t, 127750, res.CashRequired, 1e-9)
	assert.InDelta(t, 26250, res.NetProfit, 1e-9)
	assert.InDelta(t, 26250.0/133750*100, res.ROI, 1e-9)
	assert.InDelta(t, 26250.0/127750*100, res.CashOnCash, 1e-9)
	assert.InDelta(t, 100, res.Value("cost_per_sqft"), 1e-9)
}

func TestLeaseLeaseIncludesBackEndSpread(t *testing.T) {
	e := New(DefaultOptions())
	res := e.Compute(model.BuyLease, model.SellLease,
		model.BuyAssumptions{SalesPrice: 170000, OptionPayment: 2000, MonthlyRental: 1000, MonthlyCredit: 100},
		model.SellAssumptions{SalesPrice: 200000, OptionPayment: 5000, MonthlyRental: 1300, MonthlyCredits: 150, OptionTerm: 24},
	)

	assert.InDelta(t, 3000, res.Value("option_spread"), 1e-9)
	assert.InDelta(t, 7200, res.Value("total_cash_flow"), 1e-9)
	assert.InDelta(t, -1200, res.Value("credit_spread"), 1e-9)
	assert.InDelta(t, 25800, res.Value("back_end"), 1e-9)
	assert.InDelta(t, 36000, res.NetProfit, 1e-9)
	assert.InDelta(t, 1800, res.ROI, 1e-9)
}

func TestLeaseRentUsesOptionPaymentAsBasis(t *testing.T) {
	e := New(DefaultOptions())
	res := e.Compute(model.BuyLease, model.SellRent,
		model.BuyAssumptions{OptionPayment: 5000, MonthlyRental: 1000},
		model.SellAssumptions{MonthlyOperating: 1500, PercentVacant: 10, MonthlyOpCost: 100, RentalHolding: 24},
	)

	// 1500 - 150 - 100 = 1250 NOI, 250 monthly after the lease payment.
	assert.InDelta(t, 1250, res.NetOperatingIncome, 1e-9)
	assert.InDelta(t, 3000, res.AnnualCashFlow, 1e-9)
	assert.InDelta(t, 6000, res.NetProfit, 1e-9)
	assert.InDelta(t, 60, res.CashOnCash, 1e-9)
	assert.InDelta(t, 120, res.ROI, 1e-9)
}

func TestSellerSellerFinanceReceivedTerm(t *testing.T) {
	buy := model.BuyAssumptions{
		EstPurchasePrice: 100000,
		LoanAmount:       100000,
		DownPayment:      10000,
		InterestRate:     5,
		AmortizationTerm: 30,
	}
	sell := model.SellAssumptions{
		SalesPrice:       130000,
		LoanAmount:       130000,
		DownPayment:      13000,
		InterestRate:     8,
		AmortizationTerm: 15,
	}

	res := New(DefaultOptions()).Compute(model.BuySeller, model.SellSeller, buy, sell)
	require.NotNil(t, res.SellLoan)
	require.NotNil(t, res.BuyLoan)
	pay := amortization.MonthlyPayment(117000, 8, 15)
	assert.InDelta(t, pay, res.SellLoan.MonthlyPayment, 1e-9)
	assert.InDelta(t, 13000+pay*360, res.Value("total_received"), 1e-6)
	assert.InDelta(t, 100000*DefaultClosingCostMultiplier, res.Value("total_expenses"), 1e-6)
	assert.InDelta(t, res.Value("total_received")-res.Value("total_expenses"), res.NetProfit, 1e-6)
	assert.InDelta(t, (pay-res.BuyLoan.MonthlyPayment)*12, res.AnnualCashFlow, 1e-6)

	opts := DefaultOptions()
	opts.ReceivedTermFromSellLeg = true
	res = New(opts).Compute(model.BuySeller, model.SellSeller, buy, sell)
	assert.InDelta(t, 13000+pay*180, res.Value("total_received"), 1e-6)
}

func TestSellerFlipBalloon(t *testing.T) {
	res := New(DefaultOptions()).Compute(model.BuySeller, model.SellFlip,
		model.BuyAssumptions{LoanAmount: 100000, InterestRate: 6, AmortizationTerm: 30, BalloonTerm: 5},
		model.SellAssumptions{MonthsToSell: 3},
	)
	require.NotNil(t, res.BuyLoan)
	assert.Equal(t, 60, res.BuyLoan.BalloonMonths)
	assert.Greater(t, res.BuyLoan.BalloonBalance, 0.0)
	assert.Less(t, res.BuyLoan.BalloonBalance, res.BuyLoan.BalanceAtSale)
	assert.InDelta(t, 60, res.Value("buy_balloon_months"), 1e-9)
}

func TestIncompatiblePair(t *testing.T) {
	res := New(DefaultOptions()).Compute(model.BuyWholesaling, model.SellRent,
		model.BuyAssumptions{ARV: 100000}, model.SellAssumptions{MonthlyOperating: 1000})

	assert.False(t, res.Compatible)
	assert.Equal(t, model.BuyWholesaling, res.Buy)
	assert.Equal(t, model.SellRent, res.Sell)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Zero(t, res.NetProfit)
}

func TestEveryPermittedPairHasCalculator(t *testing.T) {
	for _, p := range strategy.Pairs() {
		assert.True(t, Supports(p.Buy, p.Sell), "%s/%s", p.Buy, p.Sell)
	}
	assert.Len(t, calculators, len(strategy.Pairs()))
}

func TestZeroAndGarbageInputsStayFinite(t *testing.T) {
	e := New(DefaultOptions())
	garbage := model.BuyAssumptions{ARV: math.NaN(), RepairCost: math.Inf(1), InterestRate: math.NaN()}
	for _, p := range strategy.Pairs() {
		for _, b := range []model.BuyAssumptions{{}, garbage} {
			res := e.Compute(p.Buy, p.Sell, b, model.SellAssumptions{PercentVacant: math.Inf(-1)})
			require.True(t, res.Compatible)
			require.NotEmpty(t, res.Items, "%s/%s", p.Buy, p.Sell)
			for _, li := range res.Items {
				assert.False(t, math.IsNaN(li.Value) || math.IsInf(li.Value, 0), "%s/%s %s", p.Buy, p.Sell, li.Key)
			}
			for _, v := range []float64{res.ROI, res.CashOnCash, res.NetProfit, res.AllInCost} {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
			}
		}
	}
}

func TestNewFallsBackToDefaultMultiplier(t *testing.T) {
	assert.Equal(t, DefaultClosingCostMultiplier, New(Options{}).Options().ClosingCostMultiplier)
}

func TestWriteBreakdownCSV(t *testing.T) {
	res := New(DefaultOptions()).Compute(model.BuyWholesaling, model.SellWholesaling,
		model.BuyAssumptions{ARV: 300000},
		model.SellAssumptions{WholesaleProfit: 5, BuyerProfit: 10},
	)

	var buf bytes.Buffer
	require.NoError(t, WriteBreakdownCSV(&buf, res))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(res.Items)+1)
	assert.Equal(t, "key", rows[0][2])
	last := rows[len(rows)-1]
	assert.Equal(t, []string{"wholesaling", "wholesaling", "net_profit", "Wholesale Net Profit", "currency", "15000.00", "$15,000.00"}, last)
}

func TestWriteScheduleCSV(t *testing.T) {
	ln := Amortize(90000, 7, 15, 0, 3)

	var buf bytes.Buffer
	require.NoError(t, WriteScheduleCSV(&buf, ln))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, "3", rows[3][0])
}
