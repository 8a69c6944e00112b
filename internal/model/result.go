package model

// Kind tells a presenter how to format a line item value.
type Kind string

const (
	KindCurrency Kind = "currency"
	KindPercent  Kind = "percent"
	KindMonths   Kind = "months"
)

// LineItem is one row of a deal breakdown.
type LineItem struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Kind  Kind    `json:"kind"`
	Value float64 `json:"value"`
}

// Display formats the value according to its Kind.
func (li LineItem) Display() string {
	switch li.Kind {
	case KindPercent:
		return FormatPercent(li.Value)
	case KindMonths:
		return FormatMonths(li.Value)
	default:
		return FormatUSD(li.Value)
	}
}

// LoanState is derived loan information; it is never entered by the user.
type LoanState struct {
	Principal      float64 `json:"principal"`
	AnnualRate     float64 `json:"annual_rate"`
	TermYears      float64 `json:"term_years"`
	MonthlyPayment float64 `json:"monthly_payment"`

	// HoldingMonths is how long the loan runs before the property is sold or exercised.
	HoldingMonths int     `json:"holding_months"`
	BalanceAtSale float64 `json:"balance_at_sale"`

	BalloonMonths  int     `json:"balloon_months"`
	BalloonBalance float64 `json:"balloon_balance"`

	// Trajectory[i] is the remaining balance after month i+1 of the holding period.
	Trajectory []float64 `json:"trajectory,omitempty"`
}

// DealResult is the full output of a deal calculator. Items is the ordered
// breakdown a presenter renders as-is; the headline fields are the summary
// metrics common to every pair and are not all repeated in Items.
type DealResult struct {
	Buy        BuyStrategy  `json:"buy"`
	Sell       SellStrategy `json:"sell"`
	Compatible bool         `json:"compatible"`

	CashRequired       float64 `json:"cash_required"`
	AllInCost          float64 `json:"all_in_cost"`
	NetOperatingIncome float64 `json:"net_operating_income"`
	AnnualCashFlow     float64 `json:"annual_cash_flow"`
	NetProfit          float64 `json:"net_profit"`
	ROI                float64 `json:"roi"`
	CashOnCash         float64 `json:"cash_on_cash"`

	BuyLoan  *LoanState `json:"buy_loan,omitempty"`
	SellLoan *LoanState `json:"sell_loan,omitempty"`

	Items []LineItem `json:"items"`
}

// Item looks up a line item by key.
func (r DealResult) Item(key string) (LineItem, bool) {
	for _, li := range r.Items {
		if li.Key == key {
			return li, true
		}
	}
	return LineItem{}, false
}

// Value returns the numeric value of a line item, or 0 when it is absent.
func (r DealResult) Value(key string) float64 {
	li, _ := r.Item(key)
	return li.Value
}

// Values flattens the breakdown into key -> number.
func (r DealResult) Values() map[string]float64 {
	out := make(map[string]float64, len(r.Items))
	for _, li := range r.Items {
		out[li.Key] = li.Value
	}
	return out
}

// Formatted flattens the breakdown into key -> display string.
func (r DealResult) Formatted() map[string]string {
	out := make(map[string]string, len(r.Items))
	for _, li := range r.Items {
		out[li.Key] = li.Display()
	}
	return out
}
