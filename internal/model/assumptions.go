package model

import "math"

// BuyAssumptions holds every acquisition-side input the engine recognizes.
// Which fields are meaningful depends on Strategy (see the forms package for the
// per-strategy shapes). Units:
// - currency fields: USD
// - hedgeExpense, interestRate: percent (0..100)
// - repairPeriod, leaseTerm: months
// - amortizationTerm, balloonTerm: years
// - propertyInsurance, propertyTax, hoa, monthlyHoldingCost, monthlyRental, monthlyCredit: per month
type BuyAssumptions struct {
	Strategy BuyStrategy `json:"strategy" yaml:"strategy"`

	ARV                float64 `json:"arv" yaml:"arv"`
	EstPurchasePrice   float64 `json:"estPurchasePrice" yaml:"estPurchasePrice"`
	PropSqft           float64 `json:"propSqft" yaml:"propSqft"`
	RepairCost         float64 `json:"repairCost" yaml:"repairCost"`
	HedgeExpense       float64 `json:"hedgeExpense" yaml:"hedgeExpense"`
	RepairPeriod       float64 `json:"repairPeriod" yaml:"repairPeriod"`
	MonthlyHoldingCost float64 `json:"monthlyHoldingCost" yaml:"monthlyHoldingCost"`
	ClosingCost        float64 `json:"closingCost" yaml:"closingCost"`
	PropertyInsurance  float64 `json:"propertyInsurance" yaml:"propertyInsurance"`
	PropertyTax        float64 `json:"propertyTax" yaml:"propertyTax"`
	HOA                float64 `json:"hoa" yaml:"hoa"`

	// Wholesale disposition expenses.
	MarketingCost float64 `json:"marketingCost" yaml:"marketingCost"`
	SellingCost   float64 `json:"sellingCost" yaml:"sellingCost"`

	// Seller-finance loan from the upstream seller.
	LoanAmount       float64 `json:"loanAmount" yaml:"loanAmount"`
	DownPayment      float64 `json:"downPayment" yaml:"downPayment"`
	InterestRate     float64 `json:"interestRate" yaml:"interestRate"`
	AmortizationTerm float64 `json:"amortizationTerm" yaml:"amortizationTerm"`
	BalloonTerm      float64 `json:"balloonTerm" yaml:"balloonTerm"`

	// Lease-option terms owed to the upstream seller.
	SalesPrice    float64 `json:"salesPrice" yaml:"salesPrice"`
	OptionPayment float64 `json:"optionPayment" yaml:"optionPayment"`
	MonthlyRental float64 `json:"monthlyRental" yaml:"monthlyRental"`
	MonthlyCredit float64 `json:"monthlyCredit" yaml:"monthlyCredit"`
	LeaseTerm     float64 `json:"leaseTerm" yaml:"leaseTerm"`
}

// SellAssumptions holds the disposition-side inputs. The lease-option and
// seller-finance fields describe the buyer-facing leg and must never be read
// in place of the BuyAssumptions fields of the same name.
type SellAssumptions struct {
	Strategy SellStrategy `json:"strategy" yaml:"strategy"`

	// Wholesale: percent of ARV.
	WholesaleProfit float64 `json:"wholesaleProfit" yaml:"wholesaleProfit"`
	BuyerProfit     float64 `json:"buyerProfit" yaml:"buyerProfit"`

	// Sell/flip.
	AskingPrice         float64 `json:"askingPrice" yaml:"askingPrice"`
	MonthsToSell        float64 `json:"monthsToSell" yaml:"monthsToSell"`
	MarketingCost       float64 `json:"marketingCost" yaml:"marketingCost"`
	SellingCost         float64 `json:"sellingCost" yaml:"sellingCost"`
	MonthlyHoldingCost  float64 `json:"monthlyHoldingCost" yaml:"monthlyHoldingCost"`
	EstimatedRepairCost float64 `json:"estimatedRepairCost" yaml:"estimatedRepairCost"`

	// Rent.
	MonthlyOperating float64 `json:"monthlyOperating" yaml:"monthlyOperating"`
	PercentVacant    float64 `json:"percentVacant" yaml:"percentVacant"`
	MonthlyOpCost    float64 `json:"monthlyOpCost" yaml:"monthlyOpCost"`
	RentalHolding    float64 `json:"rentalHolding" yaml:"rentalHolding"`

	// Lease option extended to the downstream buyer.
	SalesPrice     float64 `json:"salesPrice" yaml:"salesPrice"`
	OptionPayment  float64 `json:"optionPayment" yaml:"optionPayment"`
	MonthlyRental  float64 `json:"monthlyRental" yaml:"monthlyRental"`
	MonthlyCredits float64 `json:"monthlyCredits" yaml:"monthlyCredits"`
	OptionTerm     float64 `json:"optionTerm" yaml:"optionTerm"`

	// Seller-finance loan extended to the downstream buyer. SalesPrice above is the
	// price quoted to that buyer.
	LoanAmount        float64 `json:"loanAmount" yaml:"loanAmount"`
	DownPayment       float64 `json:"downPayment" yaml:"downPayment"`
	InterestRate      float64 `json:"interestRate" yaml:"interestRate"`
	AmortizationTerm  float64 `json:"amortizationTerm" yaml:"amortizationTerm"`
	BalloonTerm       float64 `json:"balloonTerm" yaml:"balloonTerm"`
	PropertyInsurance float64 `json:"propertyInsurance" yaml:"propertyInsurance"`
	PropertyTax       float64 `json:"propertyTax" yaml:"propertyTax"`
	HOA               float64 `json:"hoa" yaml:"hoa"`
}

// Sanitize returns a copy with non-finite values zeroed and percentages clamped to [0,100].
func (b BuyAssumptions) Sanitize() BuyAssumptions {
	out := b
	for _, f := range out.fields() {
		*f = finite(*f)
	}
	out.HedgeExpense = clampPct(out.HedgeExpense)
	return out
}

// Sanitize returns a copy with non-finite values zeroed and percentages clamped to [0,100].
func (s SellAssumptions) Sanitize() SellAssumptions {
	out := s
	for _, f := range out.fields() {
		*f = finite(*f)
	}
	out.PercentVacant = clampPct(out.PercentVacant)
	out.WholesaleProfit = clampPct(out.WholesaleProfit)
	out.BuyerProfit = clampPct(out.BuyerProfit)
	return out
}

// FinancedPrincipal is the amount actually amortized: loan amount less down payment.
func (b BuyAssumptions) FinancedPrincipal() float64 {
	return b.LoanAmount - b.DownPayment
}

// FinancedPrincipal is the amount the downstream buyer amortizes.
func (s SellAssumptions) FinancedPrincipal() float64 {
	return s.LoanAmount - s.DownPayment
}

// MonthlySideCost is insurance + tax + HOA.
func (b BuyAssumptions) MonthlySideCost() float64 {
	return b.PropertyInsurance + b.PropertyTax + b.HOA
}

func (s SellAssumptions) MonthlySideCost() float64 {
	return s.PropertyInsurance + s.PropertyTax + s.HOA
}

func (b *BuyAssumptions) fields() []*float64 {
	return []*float64{
		&b.ARV, &b.EstPurchasePrice, &b.PropSqft, &b.RepairCost, &b.HedgeExpense,
		&b.RepairPeriod, &b.MonthlyHoldingCost, &b.ClosingCost, &b.PropertyInsurance,
		&b.PropertyTax, &b.HOA, &b.MarketingCost, &b.SellingCost, &b.LoanAmount,
		&b.DownPayment, &b.InterestRate, &b.AmortizationTerm, &b.BalloonTerm,
		&b.SalesPrice, &b.OptionPayment, &b.MonthlyRental, &b.MonthlyCredit, &b.LeaseTerm,
	}
}

func (s *SellAssumptions) fields() []*float64 {
	return []*float64{
		&s.WholesaleProfit, &s.BuyerProfit, &s.AskingPrice, &s.MonthsToSell,
		&s.MarketingCost, &s.SellingCost, &s.MonthlyHoldingCost, &s.EstimatedRepairCost,
		&s.MonthlyOperating, &s.PercentVacant, &s.MonthlyOpCost, &s.RentalHolding,
		&s.SalesPrice, &s.OptionPayment, &s.MonthlyRental, &s.MonthlyCredits, &s.OptionTerm,
		&s.LoanAmount, &s.DownPayment, &s.InterestRate, &s.AmortizationTerm, &s.BalloonTerm,
		&s.PropertyInsurance, &s.PropertyTax, &s.HOA,
	}
}

func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

func clampPct(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}
