package deal

import (
	"deal-analyzer/internal/costbasis"
	"deal-analyzer/internal/model"
)

// breakdown accumulates line items in display order.
type breakdown struct {
	items []model.LineItem
}

func (b *breakdown) add(kind model.Kind, key, label string, v float64) {
	b.items = append(b.items, model.LineItem{
		Key:   key,
		Label: label,
		Kind:  kind,
		Value: costbasis.Finite(v),
	})
}

func (b *breakdown) money(key, label string, v float64)  { b.add(model.KindCurrency, key, label, v) }
func (b *breakdown) pct(key, label string, v float64)    { b.add(model.KindPercent, key, label, v) }
func (b *breakdown) months(key, label string, v float64) { b.add(model.KindMonths, key, label, v) }

// headline carries the summary metrics copied onto the DealResult fields.
// Calculators add whichever of them they display as line items themselves.
type headline struct {
	cashRequired float64
	allIn        float64
	noi          float64
	annual       float64
	netProfit    float64
	roi          float64
	coc          float64
}

func (b *breakdown) result(h headline) model.DealResult {
	return model.DealResult{
		CashRequired:       costbasis.Finite(h.cashRequired),
		AllInCost:          costbasis.Finite(h.allIn),
		NetOperatingIncome: costbasis.Finite(h.noi),
		AnnualCashFlow:     costbasis.Finite(h.annual),
		NetProfit:          costbasis.Finite(h.netProfit),
		ROI:                costbasis.Finite(h.roi),
		CashOnCash:         costbasis.Finite(h.coc),
		Items:              b.items,
	}
}
