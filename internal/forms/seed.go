package forms

import (
	"deal-analyzer/internal/model"
	"deal-analyzer/internal/property"
)

// SeedFromProperty copies a property's baseline attributes into the fields b
// recognizes. Fields that already hold a non-zero value are left alone. It
// returns the names of the fields it filled.
func SeedFromProperty(b *model.BuyAssumptions, p property.Property) []string {
	candidates := []struct {
		field string
		value float64
	}{
		{"arv", p.Value()},
		{"estPurchasePrice", p.LatestSalePrice},
		{"propSqft", p.SquareFoot},
		{"propertyTax", p.MonthlyTax()},
	}

	var filled []string
	shape := buyShapes[b.Strategy]
	for _, c := range candidates {
		if c.value <= 0 || !contains(shape, c.field) {
			continue
		}
		ptr := buyRegistry[c.field](b)
		if *ptr != 0 {
			continue
		}
		*ptr = c.value
		filled = append(filled, c.field)
	}
	return filled
}
