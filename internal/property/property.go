// Package property looks up baseline attributes for a subject property. The
// records are read-only: the analyzer copies them into a deal's assumptions
// when asked and never writes back.
package property

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("property not found")

// Property is a subject property as listed by the upstream data provider.
type Property struct {
	ID           string `json:"id" yaml:"id"`
	Address      string `json:"address" yaml:"address"`
	City         string `json:"city" yaml:"city"`
	State        string `json:"state" yaml:"state"`
	ZipCode      string `json:"zipCode" yaml:"zipCode"`
	County       string `json:"county,omitempty" yaml:"county"`
	PropertyType string `json:"propertyType,omitempty" yaml:"propertyType"`
	OwnerName    string `json:"ownerName,omitempty" yaml:"ownerName"`

	Bedrooms   float64 `json:"bedrooms" yaml:"bedrooms"`
	Bathrooms  float64 `json:"bathrooms" yaml:"bathrooms"`
	SquareFoot float64 `json:"squareFoot" yaml:"squareFoot"`
	LotSize    float64 `json:"lotSize,omitempty" yaml:"lotSize"`
	YearBuilt  int     `json:"yearBuilt,omitempty" yaml:"yearBuilt"`

	EstimatedValue  float64 `json:"estimatedValue" yaml:"estimatedValue"`
	AssessedValue   float64 `json:"assessedValue" yaml:"assessedValue"`
	LatestSalePrice float64 `json:"latestSalePrice" yaml:"latestSalePrice"`
	LatestSaleDate  string  `json:"latestSaleDate,omitempty" yaml:"latestSaleDate"`
	// TaxAmount is the annual property tax bill.
	TaxAmount float64 `json:"taxAmount" yaml:"taxAmount"`

	Lat float64 `json:"lat,omitempty" yaml:"lat"`
	Lng float64 `json:"lng,omitempty" yaml:"lng"`
}

// Value is the best available market value: the estimate when present,
// otherwise the assessed value.
func (p Property) Value() float64 {
	if p.EstimatedValue > 0 {
		return p.EstimatedValue
	}
	return p.AssessedValue
}

// MonthlyTax spreads the annual tax bill over twelve months.
func (p Property) MonthlyTax() float64 {
	return p.TaxAmount / 12
}

type Repository interface {
	Get(ctx context.Context, id string) (Property, error)
}
