package deal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"deal-analyzer/internal/model"
)

// Scenario is a saved deal: a strategy pair and both assumption records.
type Scenario struct {
	Name            string                `yaml:"name"`
	Buy             string                `yaml:"buy"`
	Sell            string                `yaml:"sell"`
	BuyAssumptions  model.BuyAssumptions  `yaml:"buy_assumptions"`
	SellAssumptions model.SellAssumptions `yaml:"sell_assumptions"`
}

func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Run parses the strategy keys and computes the deal.
func (sc *Scenario) Run(e *Engine) (model.DealResult, error) {
	buy, err := model.ParseBuyStrategy(sc.Buy)
	if err != nil {
		return model.DealResult{}, err
	}
	sell, err := model.ParseSellStrategy(sc.Sell)
	if err != nil {
		return model.DealResult{}, err
	}
	return e.Compute(buy, sell, sc.BuyAssumptions, sc.SellAssumptions), nil
}
