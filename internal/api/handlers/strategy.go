package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deal-analyzer/internal/api/models"
	"deal-analyzer/internal/forms"
	"deal-analyzer/internal/model"
	"deal-analyzer/internal/strategy"
)

// StrategyHandler serves the strategy catalogue and empty form shapes.
type StrategyHandler struct{}

func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	infos := make([]models.BuyStrategyInfo, 0, len(model.BuyStrategies))
	for _, buy := range model.BuyStrategies {
		info := models.BuyStrategyInfo{
			Key:    buy,
			Label:  buy.Label(),
			Fields: forms.BuyFields(buy),
		}
		for _, sell := range strategy.AllowedSells(buy) {
			info.Sells = append(info.Sells, models.SellStrategyInfo{
				Key:    sell,
				Label:  sell.Label(),
				Fields: forms.SellFields(buy, sell),
			})
		}
		infos = append(infos, info)
	}

	c.JSON(http.StatusOK, models.StrategiesResponse{
		Strategies: infos,
		Matrix:     strategy.Matrix(),
	})
}

// GetForm handles GET /api/v1/forms/:buy
func (h *StrategyHandler) GetForm(c *gin.Context) {
	buy, err := model.ParseBuyStrategy(c.Param("buy"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	empty := forms.Empty(buy)
	c.JSON(http.StatusOK, models.FormResponse{
		Strategy: buy,
		Fields:   forms.BuyFields(buy),
		Values:   forms.BuyValues(empty),
	})
}
