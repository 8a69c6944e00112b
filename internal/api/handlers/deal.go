package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"deal-analyzer/internal/api/models"
	"deal-analyzer/internal/deal"
	"deal-analyzer/internal/forms"
	"deal-analyzer/internal/model"
)

// DealHandler computes one-off deals without a session.
type DealHandler struct {
	engine *deal.Engine
	log    zerolog.Logger
}

func NewDealHandler(engine *deal.Engine, log zerolog.Logger) *DealHandler {
	return &DealHandler{engine: engine, log: log}
}

// Compute handles POST /api/v1/deals/compute
func (h *DealHandler) Compute(c *gin.Context) {
	var req models.ComputeDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	buy, err := model.ParseBuyStrategy(req.Buy)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	sell, err := model.ParseSellStrategy(req.Sell)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	b := req.BuyAssumptions
	b.Strategy = buy
	s := req.SellAssumptions
	s.Strategy = sell
	if err := forms.ApplyFields(&b, req.BuyFields); err != nil {
		writeDomainError(c, err)
		return
	}
	if err := forms.ApplySellFields(buy, &s, req.SellFields); err != nil {
		writeDomainError(c, err)
		return
	}

	res := h.engine.Compute(buy, sell, b, s)
	h.log.Debug().
		Str("buy", string(buy)).
		Str("sell", string(sell)).
		Bool("compatible", res.Compatible).
		Float64("net_profit", res.NetProfit).
		Msg("computed deal")

	c.JSON(http.StatusOK, models.NewDealResponse(res))
}
