package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"deal-analyzer/internal/api/models"
	"deal-analyzer/internal/forms"
	"deal-analyzer/internal/property"
	"deal-analyzer/internal/session"
	"deal-analyzer/internal/strategy"
)

// SessionHandler exposes the interactive analysis flow: pick a buy strategy,
// pick a compatible sell strategy, fill in fields, read the deal.
type SessionHandler struct {
	store      *session.Store
	properties property.Repository
	log        zerolog.Logger
}

func NewSessionHandler(store *session.Store, properties property.Repository, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{store: store, properties: properties, log: log}
}

func sessionResponse(sess session.Session) models.SessionResponse {
	return models.SessionResponse{
		Session:      sess,
		BuyFields:    forms.BuyFields(sess.Selection.Buy),
		SellFields:   forms.SellFields(sess.Selection.Buy, sess.Selection.Sell),
		AllowedSells: strategy.AllowedSells(sess.Selection.Buy),
	}
}

func (h *SessionHandler) respond(c *gin.Context, status int, id string) {
	sess, err := h.store.Get(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(status, sessionResponse(sess))
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	sess := h.store.Create()
	h.log.Debug().Str("session", sess.ID).Msg("session created")
	c.JSON(http.StatusCreated, sessionResponse(sess))
}

// Get handles GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	h.respond(c, http.StatusOK, c.Param("id"))
}

// Delete handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectBuy handles PUT /api/v1/sessions/:id/buy
func (h *SessionHandler) SelectBuy(c *gin.Context) {
	var req models.SelectStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	id := c.Param("id")
	if _, err := h.store.SelectBuy(id, req.Strategy); err != nil {
		writeDomainError(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// SelectSell handles PUT /api/v1/sessions/:id/sell. An incompatible choice is
// not an error: the session is returned unchanged with accepted=false.
func (h *SessionHandler) SelectSell(c *gin.Context) {
	var req models.SelectStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	id := c.Param("id")
	ok, err := h.store.SelectSell(id, req.Strategy)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	sess, err := h.store.Get(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SelectSellResponse{Accepted: ok, Session: sessionResponse(sess)})
}

// UpdateBuyFields handles PATCH /api/v1/sessions/:id/buy/fields
func (h *SessionHandler) UpdateBuyFields(c *gin.Context) {
	h.updateFields(c, h.store.UpdateBuyFields)
}

// UpdateSellFields handles PATCH /api/v1/sessions/:id/sell/fields
func (h *SessionHandler) UpdateSellFields(c *gin.Context) {
	h.updateFields(c, h.store.UpdateSellFields)
}

func (h *SessionHandler) updateFields(c *gin.Context, apply func(string, map[string]any) error) {
	var req models.UpdateFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	id := c.Param("id")
	if err := apply(id, req.Fields); err != nil {
		writeDomainError(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// Seed handles POST /api/v1/sessions/:id/seed/:propertyId
func (h *SessionHandler) Seed(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.store.Get(id); err != nil {
		writeDomainError(c, err)
		return
	}
	p, err := h.properties.Get(c.Request.Context(), c.Param("propertyId"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	filled, err := h.store.SeedFromProperty(id, p)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	sess, err := h.store.Get(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SeedResponse{
		Filled:   filled,
		Property: p,
		Session:  sessionResponse(sess),
	})
}

// Deal handles GET /api/v1/sessions/:id/deal
func (h *SessionHandler) Deal(c *gin.Context) {
	res, err := h.store.Compute(c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewDealResponse(res))
}
