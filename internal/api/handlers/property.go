package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deal-analyzer/internal/property"
)

type PropertyHandler struct {
	repo property.Repository
}

func NewPropertyHandler(repo property.Repository) *PropertyHandler {
	return &PropertyHandler{repo: repo}
}

// Get handles GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	p, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": p})
}
