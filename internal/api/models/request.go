package models

import "deal-analyzer/internal/model"

// ComputeDealRequest is the body of POST /api/v1/deals/compute. Typed
// assumptions are applied first; raw field maps (form input, strings allowed)
// are coerced and applied on top.
type ComputeDealRequest struct {
	Buy             string                `json:"buy" binding:"required"`
	Sell            string                `json:"sell" binding:"required"`
	BuyAssumptions  model.BuyAssumptions  `json:"buyAssumptions"`
	SellAssumptions model.SellAssumptions `json:"sellAssumptions"`
	BuyFields       map[string]any        `json:"buyFields,omitempty"`
	SellFields      map[string]any        `json:"sellFields,omitempty"`
}

// SelectStrategyRequest is the body of PUT /sessions/:id/buy and /sell.
type SelectStrategyRequest struct {
	Strategy string `json:"strategy" binding:"required"`
}

// UpdateFieldsRequest is the body of PATCH /sessions/:id/{buy,sell}/fields.
// Values may be numbers or strings such as "$1,200".
type UpdateFieldsRequest struct {
	Fields map[string]any `json:"fields" binding:"required"`
}
