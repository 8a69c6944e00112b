package models

import (
	"deal-analyzer/internal/model"
	"deal-analyzer/internal/property"
	"deal-analyzer/internal/session"
	"deal-analyzer/internal/strategy"
)

// DealResponse carries the raw numbers and their display strings.
type DealResponse struct {
	Result    model.DealResult  `json:"result"`
	Formatted map[string]string `json:"formatted"`
}

func NewDealResponse(res model.DealResult) DealResponse {
	return DealResponse{Result: res, Formatted: res.Formatted()}
}

type SellStrategyInfo struct {
	Key    model.SellStrategy `json:"key"`
	Label  string             `json:"label"`
	Fields []string           `json:"fields"`
}

type BuyStrategyInfo struct {
	Key    model.BuyStrategy  `json:"key"`
	Label  string             `json:"label"`
	Fields []string           `json:"fields"`
	Sells  []SellStrategyInfo `json:"sells"`
}

type StrategiesResponse struct {
	Strategies []BuyStrategyInfo     `json:"strategies"`
	Matrix     []strategy.MatrixRow `json:"matrix"`
}

// FormResponse is the empty shape of a buy strategy's assumption record.
type FormResponse struct {
	Strategy model.BuyStrategy  `json:"strategy"`
	Fields   []string           `json:"fields"`
	Values   map[string]float64 `json:"values"`
}

type SessionResponse struct {
	Session      session.Session      `json:"session"`
	BuyFields    []string             `json:"buyFields"`
	SellFields   []string             `json:"sellFields"`
	AllowedSells []model.SellStrategy `json:"allowedSells"`
}

type SelectSellResponse struct {
	Accepted bool            `json:"accepted"`
	Session  SessionResponse `json:"session"`
}

type SeedResponse struct {
	Filled   []string          `json:"filled"`
	Property property.Property `json:"property"`
	Session  SessionResponse   `json:"session"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
