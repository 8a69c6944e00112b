// Package api wires the HTTP surface of the deal analyzer.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"deal-analyzer/internal/api/handlers"
	"deal-analyzer/internal/api/middleware"
	"deal-analyzer/internal/api/models"
	"deal-analyzer/internal/deal"
	"deal-analyzer/internal/property"
	"deal-analyzer/internal/session"
)

type Deps struct {
	Engine         *deal.Engine
	Sessions       *session.Store
	Properties     property.Repository
	Log            zerolog.Logger
	AllowedOrigins []string
}

// NewRouter builds the gin engine with middleware and every route mounted.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(d.AllowedOrigins))
	router.Use(middleware.Logger(d.Log))
	router.Use(middleware.ErrorHandler(d.Log))

	strategyHandler := handlers.NewStrategyHandler()
	dealHandler := handlers.NewDealHandler(d.Engine, d.Log)
	sessionHandler := handlers.NewSessionHandler(d.Sessions, d.Properties, d.Log)
	propertyHandler := handlers.NewPropertyHandler(d.Properties)

	router.GET("/health", handlers.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/strategies", strategyHandler.ListStrategies)
		api.GET("/forms/:buy", strategyHandler.GetForm)

		api.POST("/deals/compute", dealHandler.Compute)

		api.POST("/sessions", sessionHandler.Create)
		api.GET("/sessions/:id", sessionHandler.Get)
		api.DELETE("/sessions/:id", sessionHandler.Delete)
		api.PUT("/sessions/:id/buy", sessionHandler.SelectBuy)
		api.PUT("/sessions/:id/sell", sessionHandler.SelectSell)
		api.PATCH("/sessions/:id/buy/fields", sessionHandler.UpdateBuyFields)
		api.PATCH("/sessions/:id/sell/fields", sessionHandler.UpdateSellFields)
		api.POST("/sessions/:id/seed/:propertyId", sessionHandler.Seed)
		api.GET("/sessions/:id/deal", sessionHandler.Deal)

		api.GET("/properties/:id", propertyHandler.Get)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "no route for " + c.Request.URL.Path},
		})
	})

	return router
}
