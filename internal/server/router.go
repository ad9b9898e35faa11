package server

import (
	chart "bidchart/internal/chartService"
	handler "bidchart/services/chart/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(chartService *chart.ChartService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(MetricsMiddleware)

	chartHandler := handler.NewChartHandler(chartService)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auctions := router.Group("/auctions")
	{
		auctions.POST("", chartHandler.CreateAuctionHandler)
		auctions.GET("/:auction_id", chartHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/participants", chartHandler.AddParticipantHandler)
		auctions.POST("/:auction_id/participants/:participant_id/bids", chartHandler.RecordBidHandler)
		auctions.GET("/:auction_id/chart", chartHandler.GetChartHandler)
		auctions.POST("/:auction_id/legend/:participant_id/toggle", chartHandler.ToggleVisibilityHandler)
		auctions.GET("/:auction_id/comparison", chartHandler.GetComparisonHandler)
	}

	return router
}
