package controllers

import (
	models "Uno/models/postgres"
	"Uno/services/gameplay"
	"Uno/services/store"
	"Uno/services/tracking"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary History of a game
// @Description Every recorded action, oldest first
// @Tags history
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} object{history=[]postgres.GameHistory}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /gameHistory/games/{gameId}/history [get]
func GameHistory(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		history, err := games.History(c.Request.Context(), c.Param("gameId"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"history": history})
	}
}

// statsHandler loads the counters and renders one summary of them
func statsHandler(st store.TrackingStore, summarize func(c *gin.Context, rows []models.Tracking)) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := st.ListTracking(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		summarize(c, rows)
	}
}

// @Summary Request totals by endpoint and method
// @Tags stats
// @Produce json
// @Success 200 {object} tracking.RequestStats
// @Router /stats/requests [get]
func RequestStats(st store.TrackingStore) gin.HandlerFunc {
	return statsHandler(st, func(c *gin.Context, rows []models.Tracking) {
		c.JSON(http.StatusOK, tracking.Requests(rows))
	})
}

// @Summary Average, min and max response time per endpoint in milliseconds
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]tracking.ResponseTime
// @Router /stats/response-times [get]
func ResponseTimes(st store.TrackingStore) gin.HandlerFunc {
	return statsHandler(st, func(c *gin.Context, rows []models.Tracking) {
		c.JSON(http.StatusOK, tracking.ResponseTimes(rows))
	})
}

// @Summary Request count by status code
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]integer
// @Router /stats/status-codes [get]
func StatusCodes(st store.TrackingStore) gin.HandlerFunc {
	return statsHandler(st, func(c *gin.Context, rows []models.Tracking) {
		c.JSON(http.StatusOK, tracking.StatusCodes(rows))
	})
}

// @Summary Most requested endpoint
// @Tags stats
// @Produce json
// @Success 200 {object} tracking.PopularEndpoint
// @Router /stats/popular-endpoints [get]
func PopularEndpoints(st store.TrackingStore) gin.HandlerFunc {
	return statsHandler(st, func(c *gin.Context, rows []models.Tracking) {
		c.JSON(http.StatusOK, tracking.Popular(rows))
	})
}
