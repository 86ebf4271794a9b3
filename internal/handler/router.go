package handler

import (
	"github.com/gin-gonic/gin"

	"UrbanGuide-App/internal/middleware"
)

// SetupRouter APIルーターを構築する
func SetupRouter(healthHandler *HealthHandler, dataHandler *DataHandler, mapHandler *MapHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	r.GET("/api/health", healthHandler.GetHealth)
	r.GET("/categories", dataHandler.GetCategories)

	r.GET("/data", dataHandler.GetData)
	r.GET("/locations/random", dataHandler.GetRandomLocations)

	m := r.Group("/map")
	{
		m.GET("/annotations", mapHandler.GetAnnotations)
		m.GET("/camera", mapHandler.GetCamera)
		m.GET("/style", mapHandler.GetStyle)
		m.POST("/data", mapHandler.PostMapData)
	}

	r.GET("/reports", mapHandler.GetReports)
	r.GET("/benchmark/stats", mapHandler.GetBenchmarkStats)

	return r
}
