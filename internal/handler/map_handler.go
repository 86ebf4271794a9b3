package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"UrbanGuide-App/internal/domain/model"
	"UrbanGuide-App/internal/domain/service"
	"UrbanGuide-App/internal/repository"
	"UrbanGuide-App/internal/usecase"
)

// MapHandler 地図の状態と計測結果のハンドラー
type MapHandler struct {
	view             *service.MapView
	dataUseCase      usecase.MapDataUseCase
	benchmarkUseCase usecase.MapBenchmarkUseCase
}

// NewMapHandler benchmarkUseCase は nil でもよい（MQTT無効時）
func NewMapHandler(view *service.MapView, dataUseCase usecase.MapDataUseCase, benchmarkUseCase usecase.MapBenchmarkUseCase) *MapHandler {
	return &MapHandler{
		view:             view,
		dataUseCase:      dataUseCase,
		benchmarkUseCase: benchmarkUseCase,
	}
}

// ShowCategoryRequest POST /map/data のリクエスト
type ShowCategoryRequest struct {
	Name          string `json:"name" binding:"required"`
	Visualization string `json:"visualization" binding:"required"`
}

// GetAnnotations GET /map/annotations - GeoJSON FeatureCollection
func (h *MapHandler) GetAnnotations(c *gin.Context) {
	c.JSON(http.StatusOK, repository.AnnotationsToFeatureCollection(h.view.Annotations().List()))
}

// GetCamera GET /map/camera
func (h *MapHandler) GetCamera(c *gin.Context) {
	c.JSON(http.StatusOK, h.view.Camera())
}

// GetStyle GET /map/style
func (h *MapHandler) GetStyle(c *gin.Context) {
	c.JSON(http.StatusOK, h.view.Style())
}

// PostMapData POST /map/data - カテゴリのデータを地図に読み込む
func (h *MapHandler) PostMapData(c *gin.Context) {
	var req ShowCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	category, ok := bindCategory(c, req.Name, req.Visualization)
	if !ok {
		return
	}

	beams, err := h.dataUseCase.ShowCategory(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to load data: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":    category,
		"count":       len(beams),
		"annotations": h.view.Annotations().Count(),
		"style":       h.view.Style(),
	})
}

// GetReports GET /reports?topic=&limit=
func (h *MapHandler) GetReports(c *gin.Context) {
	topic := model.Topic(c.Query("topic"))
	if topic != "" && !isKnownTopic(topic) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "topic must be one of DrawPoint, DrawPointBatch, MoveMap",
		})
		return
	}

	limit := 100
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid limit value",
			})
			return
		}
		limit = n
	}

	reports, err := h.dataUseCase.LatencyReports(c.Request.Context(), topic, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get reports: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
	})
}

// GetBenchmarkStats GET /benchmark/stats
func (h *MapHandler) GetBenchmarkStats(c *gin.Context) {
	if h.benchmarkUseCase == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"enabled": true,
		"stats":   h.benchmarkUseCase.Stats(),
	})
}

func isKnownTopic(topic model.Topic) bool {
	for _, t := range model.GetAllTopics() {
		if t == topic {
			return true
		}
	}
	return false
}
