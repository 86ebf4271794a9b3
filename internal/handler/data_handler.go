package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"

	"UrbanGuide-App/internal/domain/helper"
	"UrbanGuide-App/internal/domain/model"
	"UrbanGuide-App/internal/repository"
	"UrbanGuide-App/internal/usecase"
)

// DataHandler カテゴリ検索とランダム座標生成のハンドラー
type DataHandler struct {
	dataUseCase usecase.MapDataUseCase
}

func NewDataHandler(dataUseCase usecase.MapDataUseCase) *DataHandler {
	return &DataHandler{
		dataUseCase: dataUseCase,
	}
}

// GetData カテゴリに一致するデータ一覧
// GET /data?name=Monuments&visualization=pins[&format=geojson]
func (h *DataHandler) GetData(c *gin.Context) {
	category, ok := bindCategory(c, c.Query("name"), c.Query("visualization"))
	if !ok {
		return
	}

	beams, err := h.dataUseCase.GetData(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get data: " + err.Error(),
		})
		return
	}

	if c.Query("format") == "geojson" {
		markers := helper.Markers(beams)
		fc := repository.MarkersToFeatureCollection(markers)
		if bound, ok := repository.MarkersBound(markers); ok {
			fc.BBox = geojson.NewBBox(bound)
		}
		c.JSON(http.StatusOK, fc)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"count":    len(beams),
		"data":     beams,
	})
}

// GetCategories カテゴリ一覧と件数
// GET /categories
func (h *DataHandler) GetCategories(c *gin.Context) {
	summaries, err := h.dataUseCase.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get categories: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": summaries,
	})
}

// GetRandomLocations 円内のランダムな座標
// GET /locations/random?lat=&lng=&radius=&count=
func (h *DataHandler) GetRandomLocations(c *gin.Context) {
	origin := model.Modena
	radius := model.DefaultRadiusMeters
	count := 1

	var ok bool
	if origin.Lat, ok = parseFloatQuery(c, "lat", origin.Lat); !ok {
		return
	}
	if origin.Lng, ok = parseFloatQuery(c, "lng", origin.Lng); !ok {
		return
	}
	if radius, ok = parseFloatQuery(c, "radius", radius); !ok {
		return
	}
	if v := c.Query("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid count value",
			})
			return
		}
		count = n
	}

	points, err := h.dataUseCase.RandomLocations(origin, radius, count)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"origin":        origin,
		"radius_meters": radius,
		"locations":     points,
	})
}

// bindCategory name と visualization から Category を作成。失敗時は400を返す
func bindCategory(c *gin.Context, name, visualization string) (model.Category, bool) {
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "name parameter is required",
		})
		return model.Category{}, false
	}

	vis, err := model.ParseVisualizationType(visualization)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "visualization must be 'pins' or 'heatmap'",
		})
		return model.Category{}, false
	}

	return model.Category{Name: name, Visualization: vis}, true
}

func parseFloatQuery(c *gin.Context, key string, def float64) (float64, bool) {
	v := c.Query(key)
	if v == "" {
		return def, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !model.IsFinite(f) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid " + key + " value",
		})
		return 0, false
	}
	return f, true
}
