package handler

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// HealthCheck 依存先の状態確認。正常なら nil
type HealthCheck func() error

// HealthHandler /api/health のハンドラー
type HealthHandler struct {
	checks map[string]HealthCheck
}

// NewHealthHandler checks が空の場合はサービス自体の稼働のみ返す
func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{
		checks: checks,
	}
}

// GetHealth GET /api/health - いずれかの依存先が異常なら503
func (h *HealthHandler) GetHealth(c *gin.Context) {
	resp := gin.H{"status": "healthy", "service": "UrbanGuide-App"}
	if len(h.checks) == 0 {
		c.JSON(http.StatusOK, resp)
		return
	}

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	code := http.StatusOK
	results := make(gin.H, len(names))
	for _, name := range names {
		if err := h.checks[name](); err != nil {
			results[name] = err.Error()
			code = http.StatusServiceUnavailable
			resp["status"] = "unhealthy"
			continue
		}
		results[name] = "ok"
	}
	resp["checks"] = results
	c.JSON(code, resp)
}
