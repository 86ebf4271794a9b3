package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger はリクエストごとに結果を1行で出力するミドルウェア。
// ステータスに応じて ✅(2xx/3xx) ⚠️(4xx) ❌(5xx) を付ける
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		target := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			target += "?" + c.Request.URL.RawQuery
		}

		status := c.Writer.Status()
		line := []any{statusMarker(status), c.Request.Method, target, status, time.Since(start), c.ClientIP()}
		if len(c.Errors) > 0 {
			log.Printf("%s %s %s -> %d (%v) from %s: %s", append(line, c.Errors.String())...)
			return
		}
		log.Printf("%s %s %s -> %d (%v) from %s", line...)
	}
}

func statusMarker(status int) string {
	switch {
	case status >= 500:
		return "❌"
	case status >= 400:
		return "⚠️"
	}
	return "✅"
}
