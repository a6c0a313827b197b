package site

import (
	"net/http"
	"runtime/debug"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

func requestLogger(log *clog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start),
		}
		if status >= http.StatusInternalServerError {
			log.Warn("Request failed", fields...)
			return
		}
		log.Debug("Request", fields...)
	}
}

// recovery turns a panic into a bare 500 and logs the stack.
func recovery(log *clog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
