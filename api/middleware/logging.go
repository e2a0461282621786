package middleware

import (
	"fitconsole/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one line per request to the service logger.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		status := c.Writer.Status()
		if status >= 500 {
			log.Errorf("%s %s %d %s", c.Request.Method, path, status, time.Since(start))
			return
		}
		log.Infof("%s %s %d %s", c.Request.Method, path, status, time.Since(start))
	}
}
