package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет в лог каждый запрос и приватные ошибки, накопленные обработчиками.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithFields(logrus.Fields{
		"component": "http",
		"module":    "router",
	})
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"latency":  time.Since(start),
			"clientIP": c.ClientIP(),
		}

		if private := c.Errors.ByType(gin.ErrorTypePrivate); len(private) > 0 {
			entry.WithFields(fields).WithField("errors", private.String()).Error("request failed")
			return
		}
		entry.WithFields(fields).Info("request")
	}
}
