package middlewares

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type HTTPRequestRecorder interface {
	HTTPRequest(route, status string)
}

// Metrics считает запросы по шаблону маршрута (c.FullPath), чтобы идентификаторы из пути не плодили метки.
func Metrics(recorder HTTPRequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.HTTPRequest(route, strconv.Itoa(c.Writer.Status()))
	}
}
