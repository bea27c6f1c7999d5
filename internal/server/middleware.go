package server

import (
	"strconv"
	"time"

	"github.com/afsarahmad786/basicValidation/internal/metrics"
	"github.com/afsarahmad786/basicValidation/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestIDMiddleware reuses the caller's X-Request-Id or assigns a new one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

func accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		utils.Logger.Info("HTTP request",
			zap.String(utils.FieldMethod, c.Request.Method),
			zap.String(utils.FieldPath, path),
			zap.Int(utils.FieldStatus, c.Writer.Status()),
			zap.Duration(utils.FieldLatency, time.Since(start)),
			zap.String(utils.FieldRequestID, requestID(c)))
	}
}

// metricsMiddleware records requests by route template so unmatched paths
// share one label.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordAPIRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
