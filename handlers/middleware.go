package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"train-xchange/logger"
)

const traceHeader = "X-Trace-ID"

// RequestLogger attaches a trace-scoped logger to the request context and
// logs each request on completion
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only a well-formed uuid is trusted from the client
		traceID := uuid.New().String()
		if id, err := uuid.Parse(c.GetHeader(traceHeader)); err == nil {
			traceID = id.String()
		}

		coreLogger := base.With("trace_id", traceID)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), coreLogger))
		c.Header(traceHeader, traceID)

		start := time.Now()
		c.Next()

		coreLogger.Info("Request finished",
			"http_method", c.Request.Method,
			"http_path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"bytes_written", c.Writer.Size(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
