package server

import (
	"log/slog"
	"net/http"
	"time"

	"textmud/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		s.requestLog(c).Info("request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start))
	}
}

func (s *Server) requestLog(c *gin.Context) *slog.Logger {
	return logger.WithRequestID(s.log, c.GetString(requestIDKey))
}

func (s *Server) recoverPanic(c *gin.Context, recovered any) {
	s.requestLog(c).Error("panic serving request", "panic", recovered)
	writeError(c, http.StatusInternalServerError, "internal error")
}
