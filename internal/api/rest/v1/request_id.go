package v1

import (
	"github.com/MGTheTrain/aes-vault/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request id on requests and responses.
const RequestIDHeader = "X-Request-ID"

// RequestLogger assigns every request an id (reusing an incoming X-Request-ID) and logs its outcome.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()

		log.With(
			"request_id", requestID,
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"status", ctx.Writer.Status(),
		).Info("request handled")
	}
}
