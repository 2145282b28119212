package middleware

import (
	"strconv"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/starevents/starevents-api/internal/metrics"
	"github.com/starevents/starevents-api/internal/telemetry"
)

// AccessLog writes one zap line per request and counts it in prometheus.
func AccessLog() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		status := ctx.Writer.Status()
		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequest(ctx.Request.Method, route, strconv.Itoa(status))

		fields := []zap.Field{
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("trace_id", telemetry.TraceID(ctx.Request.Context())),
			zap.Int("status", status),
			zap.String("method", ctx.Request.Method),
			zap.String("path", path),
			zap.String("ip", ctx.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if userID := ctx.GetUint(ContextKeyUserID); userID != 0 {
			fields = append(fields, zap.Uint("user_id", userID))
		}
		if len(ctx.Errors) > 0 {
			fields = append(fields, zap.String("errors", ctx.Errors.String()))
		}

		switch {
		case status >= 500:
			zap.L().Error("request failed", fields...)
		case status >= 400:
			zap.L().Warn("request rejected", fields...)
		default:
			zap.L().Info("request", fields...)
		}
	}
}
