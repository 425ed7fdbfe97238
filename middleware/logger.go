package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/respond"
)

// RequestLogger logs one line per completed request.
func RequestLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		evt := logger.Info()
		if status >= http.StatusInternalServerError {
			evt = logger.Error()
		}
		evt.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", c.GetString(CtxUserID)).
			Msg("request completed")
	}
}

// Recover turns handler panics into a 500 instead of killing the process.
func Recover(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("handler panicked")
				respond.AbortFail(c, http.StatusInternalServerError, respond.KindInternal, "Internal server error")
			}
		}()
		c.Next()
	}
}
