package middleware

import (
	"strings"

	"todolist-api/internal/apperr"
	"todolist-api/internal/auth"
	"todolist-api/internal/config"
	"todolist-api/internal/dto"
	"todolist-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with a generated id and enriches the
// context logger with it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		ctx := logger.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Auth verifies the bearer token and places the principal into the
// request context. Failures go through the error translator like every
// other AccessDenied.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			logger.Debug(ctx, "Missing or invalid Authorization header")
			abort(c, apperr.AccessDeniedf("Authentication required"))
			return
		}
		secret := config.Get().JWTSecret
		if secret == "" {
			abort(c, apperr.New(apperr.Unknown, "Server misconfiguration"))
			return
		}
		principal, err := auth.ParseToken(strings.TrimSpace(header[len(prefix):]), secret)
		if err != nil {
			logger.Debug(ctx, "JWT parse failed", "error", err)
			abort(c, apperr.AccessDeniedf("Invalid or expired token"))
			return
		}
		c.Request = c.Request.WithContext(auth.WithPrincipal(ctx, principal))
		c.Next()
	}
}

// ErrorTranslator is the single catch point for handler failures: it maps
// the failure kind to a status and renders the uniform error body.
// Conflict and constraint violations render status-only.
func ErrorTranslator() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status := apperr.Status(err)
		ctx := c.Request.Context()
		if status >= 500 {
			logger.Error(ctx, "Unhandled failure", "error", err)
		} else {
			logger.Debug(ctx, "Request failed", "status", status, "error", err)
		}
		if apperr.Bodyless(err) {
			c.Status(status)
			return
		}
		c.JSON(status, dto.NewErrorResponse(status, err.Error()))
	}
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
