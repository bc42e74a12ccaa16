package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/pennyledger/finance-tracker/internal/domain/port/core"
)

// ErrorHandler middleware recovers from panics and returns a plain 500 page
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in request", map[string]any{
					"error":     err,
					"path":      c.Request.URL.Path,
					"method":    c.Request.Method,
					"client_ip": c.ClientIP(),
				})

				c.String(http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
