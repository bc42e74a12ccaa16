package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	coreport "github.com/pennyledger/finance-tracker/internal/domain/port/core"
)

// SessionUserKey is the session key holding the authenticated user's id
const SessionUserKey = "user_id"

// contextUserKey is the gin context key set by RequireAuth
const contextUserKey = "currentUserID"

// RequireAuth redirects unauthenticated requests to the login page and puts
// the authenticated user's id on the request context for handlers.
func RequireAuth(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		userID, ok := session.Get(SessionUserKey).(uint64)
		if !ok || userID == 0 {
			logger.Debug("Unauthenticated request redirected to login", map[string]any{
				"path": c.Request.URL.Path,
			})
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(contextUserKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id set by RequireAuth.
// It is zero on routes that skipped the middleware.
func CurrentUserID(c *gin.Context) uint64 {
	userID, _ := c.Get(contextUserKey)
	id, _ := userID.(uint64)
	return id
}

// SetSessionUser binds the session to the given user id after login
func SetSessionUser(c *gin.Context, userID uint64) error {
	session := sessions.Default(c)
	session.Set(SessionUserKey, userID)
	return session.Save()
}

// ClearSessionUser tears down the authenticated session on logout
func ClearSessionUser(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(SessionUserKey)
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}
