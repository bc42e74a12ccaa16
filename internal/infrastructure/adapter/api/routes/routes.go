package routes

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	coreport "github.com/pennyledger/finance-tracker/internal/domain/port/core"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/config"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	ledgerHandler *handler.LedgerHandler,
	logger coreport.Logger,
) {
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)

	authorized := router.Group("/", middleware.RequireAuth(logger))
	{
		authorized.GET("/logout", authHandler.Logout)
		authorized.GET("/dashboard", ledgerHandler.Dashboard)
		authorized.POST("/dashboard", ledgerHandler.AddTransaction)
		authorized.GET("/delete/:id", ledgerHandler.Delete)
		authorized.GET("/export", ledgerHandler.Export)
	}
}

// SetupMiddlewares configures global middlewares. The session store must be
// registered before any route that touches the session.
func SetupMiddlewares(
	router *gin.Engine,
	sessionConfig config.SessionConfig,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) {
	store := cookie.NewStore([]byte(sessionConfig.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionConfig.MaxAge,
		HttpOnly: true,
	})

	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(sessions.Sessions(sessionConfig.CookieName, store))
}
