package router

import (
	"ecotutor/internal/handler"
	"ecotutor/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthRouter struct {
	authHandler       *handler.AuthHandler
	sessionMiddleware *middleware.Session
}

func NewAuthRouter(
	authHandler *handler.AuthHandler,
	sessionMiddleware *middleware.Session,
) *AuthRouter {
	return &AuthRouter{
		authHandler:       authHandler,
		sessionMiddleware: sessionMiddleware,
	}
}

func (ar *AuthRouter) RegisterRoutes(engine *gin.Engine) {
	auth := engine.Group("/auth")
	{
		auth.POST("/signup", ar.authHandler.Signup)
		auth.POST("/login", ar.authHandler.Login)
		auth.POST("/logout", ar.sessionMiddleware.RequireHandler(), ar.authHandler.Logout)
	}
}
