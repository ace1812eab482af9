package router

import (
	"ecotutor/internal/core"
	"ecotutor/internal/handler"
	"ecotutor/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AdminRouter struct {
	adminHandler      *handler.AdminHandler
	sessionMiddleware *middleware.Session
}

func NewAdminRouter(
	adminHandler *handler.AdminHandler,
	sessionMiddleware *middleware.Session,
) *AdminRouter {
	return &AdminRouter{
		adminHandler:      adminHandler,
		sessionMiddleware: sessionMiddleware,
	}
}

func (ar *AdminRouter) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(ar.sessionMiddleware.RequireHandler())
	admin.Use(ar.sessionMiddleware.RequireRole(core.RoleAdmin))
	{
		admin.GET("/queries", ar.adminHandler.ListQueries)
		admin.GET("/footprint", ar.adminHandler.DailyFootprint)
		admin.GET("/models", ar.adminHandler.ListModels)
	}
}
