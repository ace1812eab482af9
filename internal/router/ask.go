package router

import (
	"ecotutor/internal/handler"
	"ecotutor/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AskRouter struct {
	askHandler        *handler.AskHandler
	sessionMiddleware *middleware.Session
}

func NewAskRouter(
	askHandler *handler.AskHandler,
	sessionMiddleware *middleware.Session,
) *AskRouter {
	return &AskRouter{
		askHandler:        askHandler,
		sessionMiddleware: sessionMiddleware,
	}
}

func (ar *AskRouter) RegisterRoutes(engine *gin.Engine) {
	// soft：沒登入也放行，由查詢管線回固定拒絕訊息
	engine.POST("/ask", ar.sessionMiddleware.SoftHandler(), ar.askHandler.Ask)
}
