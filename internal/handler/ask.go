package handler

import (
	"net/http"

	"ecotutor/internal/core"
	"ecotutor/internal/dto"
	"ecotutor/internal/service"
	"ecotutor/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type AskHandler struct {
	trace      *telemetry.Trace
	askService *service.AskService
}

func NewAskHandler(trace *telemetry.Trace, askService *service.AskService) *AskHandler {
	return &AskHandler{trace: trace, askService: askService}
}

// Ask 提問
// @Summary 提交一個 BCA 領域問題
// @Description 未登入、空白輸入、非領域問題都回固定拒絕訊息；成功時帶答案與當日統計
// @Tags Ask
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.AskDto true "問題"
// @Success 200 {object} dto.AskAnswerDto
// @Router /ask [post]
func (h *AskHandler) Ask(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	// body 解不開 / 缺 query 視同空輸入，由管線回固定訊息
	askDto := &dto.AskDto{}
	_ = c.ShouldBindJSON(askDto)

	username := c.GetString(core.ContextUsernameKey)
	body := h.askService.Ask(ctx, username, askDto)

	// 輸出固定線上格式，不走統一回應包裝
	c.Set("passthrough_raw", true)
	c.JSON(http.StatusOK, body)
}
