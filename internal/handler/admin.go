package handler

import (
	"time"

	cErr "ecotutor/internal/pkg/error"
	"ecotutor/internal/pkg/response"
	"ecotutor/internal/service"
	"ecotutor/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	trace        *telemetry.Trace
	adminService *service.AdminService
}

func NewAdminHandler(trace *telemetry.Trace, adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{trace: trace, adminService: adminService}
}

// ListQueries 完整帳本
// @Summary 列出全部查詢紀錄（最新在前）
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.QueryLogListResponseDto
// @Router /admin/queries [get]
func (h *AdminHandler) ListQueries(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	queries, err := h.adminService.ListQueries(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, queries)
}

// DailyFootprint 某日全體用量
// @Summary 某日（UTC）的查詢數與能源／碳排總量
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param date query string false "YYYY-MM-DD，預設今天（UTC）"
// @Success 200 {object} dto.DailyFootprintResponseDto
// @Router /admin/footprint [get]
func (h *AdminHandler) DailyFootprint(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	day := time.Now().UTC()
	if dateString := c.Query("date"); dateString != "" {
		parsed, parseError := time.Parse("2006-01-02", dateString)
		if parseError != nil {
			response.AbortWithError(c, cErr.ValidatePathParamsErr("date must be YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	footprint, err := h.adminService.DailyFootprint(ctx, day)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, footprint)
}

// ListModels 上游模型清單
// @Summary 查上游目前可用的模型
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ListResponse
// @Router /admin/models [get]
func (h *AdminHandler) ListModels(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	list, err := h.adminService.ListModels(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, list)
}
