package handler

import (
	"ecotutor/internal/core"
	"ecotutor/internal/dto"
	"ecotutor/internal/pkg/response"
	"ecotutor/internal/service"
	"ecotutor/internal/telemetry"
	"ecotutor/utils/validate"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuthHandler(trace *telemetry.Trace, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{trace: trace, authService: authService}
}

// Signup 註冊
// @Summary 建立帳號
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.SignupDto true "帳號資訊"
// @Success 201 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	signupDto := &dto.SignupDto{}
	if cause, respErr := validate.BindAndValidate(c, signupDto); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.authService.Signup(ctx, signupDto); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, gin.H{"username": signupDto.Username})
}

// Login 登入
// @Summary 驗證帳密並簽發 token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginDto true "帳密"
// @Success 200 {object} dto.TokenResponseDto
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	loginDto := &dto.LoginDto{}
	if cause, respErr := validate.BindAndValidate(c, loginDto); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	token, err := h.authService.Login(ctx, loginDto)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, token)
}

// Logout 登出
// @Summary 撤銷目前 session
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	sessionID := c.GetString(core.ContextSessionIDKey)
	if err := h.authService.Logout(ctx, sessionID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Logged out"})
}
