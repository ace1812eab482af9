package middleware

import (
	"strings"

	"ecotutor/internal/core"
	cErr "ecotutor/internal/pkg/error"
	"ecotutor/internal/pkg/response"
	"ecotutor/internal/service"
	"ecotutor/internal/telemetry"
	"ecotutor/utils/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Session struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewSession(
	logger *zap.Logger,
	trace *telemetry.Trace,
	authService *service.AuthService,
) *Session {
	return &Session{
		logger:      logger,
		trace:       trace,
		authService: authService,
	}
}

// SoftHandler 盡力還原登入者身分，但不擋請求。
// /ask 用這個：沒登入也要進 service，由管線回固定的拒絕訊息。
func (m *Session) SoftHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanSessionMiddleware))

		claims, err := m.resolve(c)
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceSessionMeta{Status: "anonymous"})
			end(nil)
			c.Next()
			return
		}

		m.trace.ApplyTraceAttributes(span, core.TraceSessionMeta{
			Username: claims.Username,
			Status:   "authenticated",
		})
		m.setIdentity(c, claims)
		end(nil)
		c.Next()
	}
}

// RequireHandler 強制登入，驗不過直接 401
func (m *Session) RequireHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanSessionMiddleware))

		claims, err := m.resolve(c)
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceSessionMeta{Status: "rejected"})
			response.AbortWithError(c, err)
			end(err)
			return
		}

		m.trace.ApplyTraceAttributes(span, core.TraceSessionMeta{
			Username: claims.Username,
			Status:   "authenticated",
		})
		m.setIdentity(c, claims)
		end(nil)
		c.Next()
	}
}

// RequireRole 角色檢查，掛在 RequireHandler 之後
func (m *Session) RequireRole(role core.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawRole, ok := c.Get(core.ContextRoleKey)
		if !ok || rawRole.(core.Role) != role {
			err := cErr.Forbidden("insufficient role")
			response.AbortWithError(c, err)
			return
		}
		c.Next()
	}
}

// resolve 驗 JWT 簽章，再確認 session 還在 Redis 白名單
func (m *Session) resolve(c *gin.Context) (*core.Claims, error) {
	authorization := c.GetHeader("Authorization")
	if authorization == "" {
		return nil, cErr.Unauthorized("missing authorization header")
	}
	tokenString := strings.TrimPrefix(authorization, "Bearer ")
	if tokenString == authorization || tokenString == "" {
		return nil, cErr.Unauthorized("malformed authorization header")
	}

	claims, parseError := m.authService.ParseToken(tokenString)
	if parseError != nil {
		return nil, parseError
	}
	username, verifyError := m.authService.VerifySession(c.Request.Context(), claims.SessionID)
	if verifyError != nil {
		return nil, verifyError
	}
	// token 身分與 session 記錄不一致就當作無效
	if username != claims.Username {
		return nil, cErr.InvalidSession("session username mismatch")
	}
	// 舊版或竄改過的 token 可能帶未知角色
	if !validate.IsValidRole(string(claims.Role)) {
		return nil, cErr.InvalidSession("unknown role in token")
	}
	return claims, nil
}

func (m *Session) setIdentity(c *gin.Context, claims *core.Claims) {
	c.Set(core.ContextUsernameKey, claims.Username)
	c.Set(core.ContextRoleKey, claims.Role)
	c.Set(core.ContextSessionIDKey, claims.SessionID)
}
