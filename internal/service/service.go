package service

import (
	"net/http"
	"time"

	"ecotutor/config"
	"ecotutor/internal/core"
	"ecotutor/internal/service/chat"
	"ecotutor/internal/service/models"

	"github.com/google/wire"
)

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	ProvideHTTPClient,
	chat.NewOpenRouterService,
	models.NewOpenRouterService,
	NewAskService,
	NewAuthService,
	NewAdminService,
	NewHealthService,
)

// ProvideHTTPClient 上游呼叫共用一個 client（連線池共用）
func ProvideHTTPClient(conf *config.Configuration) *http.Client {
	timeoutSeconds := conf.OpenRouter.TimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = core.DefaultGatewayTimeoutSecs
	}
	return &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second}
}
