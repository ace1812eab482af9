package core

// ProviderName
type ProviderName string

const (
	ProviderOpenRouter ProviderName = "openrouter"
)

const (
	// OpenRouter 預設端點與模型（config 未指定時使用）
	OpenRouterAPIBaseURL      = "https://openrouter.ai/api"
	OpenRouterChatEndpoint    = "/v1/chat/completions"
	OpenRouterModelsEndpoint  = "/v1/models"
	DefaultCompletionModel    = "openai/gpt-3.5-turbo"
	DefaultEngineLabel        = "GPT-3.5 Turbo (Estimated)"
	DefaultGatewayTimeoutSecs = 60
)

// 固定回覆字串（對外 wire contract 的一部分，不可改字）
const (
	MsgLoginRequired  = "Please login first"
	MsgInvalidQuery   = "Please enter a valid query."
	MsgDomainRejected = "Query not matched. Kindly enter BCA related concepts."
	MsgGatewayDown    = "AI service is currently unavailable."
)

// ContextUsernameKey 由 session middleware 寫入、handler 讀取
const ContextUsernameKey = "username"

// ContextRoleKey 同上，放 core.Role
const ContextRoleKey = "role"

// ContextSessionIDKey 同上，登出時要拿它刪 Redis session
const ContextSessionIDKey = "session_id"
