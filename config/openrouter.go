package config

type OpenRouter struct {
	// Chat completions endpoint，預設 https://openrouter.ai/api/v1/chat/completions
	Endpoint string `mapstructure:"ENDPOINT" json:"endpoint" yaml:"endpoint"`
	// API 金鑰（Bearer token）
	APIKey string `mapstructure:"API_KEY" json:"api_key" yaml:"api_key"`
	// 固定使用的模型識別碼
	Model string `mapstructure:"MODEL" json:"model" yaml:"model"`
	// 對外顯示的引擎名稱
	EngineLabel string `mapstructure:"ENGINE_LABEL" json:"engine_label" yaml:"engine_label"`
	// 單次呼叫逾時（秒），0 代表不限制
	TimeoutSeconds int `mapstructure:"TIMEOUT_SECONDS" json:"timeout_seconds" yaml:"timeout_seconds"`
}
