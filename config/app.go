package config

type App struct {
	// 當前開發環境
	Env string `mapstructure:"ENV" json:"env" yaml:"env"`
	// 服務端口
	Port uint32 `mapstructure:"PORT" json:"port" yaml:"port"`
	// 服務名稱
	Name string `mapstructure:"NAME" json:"name" yaml:"name"`
	// 服務版本
	Version string `mapstructure:"VERSION" json:"version" yaml:"version"`
	// Secret Key 用於簽署 session token
	SecretKey string `mapstructure:"SECRET_KEY" json:"secret_key" yaml:"secret_key"`
	// Session token 有效時間（分鐘）
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES" json:"session_ttl_minutes" yaml:"session_ttl_minutes"`
	// 指定的管理員帳號：用這個 username 註冊會直接拿到 admin 角色
	AdminUsername  string `mapstructure:"ADMIN_USERNAME" json:"admin_username" yaml:"admin_username"`
	SwaggerEnabled bool   `mapstructure:"SWAGGER_ENABLED" json:"swagger_enabled" yaml:"swagger_enabled"`
}
