package config

type Configuration struct {
	App        App             `mapstructure:"APP" json:"app" yaml:"app"`
	Log        Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	OpenRouter OpenRouter      `mapstructure:"OPENROUTER" json:"openrouter" yaml:"openrouter"`
	Ledger     Ledger          `mapstructure:"LEDGER" json:"ledger" yaml:"ledger"`
	MongoDB    MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Redis      Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	Fluentd    Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
	Telemetry  TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
}
