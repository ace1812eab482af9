package config

type Ledger struct {
	// SQLite 檔案路徑（帳本資料庫）
	Path string `mapstructure:"PATH" json:"path" yaml:"path"`
}
