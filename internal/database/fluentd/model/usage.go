package model

// CarbonUsageLog 每筆被接受的查詢送出一筆，供離線用量／碳排分析
type CarbonUsageLog struct {
	RequestID  string  `bson:"request_id" json:"request_id"`
	Username   string  `bson:"username" json:"username"`
	Model      string  `bson:"model" json:"model"`
	QueryChars int     `bson:"query_chars" json:"query_chars"`
	EnergyKWh  float64 `bson:"energy_kwh" json:"energy_kwh"`
	CO2Kg      float64 `bson:"co2_kg" json:"co2_kg"`
	Version    string  `bson:"version,omitempty" json:"version,omitempty"`
	LoggedAt   string  `bson:"logged_at" json:"logged_at"`
}

// DailyFootprintLog 每日結算送出一筆，為全體使用者前一日的總量
type DailyFootprintLog struct {
	Date       string  `bson:"date" json:"date"`
	QueryCount int64   `bson:"query_count" json:"query_count"`
	EnergyKWh  float64 `bson:"energy_kwh" json:"energy_kwh"`
	CO2Kg      float64 `bson:"co2_kg" json:"co2_kg"`
	Version    string  `bson:"version,omitempty" json:"version,omitempty"`
	LoggedAt   string  `bson:"logged_at" json:"logged_at"`
}
