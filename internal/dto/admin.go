package dto

import "time"

// 管理端：單筆帳本紀錄
type QueryLogResponseDto struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	QueryText    string    `json:"query_text"`
	ResponseText string    `json:"response_text"`
	EnergyKWh    float64   `json:"energy_kwh"`
	CO2Kg        float64   `json:"co2_kg"`
	CreatedAt    time.Time `json:"created_at"`
}

// 管理端：完整帳本（最新在前）
type QueryLogListResponseDto struct {
	Total   int                    `json:"total"`
	Entries []*QueryLogResponseDto `json:"entries"`
}

// 管理端：某日全體用量快照
type DailyFootprintResponseDto struct {
	Date        string  `json:"date"` // YYYY-MM-DD（UTC）
	QueryCount  int64   `json:"query_count"`
	EnergyKWh   float64 `json:"energy_kwh"`
	CO2Kg       float64 `json:"co2_kg"`
	GeneratedAt string  `json:"generated_at"`
}
