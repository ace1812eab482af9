package model

import "time"

// QueryLogEntry 是一筆被接受查詢的帳本紀錄。
// append-only：本服務不更新、不刪除既有列。
type QueryLogEntry struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	QueryText    string    `json:"query_text"`
	ResponseText string    `json:"response_text"`
	EnergyKWh    float64   `json:"energy_kwh"`
	CO2Kg        float64   `json:"co2_kg"`
	CreatedAt    time.Time `json:"created_at"` // 寫入時間，UTC，不可變
}

// DailyUsageSummary 是某使用者當日的彙總（衍生值，不落地）。
// 當日無任何紀錄時，三個欄位皆為零值，不會是 null/缺漏。
type DailyUsageSummary struct {
	Count          int64   `json:"count"`
	TotalEnergyKWh float64 `json:"total_energy_kwh"`
	TotalCO2Kg     float64 `json:"total_co2_kg"`
}
