package dto

// 提問
type AskDto struct {
	Query string `json:"query"` // 使用者問題；空字串由 service 內判定，不用 binding
}

// 當日用量統計（能源單位 kWh、碳排單位 kg），四捨五入到小數第六位
type AskStatsDto struct {
	Count  int64   `json:"count"`
	Energy float64 `json:"energy"`
	CO2    float64 `json:"co2"`
}

// 被擋下時的固定回覆，只有拒絕訊息一個欄位
type AskRejectionDto struct {
	Response string `json:"response"`
}

// 成功取得答案時的固定回覆。
// 答案成功但入帳失敗時 stats 輸出 null，所以這裡刻意不加 omitempty。
type AskAnswerDto struct {
	Response string       `json:"response"`
	Engine   string       `json:"engine"`
	Stats    *AskStatsDto `json:"stats"`
}
