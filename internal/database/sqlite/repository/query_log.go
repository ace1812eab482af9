package repository

import (
	"context"
	"database/sql"
	"time"

	"ecotutor/internal/core"
	"ecotutor/internal/database/client"
	"ecotutor/internal/database/sqlite/model"
	"ecotutor/internal/telemetry"
)

// created_at 以 UTC 字串落地，讓 SQLite 的 DATE() 可直接做日界彙總
const createdAtLayout = "2006-01-02 15:04:05"
const dayLayout = "2006-01-02"

type QueryLogRepository struct {
	trace *telemetry.Trace
	db    *sql.DB
}

func NewQueryLogRepository(trace *telemetry.Trace, sqliteClient *client.SQLiteClient) *QueryLogRepository {
	return &QueryLogRepository{trace: trace, db: sqliteClient.DB()}
}

// Record 追加一筆帳本紀錄。created_at 由此處寫入（UTC）。
func (repository *QueryLogRepository) Record(
	contextValue context.Context,
	entry *model.QueryLogEntry,
) (returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceLedgerMeta{
		Op:       "record",
		Username: entry.Username,
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	result, execError := repository.db.ExecContext(contextValue, `
		INSERT INTO query_logs (username, query_text, response_text, energy_kwh, co2_kg, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Username, entry.QueryText, entry.ResponseText,
		entry.EnergyKWh, entry.CO2Kg, entry.CreatedAt.UTC().Format(createdAtLayout),
	)
	if execError != nil {
		returnedError = execError
		return returnedError
	}
	if id, idError := result.LastInsertId(); idError == nil {
		entry.ID = id
	}
	return nil
}

// DailySummary 計算某使用者在 day（UTC 日曆日）的 count/sum 彙總。
// 同一個 *sql.DB 上 Record 之後立即呼叫，必定能看到剛寫入的那一列。
func (repository *QueryLogRepository) DailySummary(
	contextValue context.Context,
	username string,
	day time.Time,
) (_ *model.DailyUsageSummary, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	dayString := day.UTC().Format(dayLayout)
	traceMetadata := core.TraceLedgerMeta{
		Op:       "daily_summary",
		Username: username,
		Day:      dayString,
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	row := repository.db.QueryRowContext(contextValue, `
		SELECT COUNT(*), COALESCE(SUM(energy_kwh), 0), COALESCE(SUM(co2_kg), 0)
		FROM query_logs
		WHERE username = ? AND DATE(created_at) = ?`,
		username, dayString,
	)

	var summary model.DailyUsageSummary
	if returnedError = row.Scan(&summary.Count, &summary.TotalEnergyKWh, &summary.TotalCO2Kg); returnedError != nil {
		return nil, returnedError
	}

	traceMetadata.Count = summary.Count
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return &summary, nil
}

// DailyTotals 計算 day 當日全部使用者的彙總（每日快照 cron 用）。
func (repository *QueryLogRepository) DailyTotals(
	contextValue context.Context,
	day time.Time,
) (_ *model.DailyUsageSummary, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	dayString := day.UTC().Format(dayLayout)
	traceMetadata := core.TraceLedgerMeta{
		Op:  "daily_totals",
		Day: dayString,
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	row := repository.db.QueryRowContext(contextValue, `
		SELECT COUNT(*), COALESCE(SUM(energy_kwh), 0), COALESCE(SUM(co2_kg), 0)
		FROM query_logs
		WHERE DATE(created_at) = ?`,
		dayString,
	)

	var summary model.DailyUsageSummary
	if returnedError = row.Scan(&summary.Count, &summary.TotalEnergyKWh, &summary.TotalCO2Kg); returnedError != nil {
		return nil, returnedError
	}
	return &summary, nil
}

// AllEntries 列舉完整帳本，最新在前（管理端用）。
func (repository *QueryLogRepository) AllEntries(
	contextValue context.Context,
) (_ []*model.QueryLogEntry, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceLedgerMeta{Op: "all_entries"}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	rows, queryError := repository.db.QueryContext(contextValue, `
		SELECT id, username, query_text, response_text, energy_kwh, co2_kg, created_at
		FROM query_logs
		ORDER BY created_at DESC, id DESC`,
	)
	if queryError != nil {
		returnedError = queryError
		return nil, returnedError
	}
	defer rows.Close()

	var entries []*model.QueryLogEntry
	for rows.Next() {
		var entry model.QueryLogEntry
		var createdAtString string
		if scanError := rows.Scan(
			&entry.ID, &entry.Username, &entry.QueryText, &entry.ResponseText,
			&entry.EnergyKWh, &entry.CO2Kg, &createdAtString,
		); scanError != nil {
			returnedError = scanError
			return nil, returnedError
		}
		createdAt, parseError := time.ParseInLocation(createdAtLayout, createdAtString, time.UTC)
		if parseError != nil {
			returnedError = parseError
			return nil, returnedError
		}
		entry.CreatedAt = createdAt
		entries = append(entries, &entry)
	}
	if rowsError := rows.Err(); rowsError != nil {
		returnedError = rowsError
		return nil, returnedError
	}

	traceMetadata.Count = int64(len(entries))
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return entries, nil
}
