package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecotutor/config"
	"ecotutor/internal/database/client"
	"ecotutor/internal/database/sqlite/model"
	"ecotutor/internal/telemetry"
)

func newTestRepository(t *testing.T) *QueryLogRepository {
	t.Helper()

	conf := &config.Configuration{}
	conf.Ledger.Path = filepath.Join(t.TempDir(), "ledger.db")

	sqliteClient, cleanup, err := client.NewSQLiteClient(zap.NewNop(), conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	return NewQueryLogRepository(trace, sqliteClient)
}

func TestQueryLogRepository_RecordThenDailySummary(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	entry := &model.QueryLogEntry{
		Username:     "alice",
		QueryText:    "explain dbms normalization",
		ResponseText: "Normalization organizes tables to reduce redundancy.",
		EnergyKWh:    0.00034,
		CO2Kg:        0.000238,
		CreatedAt:    now,
	}
	require.NoError(t, repo.Record(ctx, entry))
	require.NotZero(t, entry.ID)

	summary, err := repo.DailySummary(ctx, "alice", now)
	require.NoError(t, err)
	require.EqualValues(t, 1, summary.Count)
	require.InDelta(t, 0.00034, summary.TotalEnergyKWh, 1e-12)
	require.InDelta(t, 0.000238, summary.TotalCO2Kg, 1e-12)
}

func TestQueryLogRepository_DailySummaryEmpty(t *testing.T) {
	repo := newTestRepository(t)

	summary, err := repo.DailySummary(context.Background(), "nobody", time.Now().UTC())
	require.NoError(t, err)
	require.EqualValues(t, 0, summary.Count)
	require.Zero(t, summary.TotalEnergyKWh)
	require.Zero(t, summary.TotalCO2Kg)
}

func TestQueryLogRepository_DailySummaryDayBoundary(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	dayOne := time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)
	dayTwo := time.Date(2026, 3, 15, 0, 0, 1, 0, time.UTC)
	for _, createdAt := range []time.Time{dayOne, dayTwo} {
		require.NoError(t, repo.Record(ctx, &model.QueryLogEntry{
			Username:     "alice",
			QueryText:    "what is a primary key",
			ResponseText: "ok",
			EnergyKWh:    0.00034,
			CO2Kg:        0.000238,
			CreatedAt:    createdAt,
		}))
	}

	summary, err := repo.DailySummary(ctx, "alice", dayOne)
	require.NoError(t, err)
	require.EqualValues(t, 1, summary.Count)

	summary, err = repo.DailySummary(ctx, "alice", dayTwo)
	require.NoError(t, err)
	require.EqualValues(t, 1, summary.Count)
}

func TestQueryLogRepository_DailySummaryPerUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	for _, username := range []string{"alice", "alice", "bob"} {
		require.NoError(t, repo.Record(ctx, &model.QueryLogEntry{
			Username:     username,
			QueryText:    "define erd",
			ResponseText: "ok",
			EnergyKWh:    0.00034,
			CO2Kg:        0.000238,
			CreatedAt:    now,
		}))
	}

	summary, err := repo.DailySummary(ctx, "alice", now)
	require.NoError(t, err)
	require.EqualValues(t, 2, summary.Count)

	summary, err = repo.DailySummary(ctx, "bob", now)
	require.NoError(t, err)
	require.EqualValues(t, 1, summary.Count)
}

func TestQueryLogRepository_DailyTotals(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	for _, username := range []string{"alice", "bob", "carol"} {
		require.NoError(t, repo.Record(ctx, &model.QueryLogEntry{
			Username:     username,
			QueryText:    "sql joins",
			ResponseText: "ok",
			EnergyKWh:    0.00034,
			CO2Kg:        0.000238,
			CreatedAt:    now,
		}))
	}

	totals, err := repo.DailyTotals(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 3, totals.Count)
	require.InDelta(t, 3*0.00034, totals.TotalEnergyKWh, 1e-12)
	require.InDelta(t, 3*0.000238, totals.TotalCO2Kg, 1e-12)
}

func TestQueryLogRepository_AllEntriesNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Record(ctx, &model.QueryLogEntry{
			Username:     "alice",
			QueryText:    "query",
			ResponseText: "ok",
			EnergyKWh:    0.00034,
			CO2Kg:        0.000238,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := repo.AllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.True(t, entries[0].CreatedAt.After(entries[1].CreatedAt))
	require.True(t, entries[1].CreatedAt.After(entries[2].CreatedAt))
	require.Equal(t, base.Add(2*time.Minute), entries[0].CreatedAt)
}
