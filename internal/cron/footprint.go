package cron

import (
	"context"
	"time"

	fluentdModel "ecotutor/internal/database/fluentd/model"
	fluentdRepo "ecotutor/internal/database/fluentd/repository"
	sqliteRepo "ecotutor/internal/database/sqlite/repository"

	"go.uber.org/zap"
)

// DailyFootprintJob 把前一日（UTC）的全體查詢數與能源／碳排總量寫成一行結算 log，
// 並轉送一筆 footprint 紀錄到 Fluentd。帳本是唯一事實來源，這裡只讀不寫。
type DailyFootprintJob struct {
	logger       *zap.Logger
	queryLogRepo *sqliteRepo.QueryLogRepository
	logRepo      *fluentdRepo.LogRepository
}

func NewDailyFootprintJob(
	logger *zap.Logger,
	queryLogRepo *sqliteRepo.QueryLogRepository,
	logRepo *fluentdRepo.LogRepository,
) *DailyFootprintJob {
	return &DailyFootprintJob{
		logger:       logger,
		queryLogRepo: queryLogRepo,
		logRepo:      logRepo,
	}
}

func (job *DailyFootprintJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	totals, err := job.queryLogRepo.DailyTotals(ctx, yesterday)
	if err != nil {
		job.logger.Error("daily footprint rollup failed",
			zap.String("date", yesterday.Format("2006-01-02")),
			zap.Error(err))
		return
	}

	job.logger.Info("daily footprint",
		zap.String("date", yesterday.Format("2006-01-02")),
		zap.Int64("query_count", totals.Count),
		zap.Float64("energy_kwh", totals.TotalEnergyKWh),
		zap.Float64("co2_kg", totals.TotalCO2Kg),
	)

	if job.logRepo != nil {
		if err := job.logRepo.LogFootprint(ctx, fluentdModel.DailyFootprintLog{
			Date:       yesterday.Format("2006-01-02"),
			QueryCount: totals.Count,
			EnergyKWh:  totals.TotalEnergyKWh,
			CO2Kg:      totals.TotalCO2Kg,
		}); err != nil {
			job.logger.Warn("daily footprint forward failed", zap.Error(err))
		}
	}
}
