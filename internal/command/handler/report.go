package command

import (
	"context"
	"time"

	sqliteRepo "ecotutor/internal/database/sqlite/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type ReportHandler struct {
	logger       *zap.Logger
	queryLogRepo *sqliteRepo.QueryLogRepository
}

func NewReportHandler(
	logger *zap.Logger,
	queryLogRepo *sqliteRepo.QueryLogRepository,
) *ReportHandler {
	return &ReportHandler{
		logger:       logger,
		queryLogRepo: queryLogRepo,
	}
}

// Report 印出指定日（UTC）的全體查詢數與能源／碳排總量
func (handler *ReportHandler) Report(cmd *cobra.Command, args []string) {
	day := time.Now().UTC()
	if dateString, _ := cmd.Flags().GetString("date"); dateString != "" {
		parsed, parseError := time.Parse("2006-01-02", dateString)
		if parseError != nil {
			cmd.PrintErrf("invalid --date %q, expected YYYY-MM-DD\n", dateString)
			return
		}
		day = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	totals, err := handler.queryLogRepo.DailyTotals(ctx, day)
	if err != nil {
		handler.logger.Error("report query failed", zap.Error(err))
		cmd.PrintErrln("report query failed:", err)
		return
	}

	cmd.Printf("date:        %s\n", day.Format("2006-01-02"))
	cmd.Printf("queries:     %d\n", totals.Count)
	cmd.Printf("energy_kwh:  %.6f\n", totals.TotalEnergyKWh)
	cmd.Printf("co2_kg:      %.6f\n", totals.TotalCO2Kg)
}
