package service

import (
	"context"
	"time"

	sqliteRepo "ecotutor/internal/database/sqlite/repository"
	"ecotutor/internal/dto"
	cErr "ecotutor/internal/pkg/error"
	"ecotutor/internal/service/models"
	"ecotutor/internal/telemetry"
)

type AdminService struct {
	trace         *telemetry.Trace
	queryLogRepo  *sqliteRepo.QueryLogRepository
	modelsService models.Service
}

func NewAdminService(
	trace *telemetry.Trace,
	queryLogRepo *sqliteRepo.QueryLogRepository,
	modelsService models.Service,
) *AdminService {
	return &AdminService{
		trace:         trace,
		queryLogRepo:  queryLogRepo,
		modelsService: modelsService,
	}
}

// ListQueries 回傳完整帳本，最新在前
func (s *AdminService) ListQueries(ctx context.Context) (*dto.QueryLogListResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	entries, listError := s.queryLogRepo.AllEntries(ctx)
	if listError != nil {
		return nil, cErr.DatabaseError("database ListQueries error")
	}

	response := &dto.QueryLogListResponseDto{
		Total:   len(entries),
		Entries: make([]*dto.QueryLogResponseDto, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, &dto.QueryLogResponseDto{
			ID:           entry.ID,
			Username:     entry.Username,
			QueryText:    entry.QueryText,
			ResponseText: entry.ResponseText,
			EnergyKWh:    entry.EnergyKWh,
			CO2Kg:        entry.CO2Kg,
			CreatedAt:    entry.CreatedAt,
		})
	}
	return response, nil
}

// DailyFootprint 回傳某日（UTC）全體查詢數與能源／碳排總量
func (s *AdminService) DailyFootprint(ctx context.Context, day time.Time) (*dto.DailyFootprintResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	totals, totalsError := s.queryLogRepo.DailyTotals(ctx, day)
	if totalsError != nil {
		return nil, cErr.DatabaseError("database DailyFootprint error")
	}
	return &dto.DailyFootprintResponseDto{
		Date:        day.UTC().Format("2006-01-02"),
		QueryCount:  totals.Count,
		EnergyKWh:   roundToMicro(totals.TotalEnergyKWh),
		CO2Kg:       roundToMicro(totals.TotalCO2Kg),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ListModels 查上游目前可用的模型（除錯／盤點用）
func (s *AdminService) ListModels(ctx context.Context) (*models.ListResponse, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	response, listError := s.modelsService.List(ctx)
	if listError != nil {
		return nil, cErr.From(listError)
	}
	return response, nil
}
