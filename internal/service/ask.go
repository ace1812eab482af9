package service

import (
	"context"
	"math"
	"time"

	"ecotutor/config"
	"ecotutor/internal/carbon"
	"ecotutor/internal/classifier"
	"ecotutor/internal/core"
	fluentdModel "ecotutor/internal/database/fluentd/model"
	fluentdRepo "ecotutor/internal/database/fluentd/repository"
	sqliteModel "ecotutor/internal/database/sqlite/model"
	sqliteRepo "ecotutor/internal/database/sqlite/repository"
	"ecotutor/internal/dto"
	"ecotutor/internal/service/chat"
	"ecotutor/internal/telemetry"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AskService 是查詢管線：登入檢查 → 輸入檢查 → 領域過濾 → 模型呼叫 →
// 成本估算 → 入帳 → 讀回當日彙總。每個出口都回固定格式 body，
// 管線本身不回錯誤給 handler（錯誤已轉成固定回覆或 stats null）。
type AskService struct {
	trace        *telemetry.Trace
	metric       *telemetry.Metric
	logger       *zap.Logger
	chatService  chat.Service
	queryLogRepo *sqliteRepo.QueryLogRepository
	logRepo      *fluentdRepo.LogRepository
	engineLabel  string
	model        string
}

func NewAskService(
	conf *config.Configuration,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	logger *zap.Logger,
	chatService chat.Service,
	queryLogRepo *sqliteRepo.QueryLogRepository,
	logRepo *fluentdRepo.LogRepository,
) *AskService {
	engineLabel := conf.OpenRouter.EngineLabel
	if engineLabel == "" {
		engineLabel = core.DefaultEngineLabel
	}
	model := conf.OpenRouter.Model
	if model == "" {
		model = core.DefaultCompletionModel
	}
	return &AskService{
		trace:        trace,
		metric:       metric,
		logger:       logger,
		chatService:  chatService,
		queryLogRepo: queryLogRepo,
		logRepo:      logRepo,
		engineLabel:  engineLabel,
		model:        model,
	}
}

// Ask 跑完整條管線，回傳要序列化的 body。
// username 為空字串代表未登入（session middleware 沒放人）。
func (s *AskService) Ask(ctx context.Context, username string, askDto *dto.AskDto) any {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	query := askDto.Query
	traceMetadata := core.TraceAskMeta{
		Username:   username,
		QueryChars: len(query),
	}

	if username == "" {
		traceMetadata.Outcome = core.QueryOutcomeUnauthorized
		s.trace.ApplyTraceAttributes(span, traceMetadata)
		s.countQuery(core.QueryOutcomeUnauthorized)
		return &dto.AskRejectionDto{Response: core.MsgLoginRequired}
	}

	// 只有完全空字串算無效輸入；純空白會走領域過濾，由關鍵字閘拒絕
	if query == "" {
		traceMetadata.Outcome = core.QueryOutcomeInvalidInput
		s.trace.ApplyTraceAttributes(span, traceMetadata)
		s.countQuery(core.QueryOutcomeInvalidInput)
		return &dto.AskRejectionDto{Response: core.MsgInvalidQuery}
	}

	if !classifier.IsInDomain(query) {
		traceMetadata.Outcome = core.QueryOutcomeDomainRejected
		s.trace.ApplyTraceAttributes(span, traceMetadata)
		s.countQuery(core.QueryOutcomeDomainRejected)
		return &dto.AskRejectionDto{Response: core.MsgDomainRejected}
	}

	answer, completeError := s.chatService.Complete(ctx, query)
	if completeError != nil {
		s.logger.Warn("completion gateway failed",
			zap.String("username", username),
			zap.Error(completeError))
		traceMetadata.Outcome = core.QueryOutcomeGatewayFailed
		s.trace.ApplyTraceAttributes(span, traceMetadata)
		s.countQuery(core.QueryOutcomeGatewayFailed)
		if s.metric.GatewayFailTotal != nil {
			s.metric.GatewayFailTotal.Inc()
		}
		return &dto.AskRejectionDto{Response: core.MsgGatewayDown}
	}

	// 固定成本模型：kWh/查詢 × 電網排放係數，與查詢長短無關
	energyKWh, co2Kg := carbon.Estimate()
	traceMetadata.Outcome = core.QueryOutcomeAccepted
	traceMetadata.EnergyKWh = energyKWh
	traceMetadata.CO2Kg = co2Kg
	s.countQuery(core.QueryOutcomeAccepted)
	if s.metric.EnergyKWhTotal != nil {
		s.metric.EnergyKWhTotal.Add(energyKWh)
		s.metric.CO2KgTotal.Add(co2Kg)
	}

	s.logUsage(ctx, username, len(query), energyKWh, co2Kg)

	now := time.Now().UTC()
	entry := &sqliteModel.QueryLogEntry{
		Username:     username,
		QueryText:    query,
		ResponseText: answer,
		EnergyKWh:    energyKWh,
		CO2Kg:        co2Kg,
		CreatedAt:    now,
	}
	if recordError := s.queryLogRepo.Record(ctx, entry); recordError != nil {
		// 答案已經拿到，帳記不進去就回答案但 stats 給 null
		s.logger.Error("ledger record failed",
			zap.String("username", username),
			zap.Error(recordError))
		if s.metric.LedgerFailTotal != nil {
			s.metric.LedgerFailTotal.Inc()
		}
		s.trace.ApplyTraceAttributes(span, traceMetadata)
		return &dto.AskAnswerDto{Response: answer, Engine: s.engineLabel, Stats: nil}
	}

	summary, summaryError := s.queryLogRepo.DailySummary(ctx, username, now)
	if summaryError != nil {
		s.logger.Error("daily summary read failed",
			zap.String("username", username),
			zap.Error(summaryError))
		if s.metric.LedgerFailTotal != nil {
			s.metric.LedgerFailTotal.Inc()
		}
		s.trace.ApplyTraceAttributes(span, traceMetadata)
		return &dto.AskAnswerDto{Response: answer, Engine: s.engineLabel, Stats: nil}
	}

	traceMetadata.DayCount = summary.Count
	s.trace.ApplyTraceAttributes(span, traceMetadata)

	return &dto.AskAnswerDto{
		Response: answer,
		Engine:   s.engineLabel,
		Stats: &dto.AskStatsDto{
			Count:  summary.Count,
			Energy: roundToMicro(summary.TotalEnergyKWh),
			CO2:    roundToMicro(summary.TotalCO2Kg),
		},
	}
}

func (s *AskService) countQuery(outcome string) {
	if s.metric.QueriesTotal != nil {
		s.metric.QueriesTotal.WithLabelValues(outcome).Inc()
	}
}

// 用量 log 只是旁路分析資料，送不出去不影響回覆
func (s *AskService) logUsage(ctx context.Context, username string, queryChars int, energyKWh, co2Kg float64) {
	if s.logRepo == nil {
		return
	}
	usage := fluentdModel.CarbonUsageLog{
		RequestID:  uuid.NewString(),
		Username:   username,
		Model:      s.model,
		QueryChars: queryChars,
		EnergyKWh:  energyKWh,
		CO2Kg:      co2Kg,
	}
	if logError := s.logRepo.LogUsage(ctx, usage); logError != nil {
		s.logger.Warn("usage log forward failed", zap.Error(logError))
	}
}

// 彙總輸出固定四捨五入到小數第六位
func roundToMicro(value float64) float64 {
	return math.Round(value*1e6) / 1e6
}
