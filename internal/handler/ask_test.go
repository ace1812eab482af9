package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecotutor/config"
	"ecotutor/internal/core"
	"ecotutor/internal/database/client"
	sqliteRepo "ecotutor/internal/database/sqlite/repository"
	"ecotutor/internal/service"
	"ecotutor/internal/telemetry"
)

type cannedChatService struct{ answer string }

func (s cannedChatService) Complete(ctx context.Context, query string) (string, error) {
	return s.answer, nil
}

func newAskTestRouter(t *testing.T, asUser string) (*gin.Engine, *client.SQLiteClient) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Configuration{}
	conf.Ledger.Path = filepath.Join(t.TempDir(), "ledger.db")

	sqliteClient, cleanup, err := client.NewSQLiteClient(zap.NewNop(), conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	queryLogRepo := sqliteRepo.NewQueryLogRepository(trace, sqliteClient)
	askService := service.NewAskService(
		conf, trace, telemetry.NewMetric(nil), zap.NewNop(),
		cannedChatService{answer: "Indexes speed up lookups at the cost of writes."},
		queryLogRepo, nil,
	)
	askHandler := NewAskHandler(trace, askService)

	engine := gin.New()
	engine.POST("/ask", func(c *gin.Context) {
		if asUser != "" {
			c.Set(core.ContextUsernameKey, asUser)
		}
		c.Next()
	}, askHandler.Ask)
	return engine, sqliteClient
}

func postAsk(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(recorder, request)
	return recorder
}

func TestAskEndpoint_AnonymousGetsLoginMessage(t *testing.T) {
	engine, _ := newAskTestRouter(t, "")

	recorder := postAsk(engine, `{"query":"explain dbms"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, core.MsgLoginRequired, body["response"])
	// 拒絕回覆只有一個欄位
	require.Len(t, body, 1)
}

func TestAskEndpoint_AcceptedQueryWireFormat(t *testing.T) {
	engine, _ := newAskTestRouter(t, "alice")

	recorder := postAsk(engine, `{"query":"how do dbms indexes work"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	var body struct {
		Response string `json:"response"`
		Engine   string `json:"engine"`
		Stats    *struct {
			Count  int64   `json:"count"`
			Energy float64 `json:"energy"`
			CO2    float64 `json:"co2"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "Indexes speed up lookups at the cost of writes.", body.Response)
	require.Equal(t, "GPT-3.5 Turbo (Estimated)", body.Engine)
	require.NotNil(t, body.Stats)
	require.EqualValues(t, 1, body.Stats.Count)
	require.Equal(t, 0.00034, body.Stats.Energy)
	require.Equal(t, 0.000238, body.Stats.CO2)
}

func TestAskEndpoint_OffTopicQueryRejected(t *testing.T) {
	engine, _ := newAskTestRouter(t, "alice")

	recorder := postAsk(engine, `{"query":"what's the weather today"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, core.MsgDomainRejected, body["response"])
	require.Len(t, body, 1)
}

func TestAskEndpoint_LedgerDownRendersNullStats(t *testing.T) {
	engine, sqliteClient := newAskTestRouter(t, "alice")
	require.NoError(t, sqliteClient.Close())

	recorder := postAsk(engine, `{"query":"what is sql"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	// stats 必須明確輸出 null，不能整個欄位消失
	require.Contains(t, recorder.Body.String(), `"stats":null`)
}

func TestAskEndpoint_MissingBodyTreatedAsEmptyQuery(t *testing.T) {
	engine, _ := newAskTestRouter(t, "alice")

	recorder := postAsk(engine, ``)

	require.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, core.MsgInvalidQuery, body["response"])
}
