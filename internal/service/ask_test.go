package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecotutor/config"
	"ecotutor/internal/core"
	"ecotutor/internal/database/client"
	sqliteRepo "ecotutor/internal/database/sqlite/repository"
	"ecotutor/internal/dto"
	"ecotutor/internal/telemetry"
)

type stubChatService struct {
	answer string
	err    error
	calls  int
}

func (s *stubChatService) Complete(ctx context.Context, query string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

type askFixture struct {
	service      *AskService
	chatService  *stubChatService
	sqliteClient *client.SQLiteClient
	queryLogRepo *sqliteRepo.QueryLogRepository
}

func newAskFixture(t *testing.T) *askFixture {
	t.Helper()

	conf := &config.Configuration{}
	conf.Ledger.Path = filepath.Join(t.TempDir(), "ledger.db")

	sqliteClient, cleanup, err := client.NewSQLiteClient(zap.NewNop(), conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	queryLogRepo := sqliteRepo.NewQueryLogRepository(trace, sqliteClient)
	chatService := &stubChatService{answer: "A foreign key references a primary key in another table."}

	return &askFixture{
		service: NewAskService(
			conf, trace, telemetry.NewMetric(nil), zap.NewNop(),
			chatService, queryLogRepo, nil,
		),
		chatService:  chatService,
		sqliteClient: sqliteClient,
		queryLogRepo: queryLogRepo,
	}
}

func TestAsk_RequiresLogin(t *testing.T) {
	fixture := newAskFixture(t)

	body := fixture.service.Ask(context.Background(), "", &dto.AskDto{Query: "explain dbms"})

	rejection, ok := body.(*dto.AskRejectionDto)
	require.True(t, ok)
	require.Equal(t, core.MsgLoginRequired, rejection.Response)
	require.Zero(t, fixture.chatService.calls)
}

func TestAsk_RejectsEmptyQuery(t *testing.T) {
	fixture := newAskFixture(t)

	body := fixture.service.Ask(context.Background(), "alice", &dto.AskDto{Query: ""})

	rejection, ok := body.(*dto.AskRejectionDto)
	require.True(t, ok)
	require.Equal(t, core.MsgInvalidQuery, rejection.Response)
	require.Zero(t, fixture.chatService.calls)
}

func TestAsk_WhitespaceOnlyQueryFailsDomainGate(t *testing.T) {
	fixture := newAskFixture(t)

	// 純空白不是空字串：要走關鍵字閘，拿到的是領域拒絕訊息
	for _, query := range []string{"   ", "\t\n"} {
		body := fixture.service.Ask(context.Background(), "alice", &dto.AskDto{Query: query})
		rejection, ok := body.(*dto.AskRejectionDto)
		require.True(t, ok)
		require.Equal(t, core.MsgDomainRejected, rejection.Response)
	}
	require.Zero(t, fixture.chatService.calls)

	entries, err := fixture.queryLogRepo.AllEntries(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestAsk_RejectsOffTopicQuery(t *testing.T) {
	fixture := newAskFixture(t)

	body := fixture.service.Ask(context.Background(), "alice", &dto.AskDto{Query: "what's the weather today"})

	rejection, ok := body.(*dto.AskRejectionDto)
	require.True(t, ok)
	require.Equal(t, core.MsgDomainRejected, rejection.Response)
	require.Zero(t, fixture.chatService.calls)

	// 被擋掉的查詢不能留下任何帳
	entries, err := fixture.queryLogRepo.AllEntries(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestAsk_AcceptedQueryAnswersWithStats(t *testing.T) {
	fixture := newAskFixture(t)

	body := fixture.service.Ask(context.Background(), "alice", &dto.AskDto{Query: "how does dbms indexing work"})

	answer, ok := body.(*dto.AskAnswerDto)
	require.True(t, ok)
	require.Equal(t, fixture.chatService.answer, answer.Response)
	require.Equal(t, core.DefaultEngineLabel, answer.Engine)
	require.NotNil(t, answer.Stats)
	require.EqualValues(t, 1, answer.Stats.Count)
	require.Equal(t, 0.00034, answer.Stats.Energy)
	require.Equal(t, 0.000238, answer.Stats.CO2)

	// 讀寫一致：每答一題恰好入帳一筆
	entries, err := fixture.queryLogRepo.AllEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "alice", entries[0].Username)
	require.Equal(t, "how does dbms indexing work", entries[0].QueryText)
}

func TestAsk_StatsGrowMonotonically(t *testing.T) {
	fixture := newAskFixture(t)
	ctx := context.Background()

	var previousCount int64
	for i := 0; i < 3; i++ {
		body := fixture.service.Ask(ctx, "alice", &dto.AskDto{Query: "sql joins explained"})
		answer, ok := body.(*dto.AskAnswerDto)
		require.True(t, ok)
		require.NotNil(t, answer.Stats)
		require.Equal(t, previousCount+1, answer.Stats.Count)
		previousCount = answer.Stats.Count
	}
}

func TestAsk_StatsArePerUser(t *testing.T) {
	fixture := newAskFixture(t)
	ctx := context.Background()

	fixture.service.Ask(ctx, "alice", &dto.AskDto{Query: "normalization in dbms"})
	body := fixture.service.Ask(ctx, "bob", &dto.AskDto{Query: "normalization in dbms"})

	answer, ok := body.(*dto.AskAnswerDto)
	require.True(t, ok)
	require.NotNil(t, answer.Stats)
	require.EqualValues(t, 1, answer.Stats.Count)
}

func TestAsk_GatewayFailureLeavesNoLedgerEntry(t *testing.T) {
	fixture := newAskFixture(t)
	fixture.chatService.err = errors.New("upstream down")

	body := fixture.service.Ask(context.Background(), "alice", &dto.AskDto{Query: "explain dbms transactions"})

	rejection, ok := body.(*dto.AskRejectionDto)
	require.True(t, ok)
	require.Equal(t, core.MsgGatewayDown, rejection.Response)

	entries, err := fixture.queryLogRepo.AllEntries(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestAsk_LedgerFailureStillReturnsAnswer(t *testing.T) {
	fixture := newAskFixture(t)
	// 關掉帳本連線，逼出入帳失敗
	require.NoError(t, fixture.sqliteClient.Close())

	body := fixture.service.Ask(context.Background(), "alice", &dto.AskDto{Query: "what is an erd"})

	answer, ok := body.(*dto.AskAnswerDto)
	require.True(t, ok)
	require.Equal(t, fixture.chatService.answer, answer.Response)
	require.Nil(t, answer.Stats)
}
