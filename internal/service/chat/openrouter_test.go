package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecotutor/config"
	cErr "ecotutor/internal/pkg/error"
	"ecotutor/internal/telemetry"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, upstream *httptest.Server) Service {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	conf := &config.Configuration{}
	conf.OpenRouter.Endpoint = upstream.URL
	conf.OpenRouter.APIKey = "test-key"
	return NewOpenRouterService(conf, trace, upstream.Client())
}

func TestCompleteExtractsFirstChoice(t *testing.T) {
	var gotAuth string
	var gotPayload ChatPayload
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		json.NewEncoder(w).Encode(ChatResult{
			Model: "openai/gpt-3.5-turbo",
			Choices: []ChatChoice{{
				Message: ChatResponseMessage{Role: "assistant", Content: "A DBMS is software for managing databases."},
			}},
		})
	}))
	defer upstream.Close()

	svc := newTestService(t, upstream)
	answer, err := svc.Complete(context.Background(), "what is dbms")
	require.NoError(t, err)
	require.Equal(t, "A DBMS is software for managing databases.", answer)

	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "openai/gpt-3.5-turbo", gotPayload.Model)
	require.Len(t, gotPayload.Messages, 1)
	require.Equal(t, "user", gotPayload.Messages[0].Role)
	require.Equal(t, "what is dbms", gotPayload.Messages[0].Content)
}

func TestCompleteNon2xxIsExternalRequestError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	svc := newTestService(t, upstream)
	_, err := svc.Complete(context.Background(), "what is dbms")
	require.Error(t, err)
	appErr := cErr.From(err)
	require.Equal(t, cErr.EXTERNAL_REQUEST_ERROR, appErr.ErrorCode())
}

func TestCompleteMissingContentIsFormatError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer upstream.Close()

	svc := newTestService(t, upstream)
	_, err := svc.Complete(context.Background(), "what is dbms")
	require.Error(t, err)
	appErr := cErr.From(err)
	require.Equal(t, cErr.EXTERNAL_RESPONSE_FORMAT_ERROR, appErr.ErrorCode())
}

func TestCompleteNetworkFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := upstream.Client()
	upstream.Close() // 讓連線必然失敗

	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	conf := &config.Configuration{}
	conf.OpenRouter.Endpoint = upstream.URL
	svc := NewOpenRouterService(conf, trace, client)

	_, err = svc.Complete(context.Background(), "what is dbms")
	require.Error(t, err)
	require.Equal(t, cErr.EXTERNAL_REQUEST_ERROR, cErr.From(err).ErrorCode())
}
