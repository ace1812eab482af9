package models

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ecotutor/config"
	"ecotutor/internal/core"
	cErr "ecotutor/internal/pkg/error"
	"ecotutor/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

type OpenRouterService struct {
	HTTPClient *http.Client
	trace      *telemetry.Trace
	apiKey     string
}

func NewOpenRouterService(conf *config.Configuration, trace *telemetry.Trace, client *http.Client) Service {
	return &OpenRouterService{HTTPClient: client, trace: trace, apiKey: conf.OpenRouter.APIKey}
}

// List 取得上游可用模型目錄（管理介面用）。
func (s *OpenRouterService) List(ctx context.Context) (*ListResponse, error) {

	url := core.OpenRouterAPIBaseURL + core.OpenRouterModelsEndpoint

	ctx, span, end := s.trace.WithSpan(ctx, "openrouter.models.list")
	defer end(nil)

	span.SetAttributes(
		attribute.String("ai.provider", string(core.ProviderOpenRouter)),
		attribute.String("http.url", url),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		end(err)
		return nil, cErr.InternalServer("create http request failed")
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		end(err)
		return nil, cErr.ExternalRequestError("openrouter api request failed")
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		end(fmt.Errorf("openrouter non-2xx: %s (%d) %s", resp.Status, resp.StatusCode, trimBody(body)))
		return nil, cErr.ExternalRequestError("openrouter api error: " + trimBody(body))
	}

	var out ListResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		end(err)
		return nil, cErr.ExternalResponseFormatError("decode openrouter models response failed")
	}

	return &out, nil
}

func trimBody(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 3000 {
		return s[:3000] + "..."
	}
	return s
}
