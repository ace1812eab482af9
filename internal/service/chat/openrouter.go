package chat

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
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

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"go.opentelemetry.io/otel/attribute"
)

type OpenRouterService struct {
	HTTPClient *http.Client
	trace      *telemetry.Trace
	endpoint   string
	apiKey     string
	model      string
}

// NewOpenRouterService 建立 OpenRouterService。
// 憑證與端點在此一次注入，request 處理邏輯不讀任何全域狀態。
func NewOpenRouterService(
	conf *config.Configuration,
	trace *telemetry.Trace,
	client *http.Client,
) Service {
	endpoint := conf.OpenRouter.Endpoint
	if endpoint == "" {
		endpoint = core.OpenRouterAPIBaseURL + core.OpenRouterChatEndpoint
	}
	model := conf.OpenRouter.Model
	if model == "" {
		model = core.DefaultCompletionModel
	}
	return &OpenRouterService{
		HTTPClient: client,
		trace:      trace,
		endpoint:   endpoint,
		apiKey:     conf.OpenRouter.APIKey,
		model:      model,
	}
}

// Complete 呼叫 OpenRouter chat completions，回傳第一個 choice 的訊息文字。
// 失敗時依錯誤類型回傳：
//   - 請求送出/對方非 2xx：ExternalRequestError
//   - 回應解碼失敗或缺 choices[0].message.content：ExternalResponseFormatError
//   - 本地序列化/建請失敗：InternalServer
func (s *OpenRouterService) Complete(ctx context.Context, query string) (string, error) {
	ctx, span, end := s.trace.WithSpan(ctx, "openrouter.chat.completions")
	defer end(nil)

	span.SetAttributes(
		attribute.String("ai.provider", string(core.ProviderOpenRouter)),
		attribute.String("ai.model", s.model),
		attribute.String("http.url", s.endpoint),
	)

	payload, err := json.Marshal(&ChatPayload{
		Model:    s.model,
		Messages: []ChatMessage{{Role: "user", Content: query}},
	})
	if err != nil {
		end(err)
		return "", cErr.InternalServer("marshal chat payload failed")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		end(err)
		return "", cErr.InternalServer("create http request failed")
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(httpReq)
	if err != nil {
		end(err)
		return "", cErr.ExternalRequestError("openrouter api request failed")
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		end(err)
		return "", cErr.ExternalRequestError("read openrouter response failed")
	}
	body, err := decompressOnly(raw, resp.Header)
	if err != nil {
		end(err)
		return "", cErr.ExternalResponseFormatError("decode openrouter response encoding failed")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		cause := fmt.Errorf("openrouter non-2xx: %s (%d) %s", resp.Status, resp.StatusCode, strings.TrimSpace(string(body)))
		end(cause)
		return "", cErr.ExternalRequestError("openrouter api error: " + strings.TrimSpace(string(body)))
	}

	var result ChatResult
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber() // 精度安全
	if err := dec.Decode(&result); err != nil {
		end(err)
		return "", cErr.ExternalResponseFormatError("decode openrouter response failed")
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		cause := fmt.Errorf("openrouter response missing choices[0].message.content")
		end(cause)
		return "", cErr.ExternalResponseFormatError("openrouter response missing message content")
	}

	span.SetAttributes(attribute.Int("ai.tokens_total", result.Usage.TotalTokens))
	return result.Choices[0].Message.Content, nil
}

// ---- Decompressors ----

func decompressOnly(raw []byte, h http.Header) ([]byte, error) {
	enc := strings.ToLower(strings.TrimSpace(h.Get("Content-Encoding")))
	switch enc {
	case "gzip":
		return gunzipBytes(raw)
	case "deflate":
		return inflateZlibBytes(raw)
	case "zstd":
		return zstdBytes(raw)
	case "br":
		return brotliBytes(raw)
	default:
		if isGzip(raw) {
			return gunzipBytes(raw)
		}
		if isZlib(raw) {
			return inflateZlibBytes(raw)
		}
		if isZstd(raw) {
			return zstdBytes(raw)
		}
		return raw, nil
	}
}

func gunzipBytes(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func inflateZlibBytes(b []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func zstdBytes(b []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(b, nil)
}
func brotliBytes(b []byte) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(b))
	return io.ReadAll(r)
}

// ---- Simple magic number checks ----

func isGzip(b []byte) bool { return len(b) > 2 && b[0] == 0x1f && b[1] == 0x8b }

func isZlib(b []byte) bool {
	return len(b) >= 2 && b[0] == 0x78 && (b[1] == 0x01 || b[1] == 0x9C || b[1] == 0xDA)
}

func isZstd(b []byte) bool {
	return len(b) >= 4 && b[0] == 0x28 && b[1] == 0xB5 && b[2] == 0x2F && b[3] == 0xFD
}
