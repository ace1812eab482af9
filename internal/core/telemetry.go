package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanSessionMiddleware  TraceSpanName = "session_middleware"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricRequestSuccessTotal MetricName = "request_success_total"
	MetricRequestFailTotal    MetricName = "request_fail_total"
	MetricQueriesTotal        MetricName = "queries_total"
	MetricGatewayFailTotal    MetricName = "gateway_fail_total"
	MetricLedgerFailTotal     MetricName = "ledger_fail_total"
	MetricEnergyKWhTotal      MetricName = "energy_kwh_total"
	MetricCO2KgTotal          MetricName = "co2_kg_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelOutcome  MetricLabelName = "outcome"
	MetricLabelReason   MetricLabelName = "reason"
)

// queries_total 的 outcome label 值
const (
	QueryOutcomeAccepted       = "accepted"
	QueryOutcomeUnauthorized   = "unauthorized"
	QueryOutcomeInvalidInput   = "invalid_input"
	QueryOutcomeDomainRejected = "domain_rejected"
	QueryOutcomeGatewayFailed  = "gateway_failed"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"url.path"`
	UrlScheme         string `trace:"url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"response.path"`
	Method     string  `trace:"response.method"`
	Status     int     `trace:"response.status"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.duration_ms"`
	Data       string  `trace:"response.data"`
}

type TracePanicMeta struct {
	Path       string  `trace:"panic.path"`
	Method     string  `trace:"panic.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"panic.duration_ms"`
	Message    string  `trace:"panic.message"`
	Stack      string  `trace:"panic.stack"`
	Status     int     `trace:"panic.status"`
}

// 供 session middleware 使用
type TraceSessionMeta struct {
	Username string `trace:"auth.username"`
	Status   string `trace:"auth.status"`
}

// 供查詢 pipeline 使用
type TraceAskMeta struct {
	Username   string  `trace:"ask.username"`
	Outcome    string  `trace:"ask.outcome"`
	QueryChars int     `trace:"ask.query_chars"`
	EnergyKWh  float64 `trace:"ask.energy_kwh,omitempty"`
	CO2Kg      float64 `trace:"ask.co2_kg,omitempty"`
	DayCount   int64   `trace:"ask.day_count,omitempty"`
}

// 供帳本讀寫使用
type TraceLedgerMeta struct {
	Op       string  `trace:"ledger.op"` // "record" / "daily_summary" / "all_entries"
	Username string  `trace:"ledger.username,omitempty"`
	Day      string  `trace:"ledger.day,omitempty"`
	Count    int64   `trace:"ledger.count,omitempty"`
	Error    *string `trace:"error,omitempty"`
}
