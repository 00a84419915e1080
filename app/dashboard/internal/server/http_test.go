package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/conf"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/data"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/service"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/usecase"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/engine"
)

type stubSynthesizer struct {
	credErr error
	fail    bool
}

func (s *stubSynthesizer) ResolveCredential() (engine.Credential, error) {
	if s.credErr != nil {
		return engine.Credential{}, s.credErr
	}
	return engine.Credential{Key: "AIza-test", Source: "API_KEY"}, nil
}

func (s *stubSynthesizer) Synthesize(_ context.Context, _ string, focusAreas []domain.FocusArea) *engine.Result {
	now := time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)
	return &engine.Result{
		Payload:  engine.SyntheticPayload(now, focusAreas),
		Degraded: s.fail,
		Cause:    errors.New("upstream unavailable"),
	}
}

func newTestServer(t *testing.T, synth usecase.Synthesizer) *http.Server {
	t.Helper()
	srv, _ := newTestServerWithStore(t, synth, log.NewStdLogger(io.Discard))
	return srv
}

func newTestServerWithStore(t *testing.T, synth usecase.Synthesizer, logger log.Logger) (*http.Server, *data.Store) {
	t.Helper()
	store := data.NewStore(data.DefaultSeed())
	r := data.NewDashboardRepo(store, logger)
	dash := usecase.NewDashboardUseCase(r, logger)
	svc := service.NewDashboardService(
		dash,
		usecase.NewAnnotateUseCase(r, logger),
		usecase.NewRefreshUseCase(r, dash, synth, logger),
		logger,
	)
	return NewHTTPServer(&conf.Server{Http: &conf.HTTP{Addr: "127.0.0.1:0", Timeout: "5s"}}, svc, logger), store
}

// recordLogger 记录每条日志的键值对
type recordLogger struct {
	mu      sync.Mutex
	records []map[string]any
}

func (l *recordLogger) Log(_ log.Level, keyvals ...interface{}) error {
	rec := make(map[string]any, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		rec[fmt.Sprint(keyvals[i])] = keyvals[i+1]
	}
	l.mu.Lock()
	l.records = append(l.records, rec)
	l.mu.Unlock()
	return nil
}

func (l *recordLogger) find(operation string) map[string]any {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, rec := range l.records {
		if rec["kind"] == "server" && rec["operation"] == operation {
			return rec
		}
	}
	return nil
}

func do(t *testing.T, srv *http.Server, method, path, body string) (int, map[string]any, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	raw := rec.Body.Bytes()
	var obj map[string]any
	_ = json.Unmarshal(raw, &obj)
	return rec.Code, obj, raw
}

func TestHTTP_Reads(t *testing.T) {
	srv := newTestServer(t, &stubSynthesizer{})

	code, _, raw := do(t, srv, nethttp.MethodGet, "/api/updates", "")
	require.Equal(t, nethttp.StatusOK, code)
	var updates []domain.UpdateItem
	require.NoError(t, json.Unmarshal(raw, &updates))
	require.Len(t, updates, 7)
	for i := 1; i < len(updates); i++ {
		assert.GreaterOrEqual(t, updates[i-1].Date, updates[i].Date)
	}

	code, _, raw = do(t, srv, nethttp.MethodGet, "/api/knowledge-base", "")
	require.Equal(t, nethttp.StatusOK, code)
	var kb []domain.KnowledgeItem
	require.NoError(t, json.Unmarshal(raw, &kb))
	require.Len(t, kb, 6)
	assert.Equal(t, "kb-8", kb[0].ID)

	code, _, raw = do(t, srv, nethttp.MethodGet, "/api/report", "")
	require.Equal(t, nethttp.StatusOK, code)
	var report domain.RiskReport
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Equal(t, 6, report.Stats.Legislation.Count)
	assert.Equal(t, 7, report.Stats.Enforcement.Count)
}

func TestHTTP_Mutations(t *testing.T) {
	srv := newTestServer(t, &stubSynthesizer{})

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		key    string
		want   string
	}{
		{"kb link", "/api/links/knowledge-base", `{"id":"kb-1","url":"https://example.com/act"}`, 200, "message", "Link updated"},
		{"kb link missing id", "/api/links/knowledge-base", `{"url":"x"}`, 400, "error", "Missing ID"},
		{"kb link unknown", "/api/links/knowledge-base", `{"id":"kb-404","url":"x"}`, 404, "error", "Item not found"},
		{"kb note", "/api/notes/knowledge-base", `{"id":"kb-1","note":"n"}`, 200, "message", "Note updated"},
		{"kb links", "/api/links/knowledge-base/custom", `{"id":"kb-1","links":[{"name":"a","url":"b"}]}`, 200, "message", "Links updated"},
		{"update link", "/api/links/updates", `{"id":"up-3","url":"https://www.aepd.es/x"}`, 200, "message", "Link updated"},
		{"update note empty body", "/api/notes/updates", ``, 400, "error", "Missing ID"},
		{"update links unknown", "/api/links/updates/custom", `{"id":"nope","links":[]}`, 404, "error", "Item not found"},
		{"event link", "/api/links/risk-report", `{"focusAreaName":"Prohibited AI","eventTitle":"First AI Act Fine Issued","url":"https://aepd/fine"}`, 200, "message", "Link updated"},
		{"event link missing title", "/api/links/risk-report", `{"focusAreaName":"Prohibited AI"}`, 400, "error", "Missing identifiers"},
		{"event link unknown event", "/api/links/risk-report", `{"focusAreaName":"Prohibited AI","eventTitle":"Nope","url":"u"}`, 404, "error", "Item not found"},
		{"focus note", "/api/notes/risk-report", `{"focusAreaName":"Child Safety","note":"age checks"}`, 200, "message", "Note updated"},
		{"focus note missing", "/api/notes/risk-report", `{"note":"x"}`, 400, "error", "Missing focus area name"},
		{"focus links unknown", "/api/links/risk-report/custom", `{"focusAreaName":"Nope","links":[]}`, 404, "error", "Focus area not found"},
		{"invalid json", "/api/notes/knowledge-base", `{"id":`, 400, "error", "Invalid JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, obj, _ := do(t, srv, nethttp.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, tt.want, obj[tt.key])
			if tt.status == 200 {
				assert.Equal(t, true, obj["success"])
			}
		})
	}

	// 批注对后续读取可见
	_, _, raw := do(t, srv, nethttp.MethodGet, "/api/knowledge-base", "")
	var kb []domain.KnowledgeItem
	require.NoError(t, json.Unmarshal(raw, &kb))
	for _, it := range kb {
		if it.ID == "kb-1" {
			assert.Equal(t, "https://example.com/act", it.URL)
			assert.Equal(t, "n", it.Note)
			assert.Equal(t, []domain.CustomLink{{Name: "a", URL: "b"}}, it.CustomLinks)
		}
	}

	_, _, raw = do(t, srv, nethttp.MethodGet, "/api/report", "")
	var report domain.RiskReport
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Equal(t, "https://aepd/fine", report.FocusAreas[1].RelatedEvents[0].URL)
	assert.Equal(t, "age checks", report.FocusAreas[3].Note)
}

func TestHTTP_RejectedMutationsLeaveStoreUnchanged(t *testing.T) {
	srv, store := newTestServerWithStore(t, &stubSynthesizer{}, log.NewStdLogger(io.Discard))

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"update note empty object", "/api/notes/updates", `{}`, 400},
		{"update note without id", "/api/notes/updates", `{"note":"overwrite"}`, 400},
		{"update note unknown", "/api/notes/updates", `{"id":"up-404","note":"overwrite"}`, 404},
		{"update link unknown", "/api/links/updates", `{"id":"up-404","url":"x"}`, 404},
		{"update links unknown", "/api/links/updates/custom", `{"id":"up-404","links":[{"name":"a","url":"b"}]}`, 404},
		{"kb link without id", "/api/links/knowledge-base", `{"url":"x"}`, 400},
		{"kb note unknown", "/api/notes/knowledge-base", `{"id":"kb-404","note":"overwrite"}`, 404},
		{"kb links unknown", "/api/links/knowledge-base/custom", `{"id":"kb-404","links":[]}`, 404},
		{"event link without names", "/api/links/risk-report", `{"url":"x"}`, 400},
		{"event link unknown focus area", "/api/links/risk-report", `{"focusAreaName":"Nope","eventTitle":"First AI Act Fine Issued","url":"x"}`, 404},
		{"event link unknown event", "/api/links/risk-report", `{"focusAreaName":"Prohibited AI","eventTitle":"Nope","url":"x"}`, 404},
		{"focus note without name", "/api/notes/risk-report", `{"note":"overwrite"}`, 400},
		{"focus note unknown", "/api/notes/risk-report", `{"focusAreaName":"Nope","note":"overwrite"}`, 404},
		{"focus links unknown", "/api/links/risk-report/custom", `{"focusAreaName":"Nope","links":[]}`, 404},
		{"invalid json", "/api/notes/updates", `{"id":"up-1","note":`, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb, updates, report := store.KnowledgeBase(), store.Updates(), store.RiskReport()

			code, _, _ := do(t, srv, nethttp.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.status, code)

			assert.Equal(t, kb, store.KnowledgeBase())
			assert.Equal(t, updates, store.Updates())
			assert.Equal(t, report, store.RiskReport())
		})
	}
}

func TestHTTP_InvalidJSONIsLogged(t *testing.T) {
	logger := &recordLogger{}
	srv, _ := newTestServerWithStore(t, &stubSynthesizer{}, logger)

	code, obj, _ := do(t, srv, nethttp.MethodPost, "/api/notes/knowledge-base", `{"id":`)
	require.Equal(t, nethttp.StatusBadRequest, code)
	assert.Equal(t, "Invalid JSON body", obj["error"])

	rec := logger.find(service.OperationSetKnowledgeNote)
	require.NotNil(t, rec)
	assert.Equal(t, int32(nethttp.StatusBadRequest), rec["code"])
	assert.Equal(t, domain.ReasonInvalidJSON, rec["reason"])
}

func TestHTTP_RefreshFallback(t *testing.T) {
	srv := newTestServer(t, &stubSynthesizer{fail: true})

	_, _, raw := do(t, srv, nethttp.MethodGet, "/api/report", "")
	var before domain.RiskReport
	require.NoError(t, json.Unmarshal(raw, &before))

	code, obj, raw := do(t, srv, nethttp.MethodPost, "/api/refresh", "")
	require.Equal(t, nethttp.StatusOK, code)
	assert.Equal(t, true, obj["success"])
	assert.Equal(t, true, obj["degraded"])

	var reply service.RefreshReply
	require.NoError(t, json.Unmarshal(raw, &reply))
	require.NotNil(t, reply.Data)
	require.Len(t, reply.Data.Updates, 8)
	assert.Equal(t, "2026-10-14", reply.Data.Updates[0].Date)
	assert.True(t, strings.HasPrefix(reply.Data.Updates[0].ID, "sim-"))
	assert.Equal(t, before.FocusAreas, reply.Data.RiskReport.FocusAreas)
	assert.Equal(t, 8, reply.Data.RiskReport.Stats.Enforcement.Count)
	assert.Len(t, reply.Data.KnowledgeBase, 6)
}

func TestHTTP_RefreshCredentialError(t *testing.T) {
	srv := newTestServer(t, &stubSynthesizer{credErr: engine.ErrMissingAPIKey})

	code, obj, _ := do(t, srv, nethttp.MethodPost, "/api/refresh", "")
	assert.Equal(t, nethttp.StatusInternalServerError, code)
	assert.Equal(t, "Server configuration error: Missing API Key", obj["error"])
	_, hasDetails := obj["details"]
	assert.False(t, hasDetails)

	// 失败的刷新不修改数据
	_, _, raw := do(t, srv, nethttp.MethodGet, "/api/updates", "")
	var updates []domain.UpdateItem
	require.NoError(t, json.Unmarshal(raw, &updates))
	assert.Len(t, updates, 7)
}

func TestRadarConfig(t *testing.T) {
	cfg := radarConfig(&conf.Radar{
		Llm:         &conf.LLM{Model: "gemini-2.0-flash", ApiKeyEnv: []string{"MY_KEY"}},
		Search:      &conf.Search{Provider: "searxng", Searxng: &conf.SearXNG{BaseUrl: "http://searx:8080", Timeout: 10}},
		Concurrency: &conf.Concurrency{Qps: 2},
	})
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	assert.Equal(t, []string{"MY_KEY"}, cfg.LLM.APIKeyEnv)
	assert.Equal(t, "http://searx:8080", cfg.Search.SearXNG.BaseURL)
	assert.Equal(t, 2, cfg.Concurrency.QPS)
	assert.Equal(t, 30, cfg.Concurrency.RPM)
	assert.Equal(t, 90, cfg.LLM.Timeout)

	def := radarConfig(nil)
	assert.Equal(t, "gemini-2.5-flash", def.LLM.Model)
	assert.Empty(t, def.Search.Provider)
}

func TestNewRadarEngine(t *testing.T) {
	eng, cleanup, err := NewRadarEngine(&conf.Radar{}, log.NewStdLogger(io.Discard))
	require.NoError(t, err)
	require.NotNil(t, eng)
	cleanup()

	_, _, err = NewRadarEngine(&conf.Radar{Search: &conf.Search{Provider: "bing"}}, log.NewStdLogger(io.Discard))
	assert.Error(t, err)
}
