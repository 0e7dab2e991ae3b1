package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/bitsctl/internal/config"
	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/danmuck/bitsctl/internal/report"
	"github.com/danmuck/bitsctl/internal/solver"
	"github.com/danmuck/bitsctl/internal/testutil/testlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	testlog.Start(t)
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Server.Addr = "127.0.0.1:0"
	cfg.Server.Node = "bitsctl-test"
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, solver.New(cfg, log.Logger), log.Logger)
}

func do(s *Server, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newServer(t, nil)
	w := do(s, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "bitsctl-test", body["service"])
	assert.Equal(t, Kind, body["kind"])
	assert.NotEmpty(t, w.Header().Get(observability.HeaderRequestID))
}

func TestDecodeJSONBody(t *testing.T) {
	s := newServer(t, nil)
	w := do(s, http.MethodPost, "/decode", "application/json", `{"hex":"04005AC33890"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res report.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, uint64(54), res.Value)
	assert.Equal(t, uint64(8), res.VersionSum)
	require.NotNil(t, res.Tree)
	assert.Equal(t, "product", res.Tree.Op)
}

func TestDecodeRawBodyAsYAML(t *testing.T) {
	s := newServer(t, nil)
	w := do(s, http.MethodPost, "/decode?format=yaml", "text/plain", "880086C3E88112\n")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))

	var res report.Result
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, uint64(7), res.Value)
}

func TestDecodeText(t *testing.T) {
	s := newServer(t, nil)
	w := do(s, http.MethodPost, "/decode?format=text", "text/plain", "C200B40A82")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[1/2] Result: 14\n[2/2] Result: 3\n", w.Body.String())
}

func TestDecodeRejectsBadInput(t *testing.T) {
	s := newServer(t, nil)

	w := do(s, http.MethodPost, "/decode", "text/plain", "38006F45")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no data")

	w = do(s, http.MethodPost, "/decode", "application/json", `{"hex":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(s, http.MethodPost, "/decode?format=xml", "text/plain", "C200B40A82")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecodeRejectsOversizedInput(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.MaxInputLen = 8 })

	w := do(s, http.MethodPost, "/decode", "text/plain", "9C0141080250320F1802104A08")
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = do(s, http.MethodPost, "/decode", "text/plain", strings.Repeat("0", 8+bodySlack+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestMetricsExposeDecodeCounters(t *testing.T) {
	s := newServer(t, nil)
	do(s, http.MethodPost, "/decode", "text/plain", "D8005AC2A8F0")

	w := do(s, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bitsctl_decode_total")
	assert.Contains(t, w.Body.String(), "bitsctl_http_requests_total")
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Server.ShutdownTimeout = time.Second })
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatalf("server did not stop after cancel")
	}
}
