package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/observatory/internal/logging"
	"github.com/GoSim-25-26J-441/observatory/internal/metrics"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/service"
)

const topologyDoc = `
regions:
  - name: us-east
    entry_point: INTERNET
    nodes:
      - name: A
      - name: B
    connections:
      - source: A
        targets: [B, C]
`

func newTestRouter(t *testing.T, load bool, rps float64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "topology.yml")
	require.NoError(t, os.WriteFile(path, []byte(topologyDoc), 0o644))

	reg := metrics.NewRegistry()
	topo := service.NewTopologyService(path, logging.Discard(), reg)
	if load {
		_, err := topo.Load()
		require.NoError(t, err)
	}

	return BuildRouter(RouterDeps{
		ServiceName:      "observatory",
		Version:          "test",
		Topology:         topo,
		Logger:           logging.Discard(),
		Metrics:          reg,
		CORSAllowOrigins: []string{"*"},
		RateLimitRPS:     rps,
		RateLimitBurst:   1,
	})
}

func do(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRouterServesState(t *testing.T) {
	r := newTestRouter(t, true, 0)

	rr := do(r, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"graphs":["us-east"]}`, rr.Body.String())

	rr = do(r, http.MethodGet, "/api/state/us-east", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"renderer": "global",
		"name": "us-east",
		"displayName": "us-east",
		"entryNode": "INTERNET",
		"updated": null,
		"maxVolume": null,
		"class": null,
		"nodes": [
			{"renderer":"focusedChild","name":"A","displayName":"A","entryNode":null,"updated":null,"maxVolume":null,"class":null,"nodes":null,"connections":null,"notices":null},
			{"renderer":"focusedChild","name":"B","displayName":"B","entryNode":null,"updated":null,"maxVolume":null,"class":null,"nodes":null,"connections":null,"notices":null}
		],
		"connections": [
			{"source":"A","target":"B","metrics":{"normal":100,"warning":10,"danger":1},"notices":null,"class":null}
		],
		"notices": null
	}`, rr.Body.String())

	rr = do(r, http.MethodGet, "/api/state/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `"Couldn't find does-not-exist"`, rr.Body.String())
}

func TestRouterCORS(t *testing.T) {
	r := newTestRouter(t, true, 0)

	rr := do(r, http.MethodGet, "/api/state", map[string]string{"Origin": "http://dashboard.example"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = do(r, http.MethodOptions, "/api/state/us-east", map[string]string{
		"Origin":                        "http://dashboard.example",
		"Access-Control-Request-Method": http.MethodGet,
	})
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t, false, 0)
	rr := do(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	r = newTestRouter(t, true, 0)
	rr = do(r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	do(r, http.MethodGet, "/api/state/us-east", nil)
	rr = do(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "observatory_topology_regions 1")
	assert.Contains(t, body, `observatory_state_lookups_total{result="hit"} 1`)
	assert.Contains(t, body, `route="/api/state/:name"`)
}

func TestRouterRateLimitsAPIOnly(t *testing.T) {
	r := newTestRouter(t, true, 0.001)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/state", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/api/state", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", nil).Code)
}
