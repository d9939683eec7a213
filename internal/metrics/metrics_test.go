package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.StateLookupsTotal.WithLabelValues("hit").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.StateLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.StateLookupsTotal.WithLabelValues("hit")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := NewRegistry()
	r.TopologyRegions.Set(3)
	r.HTTPRequestsTotal.WithLabelValues("GET", "/api/state", "200").Inc()

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "observatory_topology_regions 3")
	assert.Contains(t, string(body), `observatory_http_requests_total{method="GET",route="/api/state",status="200"} 1`)
}
