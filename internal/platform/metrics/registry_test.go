package metrics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullKey(t *testing.T) {
	assert.Equal(t, "outfit_builds_total", fullKey("outfit_builds_total", nil))
	assert.Equal(t, "http_requests_total{method=POST,status=2xx}",
		fullKey("http_requests_total", map[string]string{"status": "2xx", "method": "POST"}))
}

func TestRegistryInc(t *testing.T) {
	reg := NewRegistry(nil)
	ctx := context.Background()

	reg.Inc(ctx, OutfitBuildsTotal, map[string]string{"outcome": "ok"}, 1)
	reg.Inc(ctx, OutfitBuildsTotal, map[string]string{"outcome": "ok"}, 2)
	reg.Inc(ctx, OutfitBuildsTotal, map[string]string{"outcome": "schema_mismatch"}, 1)

	assert.Equal(t, int64(3), reg.Value(OutfitBuildsTotal, map[string]string{"outcome": "ok"}))
	assert.Equal(t, int64(1), reg.Value(OutfitBuildsTotal, map[string]string{"outcome": "schema_mismatch"}))
	assert.Equal(t, int64(0), reg.Value(OutfitBuildsTotal, map[string]string{"outcome": "malformed_output"}))

	assert.Equal(t, []string{
		"outfit_builds_total{outcome=ok} 3",
		"outfit_builds_total{outcome=schema_mismatch} 1",
	}, reg.SnapshotLines())
}

func TestNilRegistryIncIsNoop(t *testing.T) {
	var reg *Registry
	assert.NotPanics(t, func() {
		reg.Inc(context.Background(), OutfitBuildsTotal, nil, 1)
	})
}

func TestRegistryConcurrentInc(t *testing.T) {
	reg := NewRegistry(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Inc(context.Background(), HTTPRequestsTotal, map[string]string{"status": "2xx"}, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), reg.Value(HTTPRequestsTotal, map[string]string{"status": "2xx"}))
}

func TestRegistryHandlers(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Inc(context.Background(), OutfitBuildsTotal, map[string]string{"outcome": "ok"}, 1)

	rec := httptest.NewRecorder()
	reg.HandlerText(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "outfit_builds_total{outcome=ok} 1\n", rec.Body.String())

	rec = httptest.NewRecorder()
	reg.HandlerJSON(rec, httptest.NewRequest(http.MethodGet, "/metrics.json", nil))
	var payload map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, map[string]int64{"outfit_builds_total{outcome=ok}": 1}, payload)
}
