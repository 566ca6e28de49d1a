package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Counter names recorded by the server.
const (
	HTTPRequestsTotal      = "http_requests_total"
	HTTPRequestErrorsTotal = "http_requests_errors_total"
	OutfitBuildsTotal      = "outfit_builds_total"
)

const (
	instrumentationScope = "github.com/phrazzld/outfit-api"
	textContentType      = "text/plain; charset=utf-8"
	jsonContentType      = "application/json"
)

// Registry stores counters for exposition and mirrors them to OTel counters.
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64 // key = fullKey(name, labels)
	meter    metric.Meter
	otelCtrs map[string]metric.Int64Counter // base name -> instrument
}

// NewRegistry creates a Registry whose OTel instruments come from provider.
// A nil provider uses the global one, which is a no-op until an SDK is installed.
func NewRegistry(provider metric.MeterProvider) *Registry {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		meter:    provider.Meter(instrumentationScope),
		otelCtrs: make(map[string]metric.Int64Counter),
	}
}

// fullKey makes a deterministic key from name and labels.
func fullKey(name string, labels map[string]string) string {
	if len(labels) == 0 {
		return name
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
	}
	b.WriteByte('}')
	return b.String()
}

// Inc increases a named counter by n with labels.
// Safe to call on a nil Registry.
func (r *Registry) Inc(ctx context.Context, name string, labels map[string]string, n int64) {
	if r == nil {
		return
	}

	r.counter(fullKey(name, labels)).Add(n)

	if inst := r.instrument(name); inst != nil {
		attrs := make([]attribute.KeyValue, 0, len(labels))
		for k, v := range labels {
			attrs = append(attrs, attribute.String(k, v))
		}
		inst.Add(ctx, n, metric.WithAttributes(attrs...))
	}
}

func (r *Registry) counter(key string) *atomic.Int64 {
	r.mu.RLock()
	c := r.counters[key]
	r.mu.RUnlock()
	if c != nil {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c = r.counters[key]; c == nil {
		c = new(atomic.Int64)
		r.counters[key] = c
	}
	return c
}

func (r *Registry) instrument(name string) metric.Int64Counter {
	r.mu.RLock()
	inst := r.otelCtrs[name]
	r.mu.RUnlock()
	if inst != nil {
		return inst
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if inst = r.otelCtrs[name]; inst == nil {
		ctr, err := r.meter.Int64Counter(name)
		if err != nil {
			return nil
		}
		r.otelCtrs[name] = ctr
		inst = ctr
	}
	return inst
}

// Value returns the current value of the counter with the given labels.
func (r *Registry) Value(name string, labels map[string]string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c := r.counters[fullKey(name, labels)]; c != nil {
		return c.Load()
	}
	return 0
}

// SnapshotLines returns sorted "key value" lines for every counter.
func (r *Registry) SnapshotLines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.counters))
	for k := range r.counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s %d", k, r.counters[k].Load()))
	}
	return lines
}

// SnapshotJSON returns a map of counter key to value.
func (r *Registry) SnapshotJSON() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int64, len(r.counters))
	for k, v := range r.counters {
		out[k] = v.Load()
	}
	return out
}

// HandlerText writes counters in a simple line-oriented text format.
func (r *Registry) HandlerText(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", textContentType)
	for _, line := range r.SnapshotLines() {
		if _, err := w.Write([]byte(line + "\n")); err != nil {
			return
		}
	}
}

// HandlerJSON writes counters as a JSON object.
func (r *Registry) HandlerJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", jsonContentType)
	_ = json.NewEncoder(w).Encode(r.SnapshotJSON())
}
