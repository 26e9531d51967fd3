package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

// RouteMetrics aggregates metrics for a specific route
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsCollector collects and aggregates request metrics per route
// template. Collection never blocks a request.
type MetricsCollector struct {
	mu     sync.RWMutex
	routes map[string]*RouteMetrics
}

var globalMetrics = &MetricsCollector{routes: make(map[string]*RouteMetrics)}

func (m *MetricsCollector) record(method, path string, status int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := method + " " + path
	rm, ok := m.routes[key]
	if !ok {
		rm = &RouteMetrics{Method: method, Path: path, MinTime: duration}
		m.routes[key] = rm
	}
	rm.Count++
	if status >= 400 {
		rm.ErrorCount++
	}
	rm.TotalTime += duration
	rm.AvgTime = rm.TotalTime / time.Duration(rm.Count)
	if duration < rm.MinTime {
		rm.MinTime = duration
	}
	if duration > rm.MaxTime {
		rm.MaxTime = duration
	}
	rm.LastRequest = time.Now()
}

// Snapshot returns a copy of the aggregated route metrics
func Snapshot() []RouteMetrics {
	globalMetrics.mu.RLock()
	defer globalMetrics.mu.RUnlock()

	out := make([]RouteMetrics, 0, len(globalMetrics.routes))
	for _, rm := range globalMetrics.routes {
		out = append(out, *rm)
	}
	return out
}

// MetricsMiddleware records per-route request counts and latencies keyed by
// the mux route template, so path parameters don't explode the cardinality
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				path = template
			}
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		globalMetrics.record(r.Method, path, rec.status, time.Since(start))
	})
}
