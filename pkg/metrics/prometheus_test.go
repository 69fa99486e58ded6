package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCollector_RecordRequest(t *testing.T) {
	m := NewMetricsCollector(nil)

	m.RecordRequest(http.MethodGet, "/api/countries", http.StatusOK, 5*time.Millisecond)
	m.RecordRequest(http.MethodGet, "/api/countries", http.StatusOK, 7*time.Millisecond)
	m.RecordRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/countries", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requestDuration))
}

func TestMetricsCollector_ObserveSearch(t *testing.T) {
	m := NewMetricsCollector(nil)

	m.ObserveSearch("IN", 1)
	m.ObserveSearch("IN", 0)
	m.ObserveSearch("US", 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searchesTotal.WithLabelValues("IN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searchesTotal.WithLabelValues("US")))

	expected := `
# HELP content_search_results Number of records matched by a content search
# TYPE content_search_results histogram
content_search_results_bucket{le="0"} 1
content_search_results_bucket{le="1"} 2
content_search_results_bucket{le="2"} 2
content_search_results_bucket{le="5"} 3
content_search_results_bucket{le="10"} 3
content_search_results_bucket{le="20"} 3
content_search_results_bucket{le="50"} 3
content_search_results_bucket{le="+Inf"} 3
content_search_results_sum 4
content_search_results_count 3
`
	require.NoError(t, testutil.CollectAndCompare(m.searchResults, strings.NewReader(expected)))
}

func TestMetricsCollector_TrackContentRecords(t *testing.T) {
	m := NewMetricsCollector(nil)
	counts := map[string]int{"countries": 5, "schemes": 12}

	require.NoError(t, m.TrackContentRecords(func() map[string]int { return counts }))
	n, err := testutil.GatherAndCount(m.Registry(), "content_records")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	counts["schemes"] = 13
	expected := `
# HELP content_records Number of records held per content collection
# TYPE content_records gauge
content_records{collection="countries"} 5
content_records{collection="schemes"} 13
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "content_records"))
}

func TestMetricsCollector_TrackContentRecordsTwice(t *testing.T) {
	m := NewMetricsCollector(nil)
	counts := func() map[string]int { return map[string]int{"countries": 5} }

	require.NoError(t, m.TrackContentRecords(counts))
	assert.Error(t, m.TrackContentRecords(counts))
}

func TestMetricsCollector_Handler(t *testing.T) {
	m := NewMetricsCollector(nil)
	require.NoError(t, m.TrackContentRecords(func() map[string]int { return map[string]int{"instruments": 14} }))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `content_records{collection="instruments"} 14`)
	// Private registry: no default Go collectors.
	assert.NotContains(t, w.Body.String(), "go_goroutines")
}
