package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordIntake(t *testing.T) {
	before := testutil.ToFloat64(intakeRequestsTotal.WithLabelValues("event"))
	RecordIntake([]string{"event", "job"}, 3, 1)
	after := testutil.ToFloat64(intakeRequestsTotal.WithLabelValues("event"))
	assert.Equal(t, before+1, after)
}

func TestRecordFluencySubmission(t *testing.T) {
	before := testutil.ToFloat64(fluencySubmissionsTotal.WithLabelValues("Competent"))
	RecordFluencySubmission("Competent")
	assert.Equal(t, before+1, testutil.ToFloat64(fluencySubmissionsTotal.WithLabelValues("Competent")))
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("listings:events:live", "hit"))
	misses := testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("listings:events:live", "miss"))

	RecordCacheLookup("listings:events:live", true)
	RecordCacheLookup("listings:events:live", false)
	RecordCacheLookup("listings:events:live", false)

	assert.Equal(t, hits+1, testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("listings:events:live", "hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("listings:events:live", "miss")))
}

func TestSetDependencyHealth(t *testing.T) {
	SetDependencyHealth("redis", true)
	assert.Equal(t, 1.0, testutil.ToFloat64(dependencyHealth.WithLabelValues("redis")))
	SetDependencyHealth("redis", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(dependencyHealth.WithLabelValues("redis")))
}

func TestHandler_ExposesRecordedSeries(t *testing.T) {
	RecordHTTPRequest(http.MethodGet, "/intake", http.StatusOK, 5*time.Millisecond)
	RecordIntake(nil, 0, 0)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `http_requests_total{endpoint="/intake",method="GET",status="200"}`)
	assert.Contains(t, rr.Body.String(), "intake_recommendations_returned")
}
