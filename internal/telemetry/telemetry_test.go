package telemetry_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/sattutor/internal/grader"
	"github.com/remaimber-it/sattutor/internal/telemetry"
)

var _ grader.Recorder = (*telemetry.Metrics)(nil)

func TestRecordAnalysis(t *testing.T) {
	m := telemetry.New()

	m.RecordAnalysis(grader.OutcomeOK, "")
	m.RecordAnalysis(grader.OutcomeFallback, "timeout")
	m.RecordAnalysis(grader.OutcomeFallback, "timeout")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Analyses.WithLabelValues(grader.OutcomeOK, "")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Analyses.WithLabelValues(grader.OutcomeFallback, "timeout")))
}

func TestRecordAttemptAndSessions(t *testing.T) {
	m := telemetry.New()

	m.RecordAttempt("Algebra", true)
	m.RecordAttempt("Algebra", false)
	m.RecordEmptyFilter()
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Attempts.WithLabelValues("Algebra", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Attempts.WithLabelValues("Algebra", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EmptyFilters))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveSessions))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := telemetry.New()
	m.RecordAttempt("Geometry", true)
	m.ObserveRequest(http.MethodGet, "/health", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `tutor_attempts_total{correct="true",topic="Geometry"} 1`)
	assert.Contains(t, string(body), `http_requests_total{endpoint="/health",method="GET",status="200"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := telemetry.New()
	b := telemetry.New()

	a.RecordEmptyFilter()

	assert.Equal(t, 0.0, testutil.ToFloat64(b.EmptyFilters))
}
