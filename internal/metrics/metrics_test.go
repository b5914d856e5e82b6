package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics(t *testing.T) {
	m := New()

	m.ObserveRequest("/book-property", http.MethodPost, 200, 20*time.Millisecond)
	m.ObserveRequest("/book-property", http.MethodPost, 200, 30*time.Millisecond)
	m.ObserveRequest("/book-property", http.MethodPost, 400, 5*time.Millisecond)
	m.ObserveJob("mark-overdue-payments", nil, time.Second)
	m.ObserveJob("mark-overdue-payments", errors.New("db down"), time.Second)
	m.AddRelayed(3)

	body := scrape(t, m)
	assert.Contains(t, body, `rentease_http_requests_total{code="200",method="POST",route="/book-property"} 2`)
	assert.Contains(t, body, `rentease_http_requests_total{code="400",method="POST",route="/book-property"} 1`)
	assert.Contains(t, body, `rentease_job_runs_total{job="mark-overdue-payments",result="success"} 1`)
	assert.Contains(t, body, `rentease_job_runs_total{job="mark-overdue-payments",result="failure"} 1`)
	assert.Contains(t, body, "rentease_notifications_relayed_total 3")
	assert.Contains(t, body, "rentease_http_request_duration_seconds_count")
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a := New()
	b := New()
	a.AddRelayed(1)

	assert.Contains(t, scrape(t, a), "rentease_notifications_relayed_total 1")
	assert.Contains(t, scrape(t, b), "rentease_notifications_relayed_total 0")
}
