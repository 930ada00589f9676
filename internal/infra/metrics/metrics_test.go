//go:build unit

package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nagoyameshi/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryHandler(t *testing.T) {
	reg := metrics.NewRegistry()

	reg.ObserveHTTP("/api/restaurants/:id", http.MethodGet, 200, 12*time.Millisecond)
	reg.ObserveBilling("create_subscription", errors.New("card declined"), 80*time.Millisecond)
	reg.ObserveRevocation("revoke")

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	out := string(body)

	assert.Contains(t, out, `nagoyameshi_http_requests_total{method="GET",route="/api/restaurants/:id",status="200"} 1`)
	assert.Contains(t, out, `nagoyameshi_billing_calls_total{operation="create_subscription",outcome="error"} 1`)
	assert.Contains(t, out, `nagoyameshi_token_revocation_events_total{event="revoke"} 1`)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := metrics.NewRegistry()
	b := metrics.NewRegistry()
	a.ObserveRevocation("hit")

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.NotContains(t, rec.Body.String(), `event="hit"`)
}
