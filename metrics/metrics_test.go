package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Observe("github", "login", "success", 150*time.Millisecond)
	m.Observe("github", "login", "success", 50*time.Millisecond)
	m.Observe("github", "login", "not_found", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Attempts.WithLabelValues("github", "login", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Attempts.WithLabelValues("github", "login", "not_found")))

	expected := `
# HELP codeauth_auth_attempts_total Authentication attempts by provider, lifecycle event and outcome.
# TYPE codeauth_auth_attempts_total counter
codeauth_auth_attempts_total{event="login",outcome="not_found",provider="github"} 1
codeauth_auth_attempts_total{event="login",outcome="success",provider="github"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "codeauth_auth_attempts_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
}

func TestObserve_NilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.Observe("github", "login", "success", time.Second) })
}
