package observability_test

import (
	"strings"
	"testing"

	"github.com/aretw0/cipherkit/internal/runtime"
	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/aretw0/cipherkit/pkg/observability"
	"github.com/aretw0/cipherkit/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_TransformHooks(t *testing.T) {
	m, err := observability.New("test")
	require.NoError(t, err)

	engine := runtime.NewEngine(runtime.WithLifecycleHooks(m.Hooks()))
	_, err = engine.Transform(domain.Request{Text: "Hello", Method: domain.MethodBase64, Mode: domain.ModeEncode})
	require.NoError(t, err)
	_, err = engine.Transform(domain.Request{Text: "%%", Method: domain.MethodBase64, Mode: domain.ModeDecode})
	require.Error(t, err)

	expected := `
# HELP test_transforms_total Total number of transformations by method, mode and outcome
# TYPE test_transforms_total counter
test_transforms_total{method="base64",mode="decode",outcome="error"} 1
test_transforms_total{method="base64",mode="encode",outcome="ok"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "test_transforms_total"))
	n, err := testutil.GatherAndCount(m.Registry(), "test_transform_input_bytes")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_HistoryHooks(t *testing.T) {
	m, err := observability.New("test")
	require.NoError(t, err)

	c := session.NewController(runtime.NewEngine(), session.WithLifecycleHooks(m.Hooks()))
	for i := 0; i < 11; i++ {
		c.SetInput("x")
		c.Clear()
	}

	expected := `
# HELP test_history_events_total History appends and evictions
# TYPE test_history_events_total counter
test_history_events_total{event="history_append"} 11
test_history_events_total{event="history_evict"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "test_history_events_total"))
}

func TestMetrics_Summary(t *testing.T) {
	m, err := observability.New("ck")
	require.NoError(t, err)

	hooks := m.Hooks()
	hooks.OnTransform(&domain.TransformEvent{Method: domain.MethodHex, Mode: domain.ModeEncode, InputBytes: 10})
	hooks.OnTransform(&domain.TransformEvent{Method: domain.MethodHex, Mode: domain.ModeEncode, InputBytes: 30})

	rows, err := m.Summary()
	require.NoError(t, err)

	byName := map[string]observability.Row{}
	for _, r := range rows {
		byName[r.Name+r.Labels] = r
	}
	assert.Equal(t, 2.0, byName[`ck_transforms_total{method="hex",mode="encode",outcome="ok"}`].Value)
	assert.Equal(t, 2.0, byName["ck_transform_input_bytes_count"].Value)
	assert.Equal(t, 40.0, byName["ck_transform_input_bytes_sum"].Value)
}

func TestMetrics_SharedRegistryConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.New("dup", observability.WithRegistry(reg))
	require.NoError(t, err)

	_, err = observability.New("dup", observability.WithRegistry(reg))
	assert.Error(t, err)
}
