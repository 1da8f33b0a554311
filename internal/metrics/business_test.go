package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine checks that the Prometheus output contains a metric
// matching the name, a partial label pattern and a value. Regex matching
// tolerates the extra OTel scope labels the exporter injects.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	t.Run("Success_CreateBusinessMetrics", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)

		businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)
	})
}

func TestBusinessMetrics_Record(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	t.Run("Success_RecordOperation", func(t *testing.T) {
		bm.RecordOperation(context.Background(), "auth", "key_validate", "success")
		bm.RecordOperation(context.Background(), "auth", "key_validate", "error")
		bm.RecordOperation(context.Background(), "auth", "key_revoke", "success")
	})

	t.Run("Success_RecordDuration", func(t *testing.T) {
		bm.RecordDuration(context.Background(), "auth", "key_validate", 123*time.Millisecond, "success")
		bm.RecordDuration(context.Background(), "auth", "key_create", 456*time.Millisecond, "error")
	})
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.NotNil(t, noOpMetrics)
	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	t.Run("NoOp_RecordDoesNotPanic", func(t *testing.T) {
		noOpMetrics.RecordOperation(context.Background(), "auth", "key_validate", "success")
		noOpMetrics.RecordDuration(context.Background(), "auth", "key_validate", 100*time.Millisecond, "error")
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider("integration_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "auth", "key_validate", "success")
	bm.RecordOperation(ctx, "auth", "key_validate", "success")
	bm.RecordOperation(ctx, "auth", "key_validate", "error")
	bm.RecordOperation(ctx, "auth", "key_revoke", "success")

	bm.RecordDuration(ctx, "auth", "key_validate", 50*time.Millisecond, "success")
	bm.RecordDuration(ctx, "auth", "key_validate", 60*time.Millisecond, "success")
	bm.RecordDuration(ctx, "auth", "key_revoke", 100*time.Millisecond, "success")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)

	output := w.Body.String()

	assertMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="auth".*operation="key_validate".*status="success"`,
		`2`,
	)
	assertMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="auth".*operation="key_validate".*status="error"`,
		`1`,
	)
	assertMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="auth".*operation="key_validate".*status="success"`,
		`2`,
	)
}
