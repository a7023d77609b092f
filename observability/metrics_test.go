package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out[m.Name] += dp.Value
			}
		}
	}
	return out
}

func TestMetrics_Counters(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewMetrics(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.PlanGenerated(ctx, true)
	m.PlanGenerated(ctx, false)
	m.SourceFallback(ctx, "flight")
	m.Exported(ctx, "pdf")
	m.Booked(ctx)

	got := collect(t, reader)
	assert.Equal(t, int64(2), got["plans_generated_total"])
	assert.Equal(t, int64(1), got["price_source_fallbacks_total"])
	assert.Equal(t, int64(1), got["exports_total"])
	assert.Equal(t, int64(1), got["bookings_total"])
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.PlanGenerated(context.Background(), true)
		m.SourceFallback(context.Background(), "hotel")
		m.Exported(context.Background(), "xlsx")
		m.Booked(context.Background())
	})
}
