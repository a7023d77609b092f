package observability

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "vacationplanner"

// Metrics records planner counters. A nil *Metrics is a no-op.
type Metrics struct {
	plans     metric.Int64Counter
	fallbacks metric.Int64Counter
	exports   metric.Int64Counter
	bookings  metric.Int64Counter
}

// InitProvider installs a global meter provider backed by the Prometheus
// exporter and returns its shutdown func.
func InitProvider() (func(context.Context) error, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	if meter == nil {
		meter = otel.Meter(meterName)
	}
	m := &Metrics{}
	var err error
	if m.plans, err = meter.Int64Counter("plans_generated_total",
		metric.WithDescription("Trip plans produced by the planner")); err != nil {
		return nil, err
	}
	if m.fallbacks, err = meter.Int64Counter("price_source_fallbacks_total",
		metric.WithDescription("Prices that fell back to the static heuristic")); err != nil {
		return nil, err
	}
	if m.exports, err = meter.Int64Counter("exports_total",
		metric.WithDescription("Rendered trip exports")); err != nil {
		return nil, err
	}
	if m.bookings, err = meter.Int64Counter("bookings_total",
		metric.WithDescription("Mock bookings confirmed")); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) PlanGenerated(ctx context.Context, recommended bool) {
	if m == nil {
		return
	}
	m.plans.Add(ctx, 1, metric.WithAttributes(attribute.Bool("recommended", recommended)))
}

// SourceFallback counts a heuristic price; kind is "flight" or "hotel".
func (m *Metrics) SourceFallback(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.fallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *Metrics) Exported(ctx context.Context, format string) {
	if m == nil {
		return
	}
	m.exports.Add(ctx, 1, metric.WithAttributes(attribute.String("format", format)))
}

func (m *Metrics) Booked(ctx context.Context) {
	if m == nil {
		return
	}
	m.bookings.Add(ctx, 1)
}
