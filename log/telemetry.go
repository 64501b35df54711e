package log

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Telemetry owns the otel providers of one command. Ended spans are written
// to zap right away; metrics are pulled by a manual reader and written to zap
// on Shutdown.
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	reader         *sdkmetric.ManualReader
}

func NewTelemetry() *Telemetry {
	reader := sdkmetric.NewManualReader()
	return &Telemetry{
		TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithSyncer(&zapSpanExporter{})),
		MeterProvider:  sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
		reader:         reader,
	}
}

// SetGlobal installs both providers as the otel globals.
func (t *Telemetry) SetGlobal() {
	otel.SetTracerProvider(t.TracerProvider)
	otel.SetMeterProvider(t.MeterProvider)
}

func (t *Telemetry) Collect(ctx context.Context) (metricdata.ResourceMetrics, error) {
	var rm metricdata.ResourceMetrics
	err := t.reader.Collect(ctx, &rm)
	return rm, err
}

func (t *Telemetry) Shutdown(ctx context.Context) error {
	rm, err := t.Collect(ctx)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to collect metrics/reason:%s", err))
	} else {
		logMetrics(rm)
	}
	return multierr.Combine(
		err,
		t.TracerProvider.Shutdown(ctx),
		t.MeterProvider.Shutdown(ctx),
	)
}

func logMetrics(rm metricdata.ResourceMetrics) {
	enc := attribute.DefaultEncoder()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				zap.L().Info(fmt.Sprintf("metric/name:%s/value:%d/attributes:%s",
					m.Name, dp.Value, dp.Attributes.Encoded(enc)))
			}
		}
	}
}

type zapSpanExporter struct{}

func (e *zapSpanExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		fields := []zap.Field{
			zap.String("span", s.Name()),
			zap.Duration("duration", s.EndTime().Sub(s.StartTime())),
			zap.String("status", s.Status().Code.String()),
		}
		for _, kv := range s.Attributes() {
			fields = append(fields, zap.String(string(kv.Key), kv.Value.Emit()))
		}
		if s.Status().Code == codes.Error {
			zap.L().Warn("span failed/reason:"+s.Status().Description, fields...)
			continue
		}
		zap.L().Debug("span ended", fields...)
	}
	return nil
}

func (e *zapSpanExporter) Shutdown(context.Context) error {
	return nil
}
