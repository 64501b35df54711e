//go:build unit
// +build unit

package log

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func instructionsByFormat(t *testing.T, rm metricdata.ResourceMetrics) map[string]int64 {
	t.Helper()
	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != instructionsCounter {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is %T", m.Name, m.Data)
			assert.True(t, sum.IsMonotonic)
			for _, dp := range sum.DataPoints {
				v, ok := dp.Attributes.Value(formatKeyInMetrics)
				require.True(t, ok)
				got[v.AsString()] = dp.Value
			}
		}
	}
	return got
}

func TestBuildMetricsCounter(t *testing.T) {
	tel := NewTelemetry()
	defer tel.Shutdown(context.Background())

	m, err := NewBuildMetrics("", tel.MeterProvider)
	require.NoError(t, err)
	ctx := context.Background()
	m.Record(ctx, "quil", testCircuit(t))
	m.Record(ctx, "quil", testCircuit(t))
	m.Record(ctx, "json", testCircuit(t))

	rm, err := tel.Collect(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"quil": 24, "json": 12}, instructionsByFormat(t, rm))
}

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	undo := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(undo)
	return logs
}

func TestTelemetrySpansAreLogged(t *testing.T) {
	logs := observe(t)
	tel := NewTelemetry()
	tracer := tel.TracerProvider.Tracer("test")

	_, ok := tracer.Start(context.Background(), "ok")
	ok.End()
	_, failed := tracer.Start(context.Background(), "failed")
	failed.SetStatus(codes.Error, "broken")
	failed.RecordError(errors.New("broken"))
	failed.End()

	require.NoError(t, tel.Shutdown(context.Background()))

	ended := logs.FilterMessage("span ended").All()
	require.Len(t, ended, 1)
	assert.Equal(t, "ok", ended[0].ContextMap()["span"])

	warned := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warned, 1)
	assert.Equal(t, "span failed/reason:broken", warned[0].Message)
	assert.Equal(t, "failed", warned[0].ContextMap()["span"])
	assert.Equal(t, "Error", warned[0].ContextMap()["status"])
}

func TestTelemetryShutdownLogsMetrics(t *testing.T) {
	logs := observe(t)
	tel := NewTelemetry()
	m, err := NewBuildMetrics("", tel.MeterProvider)
	require.NoError(t, err)
	m.Record(context.Background(), "qasm3", testCircuit(t))

	require.NoError(t, tel.Shutdown(context.Background()))
	entries := logs.FilterMessage("metric/name:qae.instructions/value:12/attributes:format=qasm3").All()
	assert.Len(t, entries, 1)
}

func TestLogVersion(t *testing.T) {
	logs := observe(t)
	LogVersion()
	assert.Equal(t, 1, logs.FilterMessageSnippet("qae version:").Len())
}
