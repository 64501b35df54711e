package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oqtopus-team/oqtopus-qae/circuit"
	"github.com/oqtopus-team/oqtopus-qae/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	meterName           = "github.com/oqtopus-team/oqtopus-qae/log"
	instructionsCounter = "qae.instructions"
	numQubitsKey        = "num_qubits"
	numLatentQubitsKey  = "num_latent_qubits"
	numInstructionsKey  = "num_instructions"
	formatKeyInMetrics  = "format"
	buildMetricsMessage = "Build"
)

// BuildMetrics records one entry per generated circuit. File output goes to
// a daily JSON log when a directory is given; the counter goes to mp, or to
// the global otel meter provider when mp is nil.
type BuildMetrics struct {
	dl      *dailyLogger
	logger  *slog.Logger
	counter metric.Int64Counter
}

func NewBuildMetrics(fileDir string, mp metric.MeterProvider) (*BuildMetrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	counter, err := mp.Meter(meterName).Int64Counter(instructionsCounter,
		metric.WithDescription("number of generated instructions"),
		metric.WithUnit("{instruction}"))
	if err != nil {
		return nil, err
	}
	m := &BuildMetrics{counter: counter}
	if fileDir == "" {
		return m, nil
	}
	if err := common.IsDirWritable(fileDir); err != nil {
		zap.L().Error("failed to set up build metrics", zap.Error(err))
		return nil, fmt.Errorf("failed to write to %s: %w", fileDir, err)
	}
	m.dl = newDailyLogger(fileDir)
	m.logger = slog.New(slog.NewJSONHandler(m.dl, nil))
	return m, nil
}

func (m *BuildMetrics) Record(ctx context.Context, format string, c *circuit.Circuit) {
	m.counter.Add(ctx, int64(c.Len()),
		metric.WithAttributes(attribute.String(formatKeyInMetrics, format)))
	if m.logger == nil {
		return
	}
	m.logger.InfoContext(ctx,
		buildMetricsMessage,
		slog.String(formatKeyInMetrics, format),
		slog.Int(numQubitsKey, c.NumQubits),
		slog.Int(numLatentQubitsKey, c.NumLatentQubits),
		slog.Int(numInstructionsKey, c.Len()),
	)
}

func (m *BuildMetrics) Close() error {
	if m.dl == nil {
		return nil
	}
	return m.dl.Close()
}

type dailyLogger struct {
	mu              sync.Mutex
	fileDir         string
	currentFileName string
	file            *os.File
	now             func() time.Time
}

func newDailyLogger(fileDir string) *dailyLogger {
	return &dailyLogger{
		fileDir: fileDir,
		now:     time.Now,
	}
}

func (dl *dailyLogger) Write(p []byte) (n int, err error) {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	fileName := fmt.Sprintf("metrics-%s.log", dl.now().Format("2006-01-02"))
	if dl.file == nil || dl.currentFileName != fileName {
		if dl.file != nil {
			dl.file.Close()
		}
		var err error
		dl.file, err = os.OpenFile(filepath.Join(dl.fileDir, fileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return 0, err
		}
		dl.currentFileName = fileName
	}

	return dl.file.Write(p)
}

func (dl *dailyLogger) Close() error {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.file == nil {
		return nil
	}
	err := dl.file.Close()
	dl.file = nil
	return err
}
