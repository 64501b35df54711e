//go:build unit
// +build unit

package log

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/oqtopus-team/oqtopus-qae/circuit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCircuit(t *testing.T) *circuit.Circuit {
	t.Helper()
	c, err := circuit.BuildFrom(4, 0, []float64{1, 2, 3, 4, 5, 6}, nil, nil)
	require.NoError(t, err)
	return c
}

func TestBuildMetricsRecord(t *testing.T) {
	dir := t.TempDir()
	m, err := NewBuildMetrics(dir, nil)
	require.NoError(t, err)

	m.Record(context.Background(), "quil", testCircuit(t))
	m.Record(context.Background(), "json", testCircuit(t))
	require.NoError(t, m.Close())

	path := filepath.Join(dir, "metrics-"+time.Now().Format("2006-01-02")+".log")
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var formats []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var entry struct {
			Msg             string `json:"msg"`
			Format          string `json:"format"`
			NumQubits       int    `json:"num_qubits"`
			NumLatentQubits int    `json:"num_latent_qubits"`
			NumInstructions int    `json:"num_instructions"`
		}
		require.NoError(t, jsoniter.Unmarshal(sc.Bytes(), &entry))
		assert.Equal(t, "Build", entry.Msg)
		assert.Equal(t, 4, entry.NumQubits)
		assert.Equal(t, 0, entry.NumLatentQubits)
		assert.Equal(t, 12, entry.NumInstructions)
		formats = append(formats, entry.Format)
	}
	assert.Equal(t, []string{"quil", "json"}, formats)
}

func TestBuildMetricsWithoutDir(t *testing.T) {
	m, err := NewBuildMetrics("", nil)
	require.NoError(t, err)
	m.Record(context.Background(), "qasm3", testCircuit(t))
	assert.NoError(t, m.Close())
}

func TestBuildMetricsUnwritableDir(t *testing.T) {
	_, err := NewBuildMetrics(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}

func TestDailyLoggerRotates(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	dl := newDailyLogger(dir)
	dl.now = func() time.Time { return day }

	_, err := dl.Write([]byte("first\n"))
	require.NoError(t, err)
	day = day.Add(2 * time.Minute)
	_, err = dl.Write([]byte("second\n"))
	require.NoError(t, err)
	require.NoError(t, dl.Close())

	first, err := os.ReadFile(filepath.Join(dir, "metrics-2024-05-01.log"))
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "metrics-2024-05-02.log"))
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(first))
	assert.True(t, strings.HasPrefix(string(second), "second"))
}
