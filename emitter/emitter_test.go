//go:build unit
// +build unit

package emitter

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/oqtopus-team/oqtopus-qae/circuit"
	"github.com/oqtopus-team/oqtopus-qae/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoInputQubits(t *testing.T, opts ...circuit.Option) *circuit.Circuit {
	t.Helper()
	thetas := []float64{math.Pi, math.Pi / 2, math.Pi / 4, -math.Pi / 4, 0.5, 1}
	c, err := circuit.BuildFrom(4, 0, thetas, nil, nil, opts...)
	require.NoError(t, err)
	return c
}

func testHeader() *Header {
	return &Header{
		ID:      uuid.MustParse("5c1f4bd2-8d7e-4a1c-9a43-6c0b2f0e9d11"),
		Created: strfmt.DateTime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
		Version: "v1.0.0",
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{format: FormatQuil},
		{format: FormatQASM3},
		{format: FormatJSON},
		{format: "qasm2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			e, err := New(tt.format, false)
			if tt.wantErr {
				assert.EqualError(t, err, tt.format+" is an unknown format")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.format, e.Format())
		})
	}
}

func TestQuil(t *testing.T) {
	var buf bytes.Buffer
	err := (&Quil{}).Emit(&buf, nil, twoInputQubits(t))
	require.NoError(t, err)

	want := heredoc.Doc(`
		DEFGATE CRX(%theta):
		    1, 0, 0, 0
		    0, 1, 0, 0
		    0, 0, COS(%theta/2), -i*SIN(%theta/2)
		    0, 0, -i*SIN(%theta/2), COS(%theta/2)

		DEFGATE CRY(%theta):
		    1, 0, 0, 0
		    0, 1, 0, 0
		    0, 0, COS(%theta/2), -SIN(%theta/2)
		    0, 0, SIN(%theta/2), COS(%theta/2)

		DEFGATE CRZ(%theta):
		    1, 0, 0, 0
		    0, 1, 0, 0
		    0, 0, COS(%theta/2)-i*SIN(%theta/2), 0
		    0, 0, 0, COS(%theta/2)+i*SIN(%theta/2)

		RX(pi) 0
		RX(pi/2) 1
		CRX(pi/4) 0 1
		CRX(-pi/4) 1 0
		RX(0.5) 0
		RX(1) 1
		RX(-1) 2
		RX(-0.5) 3
		CRX(pi/4) 2 3
		CRX(-pi/4) 3 2
		RX(-pi/2) 2
		RX(-pi) 3
	`)
	assert.Equal(t, want, buf.String())
}

func TestQuilHeader(t *testing.T) {
	var buf bytes.Buffer
	err := (&Quil{}).Emit(&buf, testHeader(), twoInputQubits(t))
	require.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "# id: 5c1f4bd2-8d7e-4a1c-9a43-6c0b2f0e9d11", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "# created: 2024-01-02T03:04:05"))
	assert.Equal(t, "# version: v1.0.0", lines[2])
	assert.Equal(t, "DEFGATE CRX(%theta):", lines[3])
}

func TestQuilLegacyCRZ(t *testing.T) {
	thetas := []float64{0.25, 0.5, 0.75, 1, 1.25, 1.5}
	axes := []gate.Axis{gate.Z, gate.Z, gate.Z, gate.Z}
	c, err := circuit.BuildFrom(3, 1, thetas, axes, []int{5, 6, 7}, circuit.WithLegacyCRZ(true))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&Quil{}).Emit(&buf, nil, c))
	out := buf.String()
	assert.Contains(t, out, "DEFGATE CRZ(%theta):")
	assert.Contains(t, out, "CRX(0.75) 5 6\n")
	assert.Contains(t, out, "CRX(-0.75) 7 6\n")
	assert.NotContains(t, out, "CRZ(0")
	assert.NotContains(t, out, "CRZ(-")
}

func TestQASM3(t *testing.T) {
	var buf bytes.Buffer
	err := (&QASM3{}).Emit(&buf, nil, twoInputQubits(t))
	require.NoError(t, err)

	want := heredoc.Doc(`
		OPENQASM 3;
		include "stdgates.inc";
		qubit[4] q;
		rx(pi) q[0];
		rx(pi/2) q[1];
		crx(pi/4) q[0], q[1];
		crx(-pi/4) q[1], q[0];
		rx(0.5) q[0];
		rx(1) q[1];
		rx(-1) q[2];
		rx(-0.5) q[3];
		crx(pi/4) q[2], q[3];
		crx(-pi/4) q[3], q[2];
		rx(-pi/2) q[2];
		rx(-pi) q[3];
	`)
	assert.Equal(t, want, buf.String())
}

func TestQASM3RegisterCoversRelabeledQubits(t *testing.T) {
	thetas := []float64{0.25, 0.5, 0.75, 1, 1.25, 1.5}
	c, err := circuit.BuildFrom(3, 1, thetas, nil, []int{2, 9, 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&QASM3{}).Emit(&buf, testHeader(), c))
	out := buf.String()
	assert.Contains(t, out, "qubit[10] q;\n")
	assert.Contains(t, out, "// version: v1.0.0\n")
	assert.True(t, strings.HasPrefix(out, "OPENQASM 3;\n"))
}

type jsonInstruction struct {
	Gate   string    `json:"gate"`
	Params []float64 `json:"params"`
	Qubits []int     `json:"qubits"`
}

type jsonCircuit struct {
	ID              string            `json:"id"`
	Created         string            `json:"created"`
	Version         string            `json:"version"`
	NumQubits       int               `json:"num_qubits"`
	NumLatentQubits int               `json:"num_latent_qubits"`
	Definitions     []string          `json:"definitions"`
	Encode          []jsonInstruction `json:"encode"`
	Decode          []jsonInstruction `json:"decode"`
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name   string
		pretty bool
		header *Header
	}{
		{name: "compact", pretty: false},
		{name: "pretty with header", pretty: true, header: testHeader()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := (&JSON{Pretty: tt.pretty}).Emit(&buf, tt.header, twoInputQubits(t))
			require.NoError(t, err)

			var got jsonCircuit
			require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &got))
			assert.Equal(t, 4, got.NumQubits)
			assert.Equal(t, 0, got.NumLatentQubits)
			assert.Equal(t, []string{"CRX", "CRY", "CRZ"}, got.Definitions)
			require.Len(t, got.Encode, 6)
			require.Len(t, got.Decode, 6)
			assert.Equal(t, jsonInstruction{Gate: "CRX", Params: []float64{math.Pi / 4}, Qubits: []int{0, 1}}, got.Encode[2])
			assert.Equal(t, jsonInstruction{Gate: "RX", Params: []float64{-1}, Qubits: []int{2}}, got.Decode[0])

			if tt.header != nil {
				assert.Equal(t, tt.header.ID.String(), got.ID)
				assert.Equal(t, "v1.0.0", got.Version)
				assert.NotEmpty(t, got.Created)
			} else {
				assert.Empty(t, got.ID)
			}
			if tt.pretty {
				assert.Contains(t, buf.String(), "\n  \"num_qubits\": 4")
			} else {
				assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
			}
		})
	}
}
