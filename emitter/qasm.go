package emitter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/oqtopus-team/oqtopus-qae/circuit"
	"github.com/oqtopus-team/oqtopus-qae/common"
	"github.com/oqtopus-team/oqtopus-qae/gate"
)

// QASM3 writes an OpenQASM 3 program over a single register q. The
// controlled rotations come from stdgates.inc, so no definitions are emitted.
type QASM3 struct{}

func (q *QASM3) Format() string {
	return FormatQASM3
}

func (q *QASM3) Emit(w io.Writer, h *Header, c *circuit.Circuit) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("OPENQASM 3;\n")
	bw.WriteString("include \"stdgates.inc\";\n")
	if h != nil {
		fmt.Fprintf(bw, "// id: %s\n", h.ID)
		fmt.Fprintf(bw, "// created: %s\n", h.Created)
		fmt.Fprintf(bw, "// version: %s\n", h.Version)
	}
	size := c.NumQubits
	if m := c.MaxQubit() + 1; m > size {
		size = m
	}
	fmt.Fprintf(bw, "qubit[%d] q;\n", size)
	for _, inst := range c.Instructions() {
		bw.WriteString(QASM3Instruction(inst))
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func QASM3Instruction(inst gate.Instruction) string {
	params := make([]string, 0, len(inst.Params))
	for _, p := range inst.Params {
		params = append(params, common.FormatAngle(p))
	}
	operands := make([]string, 0, len(inst.Qubits))
	for _, q := range inst.Qubits {
		operands = append(operands, fmt.Sprintf("q[%d]", q))
	}
	return fmt.Sprintf("%s(%s) %s;", strings.ToLower(inst.Type.String()),
		strings.Join(params, ", "), strings.Join(operands, ", "))
}
