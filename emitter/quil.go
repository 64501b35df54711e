package emitter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oqtopus-team/oqtopus-qae/circuit"
	"github.com/oqtopus-team/oqtopus-qae/common"
	"github.com/oqtopus-team/oqtopus-qae/gate"
)

// Quil writes the gate definitions followed by one line per instruction,
// "<GATE>(<angle>) <control?> <target>".
type Quil struct{}

func (q *Quil) Format() string {
	return FormatQuil
}

func (q *Quil) Emit(w io.Writer, h *Header, c *circuit.Circuit) error {
	bw := bufio.NewWriter(w)
	if h != nil {
		fmt.Fprintf(bw, "# id: %s\n", h.ID)
		fmt.Fprintf(bw, "# created: %s\n", h.Created)
		fmt.Fprintf(bw, "# version: %s\n", h.Version)
	}
	for _, d := range c.Definitions {
		bw.WriteString(d.String())
		bw.WriteString("\n")
	}
	for _, inst := range c.Instructions() {
		bw.WriteString(QuilInstruction(inst))
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func QuilInstruction(inst gate.Instruction) string {
	params := make([]string, 0, len(inst.Params))
	for _, p := range inst.Params {
		params = append(params, common.FormatAngle(p))
	}
	qubits := make([]string, 0, len(inst.Qubits))
	for _, q := range inst.Qubits {
		qubits = append(qubits, strconv.Itoa(q))
	}
	return fmt.Sprintf("%s(%s) %s", inst.Type, strings.Join(params, ", "), strings.Join(qubits, " "))
}
