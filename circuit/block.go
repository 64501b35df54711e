package circuit

import (
	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-qae/gate"
)

// Program is an ordered instruction sequence.
type Program []gate.Instruction

func concat(programs ...Program) Program {
	size := 0
	for _, p := range programs {
		size += len(p)
	}
	out := make(Program, 0, size)
	for _, p := range programs {
		out = append(out, p...)
	}
	return out
}

// BuildRotationBlock emits one single-qubit rotation per qubit, bound to the
// theta at the same position.
func BuildRotationBlock(reg *gate.Registry, axis gate.Axis, qubits []int, thetas []float64) (Program, error) {
	if len(thetas) != len(qubits) {
		return nil, errors.Wrapf(ErrLengthMismatch, "rotation block: %d qubits, %d thetas", len(qubits), len(thetas))
	}
	ctor, ok := reg.Lookup(axis, 1)
	if !ok {
		return nil, errors.Wrapf(ErrConfiguration, "rotation block: no gate for axis %s", axis)
	}
	program := make(Program, 0, len(qubits))
	for i, q := range qubits {
		program = append(program, ctor(thetas[i], q))
	}
	return program, nil
}

// BuildControlledRotationBlock emits one controlled rotation from control to
// every other qubit, in qubit order. Thetas are consumed in the same order,
// skipping the control.
func BuildControlledRotationBlock(reg *gate.Registry, axis gate.Axis, qubits []int, thetas []float64, control int) (Program, error) {
	found := false
	for _, q := range qubits {
		if q == control {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.Wrapf(ErrConfiguration, "controlled block: control qubit %d not in %v", control, qubits)
	}
	if len(thetas) != len(qubits)-1 {
		return nil, errors.Wrapf(ErrLengthMismatch, "controlled block: %d qubits, %d thetas, want %d",
			len(qubits), len(thetas), len(qubits)-1)
	}
	ctor, ok := reg.Lookup(axis, 2)
	if !ok {
		return nil, errors.Wrapf(ErrConfiguration, "controlled block: no gate for axis %s", axis)
	}
	program := make(Program, 0, len(thetas))
	i := 0
	for _, q := range qubits {
		if q == control {
			continue
		}
		program = append(program, ctor(thetas[i], control, q))
		i++
	}
	return program, nil
}
