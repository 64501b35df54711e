package circuit

import (
	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-qae/gate"
)

// ReversalMapping maps ordering[k] to ordering[len-1-k]. Applying it twice is
// the identity.
func ReversalMapping(ordering []int) (map[int]int, error) {
	m := make(map[int]int, len(ordering))
	last := len(ordering) - 1
	for k, q := range ordering {
		if _, dup := m[q]; dup {
			return nil, errors.Wrapf(ErrConfiguration, "qubit %d appears twice in ordering %v", q, ordering)
		}
		m[q] = ordering[last-k]
	}
	return m, nil
}

// DaggerAndFlip inverts program and mirrors it through ordering: instructions
// come out in reverse order with negated angles and remapped qubits.
// Negating the angle inverts every rotation family in the gate package, and
// nothing else.
func DaggerAndFlip(program Program, ordering []int) (Program, error) {
	m, err := ReversalMapping(ordering)
	if err != nil {
		return nil, err
	}
	flipped := make(Program, 0, len(program))
	for k := len(program) - 1; k >= 0; k-- {
		inst := program[k]
		qubits := make([]int, len(inst.Qubits))
		for i, q := range inst.Qubits {
			mapped, ok := m[q]
			if !ok {
				return nil, errors.Wrapf(ErrLookup, "instruction %d (%s): qubit %d", k, inst.Type, q)
			}
			qubits[i] = mapped
		}
		params := make([]float64, len(inst.Params))
		for i, p := range inst.Params {
			params[i] = -p
		}
		flipped = append(flipped, gate.Instruction{
			Type:   inst.Type,
			Params: params,
			Qubits: qubits,
		})
	}
	return flipped, nil
}
