package gate

import (
	"fmt"
	"strings"
)

type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "Unknown"
	}
}

func (a Axis) Valid() bool {
	return a == X || a == Y || a == Z
}

func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "Y":
		return Y, nil
	case "Z":
		return Z, nil
	default:
		return X, fmt.Errorf("%q is an unknown axis", s)
	}
}

// Type is a rotation gate family. Controlled types take the control qubit first.
type Type int

const (
	RX Type = iota
	RY
	RZ
	CRX
	CRY
	CRZ
)

func (t Type) String() string {
	switch t {
	case RX:
		return "RX"
	case RY:
		return "RY"
	case RZ:
		return "RZ"
	case CRX:
		return "CRX"
	case CRY:
		return "CRY"
	case CRZ:
		return "CRZ"
	default:
		return "UNKNOWN"
	}
}

func (t Type) Arity() int {
	if t >= CRX {
		return 2
	}
	return 1
}

func (t Type) Axis() Axis {
	return Axis(int(t) % 3)
}

type Instruction struct {
	Type   Type
	Params []float64
	Qubits []int
}

func (i Instruction) String() string {
	params := make([]string, 0, len(i.Params))
	for _, p := range i.Params {
		params = append(params, fmt.Sprintf("%g", p))
	}
	qubits := make([]string, 0, len(i.Qubits))
	for _, q := range i.Qubits {
		qubits = append(qubits, fmt.Sprintf("%d", q))
	}
	return fmt.Sprintf("%s(%s) %s", i.Type, strings.Join(params, ","), strings.Join(qubits, " "))
}

// Control returns the control qubit of a two-qubit instruction, or -1.
func (i Instruction) Control() int {
	if i.Type.Arity() != 2 || len(i.Qubits) < 2 {
		return -1
	}
	return i.Qubits[0]
}

func (i Instruction) Target() int {
	if len(i.Qubits) == 0 {
		return -1
	}
	return i.Qubits[len(i.Qubits)-1]
}
