package gate

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Definition is the symbolic matrix of a controlled rotation, parameterized
// by %theta, as a backend expects it in a gate definition preamble.
type Definition struct {
	Name    string
	Params  []string
	Entries [4][4]string
}

func definitionOf(t Type) Definition {
	const (
		cos  = "COS(%theta/2)"
		sin  = "SIN(%theta/2)"
		nsin = "-i*SIN(%theta/2)"
	)
	d := Definition{
		Name:   t.String(),
		Params: []string{"theta"},
		Entries: [4][4]string{
			{"1", "0", "0", "0"},
			{"0", "1", "0", "0"},
			{"0", "0", "", ""},
			{"0", "0", "", ""},
		},
	}
	switch t {
	case CRX:
		d.Entries[2][2], d.Entries[2][3] = cos, nsin
		d.Entries[3][2], d.Entries[3][3] = nsin, cos
	case CRY:
		d.Entries[2][2], d.Entries[2][3] = cos, "-"+sin
		d.Entries[3][2], d.Entries[3][3] = sin, cos
	case CRZ:
		d.Entries[2][2], d.Entries[2][3] = cos+"-i*"+sin, "0"
		d.Entries[3][2], d.Entries[3][3] = "0", cos+"+i*"+sin
	}
	return d
}

func (d Definition) String() string {
	var b strings.Builder
	params := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		params = append(params, "%"+p)
	}
	fmt.Fprintf(&b, "DEFGATE %s(%s):\n", d.Name, strings.Join(params, ", "))
	for _, row := range d.Entries {
		b.WriteString("    " + strings.Join(row[:], ", ") + "\n")
	}
	return b.String()
}

// Unitary returns the matrix of t bound to theta: 2x2 for single-qubit
// rotations, 4x4 with the control as the most significant qubit otherwise.
func Unitary(t Type, theta float64) [][]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	var block [2][2]complex128
	switch t.Axis() {
	case X:
		block = [2][2]complex128{{c, -1i * s}, {-1i * s, c}}
	case Y:
		block = [2][2]complex128{{c, -s}, {s, c}}
	case Z:
		block = [2][2]complex128{{cmplx.Exp(complex(0, -theta/2)), 0}, {0, cmplx.Exp(complex(0, theta/2))}}
	}
	if t.Arity() == 1 {
		return [][]complex128{
			{block[0][0], block[0][1]},
			{block[1][0], block[1][1]},
		}
	}
	return [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, block[0][0], block[0][1]},
		{0, 0, block[1][0], block[1][1]},
	}
}
