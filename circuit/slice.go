package circuit

import "github.com/go-faster/errors"

// SliceThetas returns a copy of thetas[start:start+count].
func SliceThetas(thetas []float64, start, count int) ([]float64, error) {
	if start < 0 || count < 0 || start+count > len(thetas) {
		return nil, errors.Wrapf(ErrOutOfRange, "slice [%d, %d) of %d thetas", start, start+count, len(thetas))
	}
	out := make([]float64, count)
	copy(out, thetas[start:start+count])
	return out, nil
}

// InitialBlockRange is the (start, count) of the first rotation block.
func InitialBlockRange(n int) (int, int) {
	return 0, n
}

// ControlledBlockRange is the (start, count) of the i-th controlled block.
func ControlledBlockRange(n, i int) (int, int) {
	return n + (n-1)*i, n - 1
}

// FinalBlockRange is the (start, count) of the last rotation block.
func FinalBlockRange(n int) (int, int) {
	return n + (n-1)*n, n
}

// NumThetas is the parameter count of a circuit with n input qubits.
func NumThetas(n int) int {
	return 2*n + n*(n-1)
}
