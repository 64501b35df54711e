package circuit

import "github.com/go-faster/errors"

// Sentinels are matched with errors.Is; context is added with errors.Wrapf.
var (
	// ErrConfiguration reports a malformed configuration, detected before any
	// instruction is emitted.
	ErrConfiguration = errors.New("circuit: invalid configuration")

	// ErrOutOfRange reports a parameter slice reaching past the end of thetas.
	ErrOutOfRange = errors.New("circuit: parameter slice out of range")

	// ErrLookup reports a qubit missing from the reversal mapping.
	ErrLookup = errors.New("circuit: qubit not in ordering")

	// ErrLengthMismatch reports qubit and parameter lists of incompatible lengths.
	ErrLengthMismatch = errors.New("circuit: length mismatch")
)
