package circuit

import (
	"math"

	"github.com/go-faster/errors"
	"github.com/mohae/deepcopy"
	"github.com/oqtopus-team/oqtopus-qae/gate"
	"go.uber.org/multierr"
)

// Config describes one autoencoder circuit. It is immutable once built by
// NewConfig; accessors return copies.
type Config struct {
	numQubits       int
	numLatentQubits int
	thetas          []float64
	axes            []gate.Axis
	qubits          []int
	legacyCRZ       bool
}

type Option func(*Config)

// WithLegacyCRZ makes Z-axis controlled blocks emit CRX instructions.
func WithLegacyCRZ(enabled bool) Option {
	return func(c *Config) {
		c.legacyCRZ = enabled
	}
}

// NewConfig validates and copies its inputs. A nil axes defaults to n+2 X
// axes, a nil qubits to 0..numQubits-1. Every violation is reported in the
// returned error, and each one matches ErrConfiguration.
func NewConfig(numQubits, numLatentQubits int, thetas []float64, axes []gate.Axis, qubits []int, opts ...Option) (*Config, error) {
	c := &Config{
		numQubits:       numQubits,
		numLatentQubits: numLatentQubits,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := validateCounts(numQubits, numLatentQubits); err != nil {
		return nil, err
	}
	n := c.NumInputQubits()

	if axes == nil {
		axes = make([]gate.Axis, n+2)
		for i := range axes {
			axes[i] = gate.X
		}
	}
	if qubits == nil {
		qubits = make([]int, numQubits)
		for i := range qubits {
			qubits[i] = i
		}
	}
	c.thetas = copyOf(thetas)
	c.axes = copyOf(axes)
	c.qubits = copyOf(qubits)

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func copyOf[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return deepcopy.Copy(s).([]T)
}

// MaxQubits bounds num_qubits so that default axes, orderings and theta
// counts stay allocatable.
const MaxQubits = 1 << 12

func validateCounts(numQubits, numLatentQubits int) error {
	var err error
	if numQubits < 1 {
		err = multierr.Append(err, errors.Wrapf(ErrConfiguration, "num_qubits is %d, want at least 1", numQubits))
	}
	if numQubits > MaxQubits {
		err = multierr.Append(err, errors.Wrapf(ErrConfiguration,
			"num_qubits is %d, want at most %d", numQubits, MaxQubits))
	}
	if numLatentQubits < 0 || numLatentQubits > numQubits {
		err = multierr.Append(err, errors.Wrapf(ErrConfiguration,
			"num_latent_qubits is %d, want within [0, %d]", numLatentQubits, numQubits))
	}
	// parity by low bit; the sum itself may overflow
	if numQubits&1 != numLatentQubits&1 {
		err = multierr.Append(err, errors.Wrapf(ErrConfiguration,
			"num_qubits %d plus num_latent_qubits %d is odd, want an even number", numQubits, numLatentQubits))
	}
	return err
}

func (c *Config) validate() error {
	var err error
	n := c.NumInputQubits()

	if want := NumThetas(n); len(c.thetas) != want {
		err = multierr.Append(err, errors.Wrapf(ErrConfiguration,
			"thetas has %d entries, want %d for %d input qubits", len(c.thetas), want, n))
	}
	for i, th := range c.thetas {
		if math.IsNaN(th) || math.IsInf(th, 0) {
			err = multierr.Append(err, errors.Wrapf(ErrConfiguration, "theta %d is %v", i, th))
		}
	}
	if len(c.axes) != n+2 {
		err = multierr.Append(err, errors.Wrapf(ErrConfiguration,
			"axes has %d entries, want %d", len(c.axes), n+2))
	}
	for i, a := range c.axes {
		if !a.Valid() {
			err = multierr.Append(err, errors.Wrapf(ErrConfiguration, "axis %d is %d", i, int(a)))
		}
	}
	if len(c.qubits) < c.numQubits {
		err = multierr.Append(err, errors.Wrapf(ErrConfiguration,
			"qubits has %d entries, want at least %d", len(c.qubits), c.numQubits))
	}
	seen := make(map[int]struct{}, len(c.qubits))
	for _, q := range c.qubits {
		if q < 0 {
			err = multierr.Append(err, errors.Wrapf(ErrConfiguration, "qubit %d is negative", q))
		}
		if _, dup := seen[q]; dup {
			err = multierr.Append(err, errors.Wrapf(ErrConfiguration, "qubit %d appears twice", q))
		}
		seen[q] = struct{}{}
	}
	return err
}

func (c *Config) NumQubits() int {
	return c.numQubits
}

func (c *Config) NumLatentQubits() int {
	return c.numLatentQubits
}

// NumInputQubits is n = (N+L)/2.
func (c *Config) NumInputQubits() int {
	return (c.numQubits + c.numLatentQubits) / 2
}

func (c *Config) Thetas() []float64 {
	return copyOf(c.thetas)
}

func (c *Config) Axes() []gate.Axis {
	return copyOf(c.axes)
}

func (c *Config) Qubits() []int {
	return copyOf(c.qubits)
}

// InputQubits is the first n entries of the qubit ordering.
func (c *Config) InputQubits() []int {
	return copyOf(c.qubits[:c.NumInputQubits()])
}

func (c *Config) LegacyCRZ() bool {
	return c.legacyCRZ
}

func (c *Config) Registry() *gate.Registry {
	return gate.Default(c.legacyCRZ)
}
