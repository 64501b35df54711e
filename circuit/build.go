package circuit

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-qae/gate"
	"go.uber.org/zap"
)

// Circuit is a built autoencoder: the gate definitions a backend has to
// register, then the encode stage followed by its daggered and flipped decode
// stage.
type Circuit struct {
	NumQubits       int
	NumLatentQubits int
	Definitions     []gate.Definition
	Encode          Program
	Decode          Program
}

// Instructions returns Encode followed by Decode.
func (c *Circuit) Instructions() Program {
	return concat(c.Encode, c.Decode)
}

func (c *Circuit) Len() int {
	return len(c.Encode) + len(c.Decode)
}

// MaxQubit is the largest qubit index used by any instruction, or -1.
func (c *Circuit) MaxQubit() int {
	max := -1
	for _, inst := range c.Instructions() {
		for _, q := range inst.Qubits {
			if q > max {
				max = q
			}
		}
	}
	return max
}

// BuildFrom validates its arguments into a Config and builds it.
func BuildFrom(numQubits, numLatentQubits int, thetas []float64, axes []gate.Axis, qubits []int, opts ...Option) (*Circuit, error) {
	cfg, err := NewConfig(numQubits, numLatentQubits, thetas, axes, qubits, opts...)
	if err != nil {
		return nil, err
	}
	return Build(cfg)
}

// Build emits the encode stage (initial rotations, one controlled block per
// input qubit, final rotations) and appends DaggerAndFlip of it over the full
// qubit ordering.
func Build(cfg *Config) (*Circuit, error) {
	if cfg == nil {
		return nil, errors.Wrap(ErrConfiguration, "nil config")
	}
	if err := validateCounts(cfg.numQubits, cfg.numLatentQubits); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	reg := cfg.Registry()
	n := cfg.NumInputQubits()
	thetas := cfg.thetas
	axes := cfg.axes
	inputs := cfg.InputQubits()
	zap.L().Debug(fmt.Sprintf("building circuit/num_qubits:%d/num_input_qubits:%d/registry:%s",
		cfg.numQubits, n, reg.Name()))

	start, count := InitialBlockRange(n)
	ts, err := SliceThetas(thetas, start, count)
	if err != nil {
		return nil, errors.Wrap(err, "initial block")
	}
	initial, err := BuildRotationBlock(reg, axes[0], inputs, ts)
	if err != nil {
		return nil, errors.Wrap(err, "initial block")
	}

	controlled := make([]Program, 0, n)
	for i := 0; i < n; i++ {
		start, count := ControlledBlockRange(n, i)
		ts, err := SliceThetas(thetas, start, count)
		if err != nil {
			return nil, errors.Wrapf(err, "controlled block %d", i)
		}
		block, err := BuildControlledRotationBlock(reg, axes[i+1], inputs, ts, inputs[i])
		if err != nil {
			return nil, errors.Wrapf(err, "controlled block %d", i)
		}
		controlled = append(controlled, block)
	}

	start, count = FinalBlockRange(n)
	ts, err = SliceThetas(thetas, start, count)
	if err != nil {
		return nil, errors.Wrap(err, "final block")
	}
	final, err := BuildRotationBlock(reg, axes[n+1], inputs, ts)
	if err != nil {
		return nil, errors.Wrap(err, "final block")
	}

	encode := concat(append(append([]Program{initial}, controlled...), final)...)
	decode, err := DaggerAndFlip(encode, cfg.qubits)
	if err != nil {
		return nil, errors.Wrap(err, "decode stage")
	}
	zap.L().Debug(fmt.Sprintf("built circuit/encode:%d/decode:%d", len(encode), len(decode)))

	return &Circuit{
		NumQubits:       cfg.numQubits,
		NumLatentQubits: cfg.numLatentQubits,
		Definitions:     reg.Definitions(),
		Encode:          encode,
		Decode:          decode,
	}, nil
}
