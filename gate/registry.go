package gate

// Constructor builds an instruction from an angle and its qubits, control first.
type Constructor func(theta float64, qubits ...int) Instruction

type registryKey struct {
	axis  Axis
	arity int
}

// Registry maps (axis, arity) to a constructor. Registries are built once at
// init and are never mutated, so they are shared by concurrent builds.
type Registry struct {
	name         string
	constructors map[registryKey]Constructor
	definitions  []Definition
}

var (
	// Standard resolves every (axis, arity) pair to its own gate family.
	Standard *Registry
	// Legacy resolves the controlled Z rotation to the CRX constructor, for
	// consumers that expect the controlled Z blocks labeled CRX.
	Legacy *Registry
)

func init() {
	Standard = newRegistry("standard", map[registryKey]Type{
		{X, 1}: RX, {Y, 1}: RY, {Z, 1}: RZ,
		{X, 2}: CRX, {Y, 2}: CRY, {Z, 2}: CRZ,
	})
	Legacy = newRegistry("legacy", map[registryKey]Type{
		{X, 1}: RX, {Y, 1}: RY, {Z, 1}: RZ,
		{X, 2}: CRX, {Y, 2}: CRY, {Z, 2}: CRX,
	})
}

func newRegistry(name string, table map[registryKey]Type) *Registry {
	r := &Registry{
		name:         name,
		constructors: make(map[registryKey]Constructor, len(table)),
		definitions:  []Definition{definitionOf(CRX), definitionOf(CRY), definitionOf(CRZ)},
	}
	for k, t := range table {
		r.constructors[k] = constructorOf(t)
	}
	return r
}

func constructorOf(t Type) Constructor {
	return func(theta float64, qubits ...int) Instruction {
		q := make([]int, len(qubits))
		copy(q, qubits)
		return Instruction{
			Type:   t,
			Params: []float64{theta},
			Qubits: q,
		}
	}
}

func (r *Registry) Name() string {
	return r.name
}

func (r *Registry) Lookup(axis Axis, arity int) (Constructor, bool) {
	c, ok := r.constructors[registryKey{axis, arity}]
	return c, ok
}

// Definitions returns the controlled gate definitions a backend must register
// before it can interpret instructions from this registry.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, len(r.definitions))
	copy(defs, r.definitions)
	return defs
}

// Default returns Legacy when legacyCRZ is set, Standard otherwise.
func Default(legacyCRZ bool) *Registry {
	if legacyCRZ {
		return Legacy
	}
	return Standard
}
