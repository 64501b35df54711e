package common

import _ "embed"

// DemoCircuitSetting is the demo autoencoder: 7 qubits, 1 latent qubit.
//
//go:embed assets/demo.toml
var DemoCircuitSetting string
