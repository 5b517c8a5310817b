// Package generic defines the vendor-neutral device description produced by
// converting a concrete hardware descriptor.
//
// A generic Device carries the qubit count, per-gate per-qubit execution
// times, per-gate per-pair execution times and per-qubit 3×3 decoherence
// matrices. It holds no reference to the chip it came from and is the only
// artefact handed to downstream compilers, so its JSON shape is a wire
// contract:
//
//	{
//	  "number_qubits": 5,
//	  "single_qubit_gates": {"PauliX": {"0": 1.0}},
//	  "two_qubit_gates":    {"CNOT": {"0,1": 1.0}},
//	  "decoherence_rates":  {"0": [[0.1,0,0],[0,0,0],[0,0,0]]}
//	}
//
// Setters re-validate qubit ranges against the device size. No
// connectivity check is made; any pair of in-range qubits is accepted.
package generic
