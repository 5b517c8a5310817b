// Package device defines the capability contract shared by every quantum
// hardware descriptor, and the conversion of a descriptor into a
// vendor-neutral generic device.
//
// # Architecture
//
//	┌───────────────────────────────────────────────────────────────────┐
//	│                        Device Contract                            │
//	│                                                                   │
//	│  ┌──────────────────┐   ┌──────────────────┐   ┌───────────────┐  │
//	│  │     Querier      │   │      Store       │   │   ToGeneric   │  │
//	│  │  (contract.go)   │   │    (store.go)    │   │ (convert.go)  │  │
//	│  │                  │   │                  │   │               │  │
//	│  │ • gate times     │   │ • gate tables    │   │ • both edge   │  │
//	│  │ • decoherence    │   │ • decoherence    │   │   directions  │  │
//	│  │ • topology       │   │ • JSON           │   │ • first error │  │
//	│  └──────────────────┘   └──────────────────┘   │   aborts      │  │
//	│           ▲                      ▲             └───────────────┘  │
//	└───────────│──────────────────────│────────────────────────────────┘
//	            │                      │
//	  ┌─────────┴──────────────────────┴────────┐
//	  │  concrete descriptors (device/ibm)      │
//	  │  embed Store + supply a topology.Graph  │
//	  └─────────────────────────────────────────┘
//
// Validation lives in this package only. A concrete descriptor supplies its
// name, native gate names and connectivity graph, and embeds a Store for the
// mutable tables; the package-level setters (SetSingleQubitGateTime,
// SetTwoQubitGateTime, AddDamping, AddDephasing) check every write against
// the Device interface before touching a table.
//
// # Two-qubit direction
//
// Two-qubit times are stored per ordered (control, target) pair. Setting
// (0, 1) does not make (1, 0) readable; use SetSymmetricTwoQubitGateTime
// when both directions should share a value. ToGeneric probes each
// direction of every edge separately, so a direction that was never set is
// simply absent from the generic device.
//
// # Decoherence boundary
//
// AddDamping and AddDephasing reject a qubit only when it is strictly
// greater than the qubit count. A rate added at qubit == QubitCount() is
// stored but lies outside the range ToGeneric copies.
//
// # Thread Safety
//
// Devices are not synchronised. Callers sharing an instance must serialise
// mutations against each other and against reads; catalog.Registry does
// this with a RWMutex.
//
// # Usage
//
//	d := ibm.NewBelemDevice()
//
//	if err := device.AddDamping(d, 0, 0.1); err != nil {
//	    return err
//	}
//	if err := device.SetSymmetricTwoQubitGateTime(d, "CNOT", 0, 1, 0.45); err != nil {
//	    return err
//	}
//
//	g, err := device.ToGeneric(d)
//	if err != nil {
//	    return err
//	}
package device
