// Package ibm provides descriptors for IBM Quantum processors.
//
// Each descriptor embeds a device.Store and supplies its name, native gate
// set and connectivity. Constructors populate every native gate on every
// qubit and on both directions of every edge with device.DefaultGateTime.
//
// Devices are chosen by Variant:
//
//	v, err := ibm.ParseVariant("ibmq_belem")
//	if err != nil {
//	    return err
//	}
//	d, err := ibm.New(v)
//
// Adding a processor means adding a descriptor file and a Variant constant
// here; the device package is not touched.
package ibm
