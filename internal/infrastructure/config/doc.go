// Package config handles loading and validating qpudev-core configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables (QPUDEV_*)
//   - Validation of required fields and the device list
//   - Default value handling
//
// Device calibration is validated here for shape only (non-negative
// times and rates, known variants). Qubit ranges and connectivity depend
// on the device layout and are checked when the calibration is applied.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range cfg.Devices {
//	    fmt.Println(d.Variant)
//	}
package config
