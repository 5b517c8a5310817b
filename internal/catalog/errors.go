package catalog

import "errors"

var (
	// ErrDeviceNotFound is returned when no device is registered under a name.
	ErrDeviceNotFound = errors.New("catalog: device not found")

	// ErrDeviceExists is returned when adding a device whose name is already registered.
	ErrDeviceExists = errors.New("catalog: device already exists")

	// ErrInvalidCalibration is returned when a calibration entry fails validation.
	ErrInvalidCalibration = errors.New("catalog: invalid calibration")
)
