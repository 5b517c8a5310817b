package influxdb

import "errors"

var (
	ErrDisabled         = errors.New("influxdb: disabled in configuration")
	ErrConnectionFailed = errors.New("influxdb: connection failed")
	ErrNotConnected     = errors.New("influxdb: not connected")

	// ErrWriteFailed wraps batch errors delivered to the SetOnError callback.
	ErrWriteFailed = errors.New("influxdb: write failed")
)
