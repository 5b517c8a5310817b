package mqtt

import "errors"

var (
	ErrNotConnected     = errors.New("mqtt: client not connected")
	ErrConnectionFailed = errors.New("mqtt: connection failed")
	ErrPublishFailed    = errors.New("mqtt: publish failed")
	ErrInvalidQoS       = errors.New("mqtt: QoS must be 0, 1 or 2")

	// ErrInvalidTopic covers empty topics and device names that would
	// escape their topic level ("/", "+", "#").
	ErrInvalidTopic = errors.New("mqtt: invalid topic")
)
