package mqtt

import (
	"fmt"
	"strings"
)

// Topic prefixes for qpudev MQTT topics.
const (
	// TopicPrefixDevice is the base for device descriptor topics.
	TopicPrefixDevice = "qpudev/device"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "qpudev/system"
)

// Topics provides builders for qpudev MQTT topics.
//
//	topic, _ := mqtt.Topics{}.DeviceGeneric("ibmq_belem")
//	// Returns: "qpudev/device/ibmq_belem/generic"
type Topics struct{}

// DeviceGeneric returns the retained topic carrying a device's generic
// descriptor. Device names containing MQTT separators or wildcards are
// rejected.
//
// Example: qpudev/device/ibmq_belem/generic
func (Topics) DeviceGeneric(device string) (string, error) {
	if device == "" || strings.ContainsAny(device, "/+#") {
		return "", fmt.Errorf("%w: device name %q", ErrInvalidTopic, device)
	}
	return fmt.Sprintf("%s/%s/generic", TopicPrefixDevice, device), nil
}

// SystemStatus returns the topic for process online/offline status.
//
// Example: qpudev/system/status
func (Topics) SystemStatus() string {
	return TopicPrefixSystem + "/status"
}

// AllDeviceGeneric returns a wildcard matching every device's generic topic.
//
// Example: qpudev/device/+/generic
func (Topics) AllDeviceGeneric() string {
	return TopicPrefixDevice + "/+/generic"
}
