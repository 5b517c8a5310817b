package mqtt

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/nerrad567/qpudev-core/internal/infrastructure/config"
)

// Client publishes device descriptors to an MQTT broker.
//
// The broker retains each descriptor, and the client keeps the last payload
// per device so that a reconnect after a broker restart restores them along
// with the online status. Paho handles reconnection with exponential backoff.
//
// All methods are safe for concurrent use.
type Client struct {
	client pahomqtt.Client
	cfg    config.MQTTConfig

	mu           sync.RWMutex
	connected    bool
	onConnect    func()
	onDisconnect func(err error)
	logger       Logger

	// descriptors holds the last generic payload per device.
	descriptorsMu sync.Mutex
	descriptors   map[string][]byte
}

// Logger is the subset of logging.Logger the client uses.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Connect dials the broker and waits for the session until ctx is done or
// the connect timeout passes. The online status is published on success.
func Connect(ctx context.Context, cfg config.MQTTConfig) (*Client, error) {
	c := newClient(cfg)

	token := c.client.Connect()
	if err := waitToken(ctx, token, defaultConnectTimeout); err != nil {
		c.client.Disconnect(0)
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	// The OnConnect handler runs asynchronously; IsConnected callers that
	// follow immediately must already see the session.
	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()

	return c, nil
}

func newClient(cfg config.MQTTConfig) *Client {
	opts := buildClientOptions(cfg)
	configureLWT(opts, cfg.Broker.ClientID)

	c := &Client{
		cfg:         cfg,
		descriptors: make(map[string][]byte),
	}

	opts.SetOnConnectHandler(func(_ pahomqtt.Client) { c.handleConnect() })
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) { c.handleDisconnect(err) })
	opts.SetReconnectingHandler(func(_ pahomqtt.Client, _ *pahomqtt.ClientOptions) {
		if logger := c.getLogger(); logger != nil {
			logger.Info("reconnecting to MQTT broker")
		}
	})

	c.client = pahomqtt.NewClient(opts)
	return c
}

// waitToken blocks until token completes, ctx is done or timeout passes.
func waitToken(ctx context.Context, token pahomqtt.Token, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) handleConnect() {
	c.mu.Lock()
	c.connected = true
	callback := c.onConnect
	c.mu.Unlock()

	c.publishStatus(buildOnlinePayload(c.cfg.Broker.ClientID))
	c.republishDescriptors()

	if callback != nil {
		callback()
	}
}

func (c *Client) handleDisconnect(err error) {
	c.mu.Lock()
	c.connected = false
	callback := c.onDisconnect
	c.mu.Unlock()

	if logger := c.getLogger(); logger != nil {
		logger.Warn("MQTT connection lost", "error", err)
	}
	if callback != nil {
		callback(err)
	}
}

func (c *Client) publishStatus(payload []byte) pahomqtt.Token {
	return c.client.Publish(Topics{}.SystemStatus(), byte(c.cfg.QoS), true, payload)
}

// republishDescriptors restores every known descriptor after a reconnect,
// in device name order.
func (c *Client) republishDescriptors() {
	c.descriptorsMu.Lock()
	snapshot := maps.Clone(c.descriptors)
	c.descriptorsMu.Unlock()

	logger := c.getLogger()
	for _, device := range slices.Sorted(maps.Keys(snapshot)) {
		topic, err := Topics{}.DeviceGeneric(device)
		if err != nil {
			continue
		}
		token := c.client.Publish(topic, byte(c.cfg.QoS), true, snapshot[device])
		if !token.WaitTimeout(defaultPublishTimeout) || token.Error() != nil {
			if logger != nil {
				logger.Warn("republishing device descriptor failed", "device", device, "error", token.Error())
			}
		}
	}
	if logger != nil && len(snapshot) > 0 {
		logger.Info("device descriptors republished", "count", len(snapshot))
	}
}

// remember stores the latest descriptor of device for republishing.
func (c *Client) remember(device string, payload []byte) {
	c.descriptorsMu.Lock()
	defer c.descriptorsMu.Unlock()
	if c.descriptors == nil {
		c.descriptors = make(map[string][]byte)
	}
	c.descriptors[device] = slices.Clone(payload)
}

// Close publishes a graceful offline status, distinct from the LWT crash
// status, and disconnects.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}

	if c.IsConnected() {
		c.publishStatus(buildOfflinePayload(c.cfg.Broker.ClientID)).WaitTimeout(defaultPublishTimeout)
	}
	c.client.Disconnect(defaultDisconnectQuiesce)

	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
	return nil
}

// HealthCheck reports whether the session is up.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mqtt health check: %w", err)
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}
	return nil
}

// IsConnected returns the last known connection state.
func (c *Client) IsConnected() bool {
	if c.client == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected && c.client.IsConnected()
}

// SetOnConnect sets a callback run after every reconnect, once the
// descriptors have been republished.
func (c *Client) SetOnConnect(callback func()) {
	c.mu.Lock()
	c.onConnect = callback
	c.mu.Unlock()
}

// SetOnDisconnect sets a callback run when the connection is lost.
func (c *Client) SetOnDisconnect(callback func(err error)) {
	c.mu.Lock()
	c.onDisconnect = callback
	c.mu.Unlock()
}

// SetLogger sets a logger for connection events.
func (c *Client) SetLogger(logger Logger) {
	c.mu.Lock()
	c.logger = logger
	c.mu.Unlock()
}

func (c *Client) getLogger() Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logger
}
