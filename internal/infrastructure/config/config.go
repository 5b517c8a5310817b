package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/qpudev-core/internal/device/ibm"
)

// Config is the root configuration structure for qpudev-core.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Database DatabaseConfig `yaml:"database"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	API      APIConfig      `yaml:"api"`
	Logging  LoggingConfig  `yaml:"logging"`
	Devices  []DeviceConfig `yaml:"devices"`
}

// SiteConfig identifies the installation publishing device descriptors.
type SiteConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// DatabaseConfig contains SQLite database settings.
type DatabaseConfig struct {
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// MQTTConfig contains MQTT broker connection settings.
type MQTTConfig struct {
	Enabled   bool                `yaml:"enabled"`
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings, in seconds.
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
}

// InfluxDBConfig contains InfluxDB connection settings.
type InfluxDBConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// APIConfig contains HTTP API server settings.
type APIConfig struct {
	Host     string           `yaml:"host"`
	Port     int              `yaml:"port"`
	Timeouts APITimeoutConfig `yaml:"timeouts"`
}

// APITimeoutConfig contains HTTP timeout settings, in seconds.
type APITimeoutConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// DeviceConfig selects one IBM device and the calibration applied to it
// at startup.
type DeviceConfig struct {
	Variant     string            `yaml:"variant"`
	Calibration CalibrationConfig `yaml:"calibration"`
}

// CalibrationConfig mirrors catalog.Calibration in YAML form.
type CalibrationConfig struct {
	SingleQubitGates []SingleGateConfig `yaml:"single_qubit_gates"`
	TwoQubitGates    []TwoGateConfig    `yaml:"two_qubit_gates"`
	Damping          []RateConfig       `yaml:"damping"`
	Dephasing        []RateConfig       `yaml:"dephasing"`
}

// SingleGateConfig is a single-qubit gate time override.
type SingleGateConfig struct {
	Gate  string  `yaml:"gate"`
	Qubit int     `yaml:"qubit"`
	Time  float64 `yaml:"time"`
}

// TwoGateConfig is a two-qubit gate time override.
type TwoGateConfig struct {
	Gate      string  `yaml:"gate"`
	Control   int     `yaml:"control"`
	Target    int     `yaml:"target"`
	Time      float64 `yaml:"time"`
	Symmetric bool    `yaml:"symmetric"`
}

// RateConfig is a damping or dephasing contribution for one qubit.
type RateConfig struct {
	Qubit int     `yaml:"qubit"`
	Rate  float64 `yaml:"rate"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: QPUDEV_SECTION_KEY
// For example: QPUDEV_DATABASE_PATH, QPUDEV_API_PORT
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			ID:   "site-001",
			Name: "qpudev",
		},
		Database: DatabaseConfig{
			Path:        "./data/qpudev.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		MQTT: MQTTConfig{
			Enabled: true,
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "qpudev-core",
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
			},
		},
		InfluxDB: InfluxDBConfig{
			BatchSize:     100,
			FlushInterval: 10,
		},
		API: APIConfig{
			Host: "0.0.0.0",
			Port: 8080,
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 30,
				Idle:  60,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: QPUDEV_SECTION_KEY
func applyEnvOverrides(cfg *Config) error {
	// Database
	if v := os.Getenv("QPUDEV_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}

	// MQTT
	if v := os.Getenv("QPUDEV_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("QPUDEV_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("QPUDEV_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	// InfluxDB
	if v := os.Getenv("QPUDEV_INFLUXDB_URL"); v != "" {
		cfg.InfluxDB.URL = v
	}
	if v := os.Getenv("QPUDEV_INFLUXDB_TOKEN"); v != "" {
		cfg.InfluxDB.Token = v
	}

	// API
	if v := os.Getenv("QPUDEV_API_HOST"); v != "" {
		cfg.API.Host = v
	}
	if v := os.Getenv("QPUDEV_API_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing QPUDEV_API_PORT: %w", err)
		}
		cfg.API.Port = port
	}

	// Logging
	if v := os.Getenv("QPUDEV_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	return nil
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Site.ID == "" {
		errs = append(errs, "site.id is required")
	}

	if c.Database.Path == "" {
		errs = append(errs, "database.path is required")
	}

	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}
	if c.MQTT.Enabled && (c.MQTT.Broker.Port < 1 || c.MQTT.Broker.Port > 65535) {
		errs = append(errs, "mqtt.broker.port must be between 1 and 65535")
	}

	if c.InfluxDB.Enabled && c.InfluxDB.URL == "" {
		errs = append(errs, "influxdb.url is required when influxdb is enabled")
	}

	if c.API.Port < 1 || c.API.Port > 65535 {
		errs = append(errs, "api.port must be between 1 and 65535")
	}

	errs = append(errs, c.validateDevices()...)

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

func (c *Config) validateDevices() []string {
	if len(c.Devices) == 0 {
		return []string{"devices must list at least one device"}
	}

	var errs []string
	seen := make(map[ibm.Variant]bool, len(c.Devices))
	for i, d := range c.Devices {
		v, err := ibm.ParseVariant(d.Variant)
		if err != nil {
			errs = append(errs, fmt.Sprintf("devices[%d].variant: %v", i, err))
			continue
		}
		if seen[v] {
			errs = append(errs, fmt.Sprintf("devices[%d].variant: duplicate %s", i, v))
		}
		seen[v] = true

		errs = append(errs, d.Calibration.validate(fmt.Sprintf("devices[%d].calibration", i))...)
	}
	return errs
}

func (c CalibrationConfig) validate(prefix string) []string {
	var errs []string
	check := func(field string, i int, v float64) {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Sprintf("%s.%s[%d] must be finite and non-negative", prefix, field, i))
		}
	}

	for i, g := range c.SingleQubitGates {
		if g.Gate == "" {
			errs = append(errs, fmt.Sprintf("%s.single_qubit_gates[%d].gate is required", prefix, i))
		}
		check("single_qubit_gates", i, g.Time)
	}
	for i, g := range c.TwoQubitGates {
		if g.Gate == "" {
			errs = append(errs, fmt.Sprintf("%s.two_qubit_gates[%d].gate is required", prefix, i))
		}
		check("two_qubit_gates", i, g.Time)
	}
	for i, r := range c.Damping {
		check("damping", i, r.Rate)
	}
	for i, r := range c.Dephasing {
		check("dephasing", i, r.Rate)
	}
	return errs
}

// GetReadTimeout returns the API read timeout as a Duration.
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Read) * time.Second
}

// GetWriteTimeout returns the API write timeout as a Duration.
func (c *Config) GetWriteTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Write) * time.Second
}

// GetIdleTimeout returns the API idle timeout as a Duration.
func (c *Config) GetIdleTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Idle) * time.Second
}
