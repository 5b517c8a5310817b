// Package logging provides structured logging for qpudev-core.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the process. The device core
// never logs; the catalog, API and command layers do.
//
// # Configuration
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("starting service", "port", 8080)
//	reg.SetLogger(logger.With("component", "catalog"))
//
// Never log secrets such as MQTT passwords or InfluxDB tokens.
package logging
