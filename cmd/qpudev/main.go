// qpudev serves quantum hardware device descriptors.
//
// It builds the configured IBM devices, applies their calibration,
// exports each one as a generic device (SQLite snapshot, retained MQTT
// message, InfluxDB points) and serves the catalog over HTTP until
// interrupted.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/nerrad567/qpudev-core/migrations"

	"github.com/nerrad567/qpudev-core/internal/api"
	"github.com/nerrad567/qpudev-core/internal/catalog"
	"github.com/nerrad567/qpudev-core/internal/device/ibm"
	"github.com/nerrad567/qpudev-core/internal/infrastructure/config"
	"github.com/nerrad567/qpudev-core/internal/infrastructure/database"
	"github.com/nerrad567/qpudev-core/internal/infrastructure/influxdb"
	"github.com/nerrad567/qpudev-core/internal/infrastructure/logging"
	"github.com/nerrad567/qpudev-core/internal/infrastructure/mqtt"
	"github.com/nerrad567/qpudev-core/internal/snapshot"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// It returns nil on clean shutdown.
func run(ctx context.Context) error {
	log := logging.Default()
	log.Info("starting qpudev",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := catalog.NewMetrics(promReg)
	if err != nil {
		return err
	}

	snapshots := snapshot.NewSQLiteRepository(db.DB)

	registry := catalog.NewRegistry()
	registry.SetLogger(log.Component("catalog"))
	registry.SetMetrics(metrics)
	registry.SetSnapshotStore(snapshots)

	if buildErr := buildRegistry(registry, cfg.Devices); buildErr != nil {
		return fmt.Errorf("building devices: %w", buildErr)
	}
	log.Info("device catalog initialised", "devices", registry.Names())

	checks := map[string]api.HealthChecker{"database": db}

	if cfg.MQTT.Enabled {
		mqttClient, mqttErr := mqtt.Connect(ctx, cfg.MQTT)
		if mqttErr != nil {
			return fmt.Errorf("connecting to MQTT: %w", mqttErr)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)

		mqttClient.SetLogger(log.Component("mqtt"))
		mqttClient.SetOnConnect(func() {
			log.Info("MQTT reconnected")
		})
		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected, descriptors will be republished on reconnect", "error", err)
		})

		registry.SetPublisher(mqttClient)
		checks["mqtt"] = mqttClient
	} else {
		log.Info("MQTT disabled")
	}

	if cfg.InfluxDB.Enabled {
		influxClient, influxErr := influxdb.Connect(ctx, cfg.InfluxDB, cfg.Site.ID)
		if influxErr != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", influxErr)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)

		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})

		registry.SetMetricsWriter(influxClient)
		checks["influxdb"] = influxClient
	} else {
		log.Info("InfluxDB disabled")
	}

	if err := healthCheck(ctx, checks); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	if n := exportAll(ctx, registry, log); n != len(cfg.Devices) {
		return fmt.Errorf("initial export: %d of %d devices exported", n, len(cfg.Devices))
	}

	server, err := api.New(api.Deps{
		Config:     cfg.API,
		Logger:     log.Component("api"),
		Registry:   registry,
		Snapshots:  snapshots,
		Checks:     checks,
		Registerer: promReg,
		Gatherer:   promReg,
		Version:    version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	log.Info("initialisation complete, waiting for shutdown signal")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	log.Info("qpudev stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses QPUDEV_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("QPUDEV_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// buildRegistry creates each configured device, registers it and applies
// its calibration.
func buildRegistry(registry *catalog.Registry, devices []config.DeviceConfig) error {
	for _, dc := range devices {
		v, err := ibm.ParseVariant(dc.Variant)
		if err != nil {
			return err
		}
		d, err := ibm.New(v)
		if err != nil {
			return err
		}
		if err := registry.Add(d); err != nil {
			return err
		}
		if err := registry.Calibrate(d.Name(), toCalibration(dc.Calibration)); err != nil {
			return fmt.Errorf("calibrating %s: %w", d.Name(), err)
		}
	}
	return nil
}

// toCalibration converts the YAML calibration of one device.
func toCalibration(c config.CalibrationConfig) catalog.Calibration {
	var out catalog.Calibration
	for _, g := range c.SingleQubitGates {
		out.SingleQubitGates = append(out.SingleQubitGates, catalog.GateTime{
			Gate:  g.Gate,
			Qubit: g.Qubit,
			Time:  g.Time,
		})
	}
	for _, g := range c.TwoQubitGates {
		out.TwoQubitGates = append(out.TwoQubitGates, catalog.PairGateTime{
			Gate:      g.Gate,
			Control:   g.Control,
			Target:    g.Target,
			Time:      g.Time,
			Symmetric: g.Symmetric,
		})
	}
	for _, r := range c.Damping {
		out.Damping = append(out.Damping, catalog.QubitRate{Qubit: r.Qubit, Rate: r.Rate})
	}
	for _, r := range c.Dephasing {
		out.Dephasing = append(out.Dephasing, catalog.QubitRate{Qubit: r.Qubit, Rate: r.Rate})
	}
	return out
}

// exportAll exports every registered device and returns how many succeeded.
func exportAll(ctx context.Context, registry *catalog.Registry, log *logging.Logger) int {
	var exported int
	for _, name := range registry.Names() {
		if _, err := registry.Export(ctx, name); err != nil {
			log.Error("export failed", "device", name, "error", err)
			continue
		}
		exported++
	}
	return exported
}

// healthCheck verifies all infrastructure connections are healthy and
// returns the first failure.
func healthCheck(ctx context.Context, checks map[string]api.HealthChecker) error {
	for name, check := range checks {
		if err := check.HealthCheck(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
