// Command orbitald is the simulation core's daemon process: it runs
// the startup sequence, exposes the Prometheus metrics endpoint, and
// blocks until signaled to shut down. Request handling itself has no
// transport here; operators and integrators reach the mediator the
// daemon builds through the orbitalctl CLI or an embedding process,
// per the core's transport-agnostic design.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coldharbor-systems/orbital-sim/internal/adapters/metrics"
	"github.com/coldharbor-systems/orbital-sim/internal/application/common"
	"github.com/coldharbor-systems/orbital-sim/internal/application/startup"
	"github.com/coldharbor-systems/orbital-sim/internal/application/wiring"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/clock"
	"github.com/coldharbor-systems/orbital-sim/internal/infrastructure/config"
	"github.com/coldharbor-systems/orbital-sim/internal/infrastructure/database"
	"github.com/coldharbor-systems/orbital-sim/internal/infrastructure/pidfile"
	"github.com/coldharbor-systems/orbital-sim/pkg/utils"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (empty = search default paths)")
	flag.Parse()

	fmt.Println("Orbital Sim Daemon")
	fmt.Println("==================")

	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configPath)

	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)
	if err := pf.Acquire(); err != nil {
		log.Fatalf("failed to acquire PID file lock: %v", err)
	}
	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("warning: failed to release PID file: %v", err)
		}
	}()

	if err := run(cfg); err != nil {
		log.Fatalf("fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	correlationID := utils.GenerateContainerID("startup", "daemon-main")
	logger := common.NewStdLogger(correlationID)

	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer database.Close(db)
	fmt.Println("Database connected")

	simClock := clock.New(clock.SystemTime{}, cfg.Simulation.GameTimeScale)
	stores := wiring.NewStores(db, simClock)

	seq := startup.Options{
		Migrate:  func() error { return database.AutoMigrate(db) },
		Graph:    startup.Graph{Locations: stores.Graph, Source: stores.Graph, Matrix: stores.Matrix},
		Ships:    stores.Transit,
		ShipsMX:  stores.Transit,
		ClockSvc: simClock,
		ClockSt:  stores.ClockStore,
		Logger:   logger,
	}
	if err := startup.Run(seq); err != nil {
		return fmt.Errorf("startup sequence: %w", err)
	}

	med := wiring.BuildMediator(stores)
	_ = med // the mediator is the in-process dispatch surface embedders and orbitalctl build identically; this process only needs it constructed and ready

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		registerMetricsCollectors(logger)
		addr := fmt.Sprintf("%s:%d", cfg.Metrics.Host, cfg.Metrics.Port)
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{EnableOpenMetrics: true}))
		go func() {
			logger.Log("info", "serving metrics", map[string]interface{}{"addr": addr, "path": cfg.Metrics.Path})
			if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
				logger.Log("error", "metrics server stopped", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	logger.Log("info", "daemon ready", nil)
	waitForShutdown(logger)
	return nil
}

// registerMetricsCollectors wires the daemon's own collectors into the
// Prometheus registry and sets them as the global recorders the
// command/query handlers report through.
func registerMetricsCollectors(logger common.OperationLogger) {
	dispatch := metrics.NewDispatchMetricsCollector()
	if err := dispatch.Register(); err != nil {
		logger.Log("error", "failed to register dispatch metrics", map[string]interface{}{"error": err.Error()})
	} else {
		metrics.SetGlobalDispatchCollector(dispatch)
	}

	economyCollector := metrics.NewEconomyMetricsCollector()
	if err := economyCollector.Register(); err != nil {
		logger.Log("error", "failed to register economy metrics", map[string]interface{}{"error": err.Error()})
	} else {
		metrics.SetGlobalEconomyCollector(economyCollector)
	}

	routingCollector := metrics.NewRoutingMetricsCollector()
	if err := routingCollector.Register(); err != nil {
		logger.Log("error", "failed to register routing metrics", map[string]interface{}{"error": err.Error()})
	} else {
		metrics.SetGlobalRoutingCollector(routingCollector)
	}
}

func waitForShutdown(logger common.OperationLogger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Log("info", "received shutdown signal", map[string]interface{}{"signal": sig.String()})
}
