package config

import "time"

// DaemonConfig holds the simulation server process configuration.
type DaemonConfig struct {
	// Listen address (host:port); defaulted and validated, but no server
	// in this module reads it
	Address string `mapstructure:"address" validate:"required"`

	// PID file location
	PIDFile string `mapstructure:"pid_file"`

	// Sweep interval; defaulted and validated, but the daemon runs no
	// background sweep (arrivals and ledgers settle on request)
	HealthCheckInterval time.Duration `mapstructure:"health_check_interval" validate:"required"`

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}
