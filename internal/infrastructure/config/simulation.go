package config

// SimulationConfig holds settings for the virtual clock and dev-mode
// shortcuts specific to this simulation core.
type SimulationConfig struct {
	// GameTimeScale is how many game-seconds advance per wall-clock
	// second when the clock is running in auto mode. 1.0 means
	// real-time; most deployments run this faster.
	GameTimeScale float64 `mapstructure:"game_time_scale" validate:"gt=0"`

	// StartingBalanceUSD is a starting ledger balance for organizations.
	// It is defaulted and validated here; no code in this module reads it.
	StartingBalanceUSD float64 `mapstructure:"starting_balance_usd" validate:"min=0"`

	// DevSkipAuth is the development flag for skipping request
	// authentication. This module has no authentication layer, so
	// nothing here reads it.
	DevSkipAuth bool `mapstructure:"dev_skip_auth"`
}
