// Package cli is the operator command line for the simulation core: a
// thin Cobra tree that opens the same database the daemon runs
// against, builds the identical mediator via wiring.BuildMediator, and
// sends one command or query per invocation. There is no daemon
// socket here — an operator box reaches the core's state directly,
// since transport between the CLI and a running daemon is out of
// scope for this core.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// NewRootCommand builds the orbitalctl command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orbitalctl",
		Short: "Operator CLI for the orbital simulation core",
		Long: `orbitalctl drives the simulation core's state directly against its
database: pausing and resetting the virtual clock, querying transfer
routes, purchasing LEO deliveries, prospecting surface sites, and
managing an organization's research ledger.

Examples:
  orbitalctl clock status
  orbitalctl clock pause
  orbitalctl route --from LEO --to LMO
  orbitalctl org status --org acme
  orbitalctl org hire-team --org acme
  orbitalctl boost --org acme --category thruster --item thruster.chem.baseline --qty 2 --to LEO
  orbitalctl prospect --org acme --ship shipyard-01 --site MARS-SURFACE
  orbitalctl inventory-at --location LEO`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a config file (empty = search default paths)")

	rootCmd.AddCommand(newClockCommand())
	rootCmd.AddCommand(newShipCommand())
	rootCmd.AddCommand(newRouteCommand())
	rootCmd.AddCommand(newOrgCommand())
	rootCmd.AddCommand(newBoostCommand())
	rootCmd.AddCommand(newProspectCommand())
	rootCmd.AddCommand(newInventoryAtCommand())

	return rootCmd
}

// Execute runs the orbitalctl command tree.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
