// Command orbitalctl is the operator CLI for the simulation core,
// reaching the same database a running orbitald daemon does.
package main

import (
	"github.com/coldharbor-systems/orbital-sim/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
