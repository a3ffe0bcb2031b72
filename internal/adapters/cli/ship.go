package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coldharbor-systems/orbital-sim/internal/application/commands"
	"github.com/coldharbor-systems/orbital-sim/internal/application/queries"
	"github.com/coldharbor-systems/orbital-sim/internal/application/stats"
)

func newShipCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ship",
		Short: "Dispatch ships, settle arrivals, and preview loadout stats",
	}
	cmd.AddCommand(newShipDispatchCommand())
	cmd.AddCommand(newShipSettleCommand())
	cmd.AddCommand(newShipStatusCommand())
	return cmd
}

func newShipStatusCommand() *cobra.Command {
	var shipID string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print a ship's location, fuel, and derived performance stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			if shipID == "" {
				return fmt.Errorf("--ship is required")
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			resp, err := send(sess, queries.GetShipQuery{ShipID: shipID})
			if err != nil {
				return err
			}
			res := resp.(queries.GetShipResult)
			if !res.Found {
				return fmt.Errorf("ship not found: %s", shipID)
			}
			ship := res.Ship
			fmt.Printf("ship=%s status=%s location=%s fuel_kg=%.3f\n", ship.ID, ship.Status(), ship.LocationID, ship.FuelKg)

			previewResp, err := send(sess, stats.PreviewQuery{Parts: ship.Parts, CurrentFuelKg: ship.FuelKg})
			if err != nil {
				return err
			}
			s := previewResp.(stats.PreviewResult).Stats
			fmt.Printf("dry_mass_kg=%.1f wet_mass_kg=%.1f accel_g=%.4f dv_remaining_m_s=%.1f\n",
				s.DryMassKg, s.WetMassKg, s.AccelerationGs, s.DeltaVRemainingMS)
			return nil
		},
	}
	cmd.Flags().StringVar(&shipID, "ship", "", "ship id")
	return cmd
}

func newShipDispatchCommand() *cobra.Command {
	var shipID, toID string
	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Dispatch a docked ship onto the cached route toward a destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			if shipID == "" || toID == "" {
				return fmt.Errorf("--ship and --to are required")
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			resp, err := send(sess, commands.DispatchCommand{ShipID: shipID, ToID: toID, NowS: sess.Clock.Now()})
			if err != nil {
				return err
			}
			ship := resp.(commands.DispatchResult).Ship
			fmt.Printf("ship=%s path=%s arrives_at_s=%.0f fuel_kg=%.3f\n",
				ship.ID, strings.Join(ship.TransferPath, " -> "), ship.ArrivesAtS, ship.FuelKg)
			return nil
		},
	}
	cmd.Flags().StringVar(&shipID, "ship", "", "ship id")
	cmd.Flags().StringVar(&toID, "to", "", "destination location id")
	return cmd
}

func newShipSettleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "settle-arrivals",
		Short: "Promote every ship whose arrival time has elapsed to Docked",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			resp, err := send(sess, commands.SettleArrivalsCommand{NowS: sess.Clock.Now()})
			if err != nil {
				return err
			}
			ids := resp.(commands.SettleArrivalsResult).ShipIDs
			fmt.Printf("settled %d ship(s)\n", len(ids))
			for _, id := range ids {
				fmt.Printf("  %s\n", id)
			}
			return nil
		},
	}
}
