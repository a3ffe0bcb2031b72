package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldharbor-systems/orbital-sim/internal/application/queries"
)

func newInventoryAtCommand() *cobra.Command {
	var locationID string

	cmd := &cobra.Command{
		Use:   "inventory-at",
		Short: "List every resource and part stack at a location",
		RunE: func(cmd *cobra.Command, args []string) error {
			if locationID == "" {
				return fmt.Errorf("--location is required")
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			resp, err := send(sess, queries.InventoryAtQuery{LocationID: locationID})
			if err != nil {
				return err
			}
			stacks := resp.(queries.InventoryAtResult).Stacks
			if len(stacks) == 0 {
				fmt.Println("no stacks at this location")
				return nil
			}
			for _, s := range stacks {
				fmt.Printf("%-8s %-20s qty=%.3f mass_kg=%.3f\n", s.StackType, s.ItemID, s.Quantity, s.MassKg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&locationID, "location", "", "location id")
	return cmd
}
