package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coldharbor-systems/orbital-sim/internal/application/queries"
)

func newRouteCommand() *cobra.Command {
	var fromID, toID string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Look up the cached least-Δv transfer path between two locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromID == "" || toID == "" {
				return fmt.Errorf("--from and --to are required")
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			resp, err := send(sess, queries.RouteQuery{FromID: fromID, ToID: toID})
			if err != nil {
				return err
			}
			res := resp.(queries.RouteResult)
			if !res.Found {
				fmt.Println("no route found")
				return nil
			}
			fmt.Printf("dv_m_s=%.2f tof_s=%.0f path=%s\n", res.DvMS, res.TofS, strings.Join(res.Path, " -> "))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromID, "from", "", "origin location id")
	cmd.Flags().StringVar(&toID, "to", "", "destination location id")
	return cmd
}
