package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldharbor-systems/orbital-sim/internal/application/commands"
)

func newProspectCommand() *cobra.Command {
	var orgID, shipID, siteID string

	cmd := &cobra.Command{
		Use:   "prospect",
		Short: "Reveal a surface site's resource distribution using a docked robonaut-equipped ship",
		RunE: func(cmd *cobra.Command, args []string) error {
			if orgID == "" || shipID == "" || siteID == "" {
				return fmt.Errorf("--org, --ship, and --site are required")
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			resp, err := send(sess, commands.ProspectCommand{
				OrgID:          orgID,
				ShipID:         shipID,
				SiteLocationID: siteID,
				NowS:           sess.Clock.Now(),
			})
			if err != nil {
				return err
			}
			res := resp.(commands.ProspectResult).Result
			fmt.Printf("site=%s prospected_at_s=%.0f\n", res.SiteLocationID, res.ProspectedAtS)
			for _, r := range res.Resources {
				fmt.Printf("  %s: %.4f\n", r.ResourceID, r.MassFraction)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "organization id")
	cmd.Flags().StringVar(&shipID, "ship", "", "ship id docked at the site")
	cmd.Flags().StringVar(&siteID, "site", "", "surface site location id")
	return cmd
}
