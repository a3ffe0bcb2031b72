package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldharbor-systems/orbital-sim/internal/application/commands"
	"github.com/coldharbor-systems/orbital-sim/internal/application/queries"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/boost"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/pkg/utils"
)

func newBoostCommand() *cobra.Command {
	var (
		orgID      string
		category   string
		itemID     string
		qty        int
		maxQty     int
		toLocation string
	)

	cmd := &cobra.Command{
		Use:   "boost",
		Short: "Purchase LEO delivery of a catalog item to a destination",
		Long: `Purchase qty units of a catalog item's LEO delivery on an
organization's account, automatically capping the requested quantity
to what the org's current balance and --max-qty allow so a boost
request never fails purely on an oversized ask.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if orgID == "" || itemID == "" || toLocation == "" {
				return fmt.Errorf("--org, --item, and --to are required")
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			nowS := sess.Clock.Now()
			lookupResp, err := send(sess, queries.LookupRecordQuery{Category: catalog.CanonicalCategory(category), ID: itemID})
			if err != nil {
				return err
			}
			lookup := lookupResp.(queries.LookupRecordResult)
			if !lookup.Found {
				return fmt.Errorf("catalog item not found: category=%s id=%s", category, itemID)
			}

			orgResp, err := send(sess, queries.GetOrgQuery{OrgID: orgID, NowS: nowS})
			if err != nil {
				return err
			}
			org := orgResp.(queries.GetOrgResult).Org

			unitCost := boost.CalculateCost(lookup.Record.MassKg)
			maxByBudget := int(org.BalanceUSD / unitCost)
			effectiveQty := utils.Min3(qty, maxByBudget, maxQty)
			if effectiveQty <= 0 {
				return fmt.Errorf("cannot afford any units: unit_cost_usd=%.2f balance_usd=%.2f", unitCost, org.BalanceUSD)
			}
			if effectiveQty < qty {
				fmt.Printf("capping requested qty %d down to %d (budget/max-qty limited)\n", qty, effectiveQty)
			}

			resp, err := send(sess, commands.BoostCommand{
				OrgID:                 orgID,
				Record:                lookup.Record,
				Qty:                   effectiveQty,
				DestinationLocationID: toLocation,
				NowS:                  nowS,
			})
			if err != nil {
				return err
			}
			printOrg(resp.(commands.BoostResult).Org)
			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "organization id")
	cmd.Flags().StringVar(&category, "category", "", "catalog category (thruster, reactor, raw_material, ...)")
	cmd.Flags().StringVar(&itemID, "item", "", "catalog item id")
	cmd.Flags().IntVar(&qty, "qty", 1, "requested unit count")
	cmd.Flags().IntVar(&maxQty, "max-qty", 1<<30, "hard cap on units purchased regardless of budget")
	cmd.Flags().StringVar(&toLocation, "to", "", "destination location id")
	return cmd
}
