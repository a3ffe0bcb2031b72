package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldharbor-systems/orbital-sim/internal/application/commands"
	"github.com/coldharbor-systems/orbital-sim/internal/application/queries"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/economy"
)

func newOrgCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Inspect and manage an organization's research ledger",
	}
	cmd.AddCommand(newOrgStatusCommand())
	cmd.AddCommand(newOrgHireTeamCommand())
	cmd.AddCommand(newOrgFireTeamCommand())
	cmd.AddCommand(newOrgUnlockTechCommand())
	cmd.AddCommand(newOrgBoostableCommand())
	return cmd
}

func newOrgBoostableCommand() *cobra.Command {
	var orgID string
	cmd := &cobra.Command{
		Use:   "boostable",
		Short: "List catalog items this organization may currently purchase LEO delivery for",
		RunE: func(cmd *cobra.Command, args []string) error {
			if orgID == "" {
				return fmt.Errorf("--org is required")
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()
			resp, err := send(sess, queries.BoostableItemsQuery{OrgID: orgID, NowS: sess.Clock.Now()})
			if err != nil {
				return err
			}
			for _, rec := range resp.(queries.BoostableItemsResult).Records {
				fmt.Printf("%-18s %-12s mass_kg=%.2f tech_level=%.0f\n", rec.ID, rec.Category, rec.MassKg, rec.TechLevel)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&orgID, "org", "", "organization id")
	return cmd
}

func printOrg(org economy.Organization) {
	fmt.Printf("org=%s balance_usd=%.2f research_teams=%d research_points=%.3f unlocked=%d\n",
		org.ID, org.BalanceUSD, org.ResearchTeams, org.ResearchPoints, len(org.UnlockedTechIDs))
}

func newOrgStatusCommand() *cobra.Command {
	var orgID string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print an organization's settled ledger state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if orgID == "" {
				return fmt.Errorf("--org is required")
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()
			resp, err := send(sess, queries.GetOrgQuery{OrgID: orgID, NowS: sess.Clock.Now()})
			if err != nil {
				return err
			}
			res := resp.(queries.GetOrgResult)
			if !res.Found {
				fmt.Printf("org=%s not found (no transactions yet)\n", orgID)
				return nil
			}
			printOrg(res.Org)
			return nil
		},
	}
	cmd.Flags().StringVar(&orgID, "org", "", "organization id")
	return cmd
}

func newOrgHireTeamCommand() *cobra.Command {
	var orgID string
	cmd := &cobra.Command{
		Use:   "hire-team",
		Short: "Hire one research team, debiting the one-time hire cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			if orgID == "" {
				return fmt.Errorf("--org is required")
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()
			resp, err := send(sess, commands.HireTeamCommand{OrgID: orgID, NowS: sess.Clock.Now()})
			if err != nil {
				return err
			}
			printOrg(resp.(commands.OrgResult).Org)
			return nil
		},
	}
	cmd.Flags().StringVar(&orgID, "org", "", "organization id")
	return cmd
}

func newOrgFireTeamCommand() *cobra.Command {
	var orgID string
	cmd := &cobra.Command{
		Use:   "fire-team",
		Short: "Fire one research team",
		RunE: func(cmd *cobra.Command, args []string) error {
			if orgID == "" {
				return fmt.Errorf("--org is required")
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()
			resp, err := send(sess, commands.FireTeamCommand{OrgID: orgID, NowS: sess.Clock.Now()})
			if err != nil {
				return err
			}
			printOrg(resp.(commands.OrgResult).Org)
			return nil
		},
	}
	cmd.Flags().StringVar(&orgID, "org", "", "organization id")
	return cmd
}

func newOrgUnlockTechCommand() *cobra.Command {
	var (
		orgID     string
		techID    string
		prereqIDs []string
		cost      float64
	)
	cmd := &cobra.Command{
		Use:   "unlock-tech",
		Short: "Spend research points to unlock a tech node",
		RunE: func(cmd *cobra.Command, args []string) error {
			if orgID == "" || techID == "" {
				return fmt.Errorf("--org and --tech are required")
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()
			resp, err := send(sess, commands.UnlockTechCommand{
				OrgID:     orgID,
				TechID:    techID,
				PrereqIDs: prereqIDs,
				Costs:     economy.FixedCost(cost),
				NowS:      sess.Clock.Now(),
			})
			if err != nil {
				return err
			}
			printOrg(resp.(commands.OrgResult).Org)
			return nil
		},
	}
	cmd.Flags().StringVar(&orgID, "org", "", "organization id")
	cmd.Flags().StringVar(&techID, "tech", "", "tech node id to unlock")
	cmd.Flags().StringSliceVar(&prereqIDs, "prereq", nil, "prerequisite tech node id, may repeat")
	cmd.Flags().Float64Var(&cost, "cost", 0, "research-point cost quoted for this tech node")
	return cmd
}
