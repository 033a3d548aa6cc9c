package main

import (
	"fmt"

	"github.com/rpgo/taxhawk/internal/checks"
	"github.com/rpgo/taxhawk/pkg/rupee"
	"github.com/spf13/cobra"
)

func newRedeemCmd() *cobra.Command {
	var planned int64
	var exemptionRemaining int64
	var exemptionNextFY int64

	cmd := &cobra.Command{
		Use:   "redeem",
		Short: "Compare redeeming a planned LTCG amount in one FY versus splitting it across two.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := checks.ComputeRedemptionTax(rupee.FromInt(planned), checks.RedemptionExemptions{
				ExemptionRemaining: rupee.FromInt(exemptionRemaining),
				ExemptionNextFY:    rupee.FromInt(exemptionNextFY),
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Planned LTCG: ₹%s\n", plan.PlannedLTCG)
			fmt.Fprintf(out, "One-FY: taxable ₹%s, tax ₹%s\n", plan.OneFYTaxableIncome, plan.OneFYTax)
			fmt.Fprintf(out, "Split: FY1 sells ₹%s (tax ₹0), FY2 sells ₹%s, taxable ₹%s, tax ₹%s, total ₹%s\n",
				plan.SplitSellFY1, plan.SplitSellFY2, plan.SplitTaxableFY2, plan.SplitTaxFY2, plan.SplitTotal)
			if plan.SplitBeneficial {
				fmt.Fprintf(out, "Splitting saves ₹%s.\n", plan.SplitSavings)
			} else {
				fmt.Fprintln(out, "Splitting offers no benefit here.")
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&planned, "planned", 0, "planned LTCG amount in rupees")
	cmd.Flags().Int64Var(&exemptionRemaining, "exemption-remaining", 0, "unused LTCG exemption this financial year")
	cmd.Flags().Int64Var(&exemptionNextFY, "exemption-next-fy", 0, "expected LTCG exemption next financial year")
	cmd.MarkFlagRequired("planned")

	return cmd
}
