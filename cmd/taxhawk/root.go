package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "taxhawk",
		Short:         "TaxHawk is a deterministic Indian income-tax optimization engine.",
		Long:          "TaxHawk analyzes a salaried individual's financial-year profile and reports regime arbitrage, deduction gaps, and capital-gains harvesting opportunities.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newRedeemCmd())
	return cmd
}
