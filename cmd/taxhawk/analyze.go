package main

import (
	"fmt"

	"github.com/rpgo/taxhawk/internal/config"
	"github.com/rpgo/taxhawk/internal/orchestrator"
	"github.com/rpgo/taxhawk/internal/output"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var inputPath string
	var format string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a salary profile and print or save the optimization report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return fmt.Errorf("--input is required")
			}

			doc, warnings, err := config.Loader{}.LoadFromFile(inputPath)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}

			engine := orchestrator.New(nil)
			report := engine.Analyze(&doc.SalaryProfile, doc.Holdings, doc.Options)

			if outputPath == "" {
				formatter := output.GetFormatterByName(format)
				if formatter == nil {
					return fmt.Errorf("unknown format %q: try one of %v", format, output.AvailableFormatterNames())
				}
				data, err := formatter.Format(&report)
				if err != nil {
					return fmt.Errorf("formatting report: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			written, err := output.GenerateReport(&report, format, outputPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to a YAML input file (salary_profile + holdings + options)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, json, or csv")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to this path instead of stdout")

	return cmd
}
