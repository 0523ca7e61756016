package main

import (
	"fmt"

	"github.com/kernel-kun/crossplane-utils/internal/analyzer"
	"github.com/kernel-kun/crossplane-utils/internal/report"
	"github.com/spf13/cobra"
)

var (
	analyzeOpts = &analyzer.Options{}
	source      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [source]",
	Short: "Extract Composition details from Crossplane manifests",
	Long: `Analyze Crossplane manifests from a directory tree, a local YAML file or a
remote URL, and export the discovered managed resources to an xlsx workbook.

Examples:
  # Analyze a directory of manifests
  crossplane-utils analyze ./platform/compositions/

  # Analyze a single manifest file
  crossplane-utils analyze composition.yaml

  # Analyze a remote manifest
  crossplane-utils analyze https://raw.githubusercontent.com/org/repo/main/composition.yaml

  # Analyze a helm-packaged configuration with a values override
  crossplane-utils analyze ./charts/platform/ -f values.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source = args[0]

		// Config supplies the defaults; flags win when set
		if !cmd.Flags().Changed("output") {
			analyzeOpts.OutputPath = cfg.Report.Output
		}
		analyzeOpts.Report = &report.Options{
			MaxColumnWidth:  cfg.Report.MaxColumnWidth,
			WrapColumnWidth: cfg.Report.WrapColumnWidth,
		}
		analyzeOpts.Version = version

		result, err := analyzer.New(analyzeOpts).Analyze(cmd.Context(), source)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		if !result.Success {
			return fmt.Errorf("analysis failed: %v", result.Error)
		}

		fmt.Print(result.OutputFormatted)
		if len(result.Records) == 0 {
			fmt.Println("No Composition entries found")
		} else if !analyzeOpts.SkipReport {
			fmt.Printf("Extracted %d entries, results saved to %s\n", len(result.Records), analyzeOpts.OutputPath)
		}
		return nil
	},
}

func init() {
	// Add flags specific to analyze command
	flags := analyzeCmd.Flags()
	flags.BoolVar(&analyzeOpts.FollowSymlinks, "follow-symlinks", false,
		"follow symbolic links during directory traversal")
	flags.StringVar(&analyzeOpts.OutputFormat, "format", "table", "console output format (table, json, yaml)")
	flags.StringVarP(&analyzeOpts.OutputPath, "output", "o", "composition_extraction.xlsx",
		"path to the output xlsx file")
	flags.BoolVar(&analyzeOpts.SkipReport, "skip-report", false,
		"print results to the console without writing the xlsx file")
	flags.StringVarP(&analyzeOpts.Values, "values", "f", "", "path to a values.yaml file used for rendering a helm chart")
}
