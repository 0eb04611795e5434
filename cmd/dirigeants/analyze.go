package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tcheron/dirigeants/internal/analysis"
	"github.com/tcheron/dirigeants/internal/chart"
	"github.com/tcheron/dirigeants/internal/table"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		csvPath       string
		dashboardPath string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a scraped trade table and print the opportunity report",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := table.ReadCSV(csvPath)
			if err != nil {
				return err
			}
			logger.Printf("Loaded %d records from %s", len(records), csvPath)

			res := analysis.Analyze(records, time.Now())
			fmt.Fprintln(cmd.OutOrStdout(), res.Report())

			if dashboardPath != "" {
				if err := chart.Dashboard(res, dashboardPath); err != nil {
					return err
				}
				logger.Printf("Dashboard saved to %s", dashboardPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV trade table to analyze")
	cmd.Flags().StringVar(&dashboardPath, "dashboard", "", "Write the summary dashboard HTML to this path")
	cmd.MarkFlagRequired("csv")
	return cmd
}
