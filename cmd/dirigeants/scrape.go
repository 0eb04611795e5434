package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tcheron/dirigeants/internal/abcbourse"
	"github.com/tcheron/dirigeants/internal/config"
	"github.com/tcheron/dirigeants/internal/table"
)

func newScrapeCmd() *cobra.Command {
	var (
		configPath string
		startPage  int
		endPage    int
		csvPath    string
		traceRun   bool
	)

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape insider trades and export them to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultScrape()
			if configPath != "" {
				var err error
				cfg, err = config.LoadScrape(configPath)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("start-page") {
				cfg.StartPage = startPage
			}
			if cmd.Flags().Changed("end-page") {
				cfg.EndPage = endPage
			}

			shutdown, err := setupTracing(traceRun)
			if err != nil {
				return err
			}
			ctx := context.Background()
			defer shutdown(ctx)

			client := abcbourse.NewClient(cfg, logger)

			// --end-page 0 discovers the last page from the pagination links.
			if cfg.EndPage == 0 {
				doc, err := client.FetchPage(ctx, 1)
				if err != nil {
					return fmt.Errorf("discover page count: %w", err)
				}
				cfg.EndPage = abcbourse.MaxPage(doc)
				logger.Printf("Discovered %d pages", cfg.EndPage)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			records := client.Scrape(ctx, cfg.StartPage, cfg.EndPage)
			fmt.Fprintln(cmd.OutOrStdout(), table.Summary(records))
			if len(records) == 0 {
				return nil
			}

			path, err := table.WriteCSV(records, csvPath)
			if err != nil {
				return err
			}
			logger.Printf("Data saved to %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML scrape config file")
	cmd.Flags().IntVar(&startPage, "start-page", 1, "First page to scrape")
	cmd.Flags().IntVar(&endPage, "end-page", 1, "Last page to scrape (0 discovers from pagination)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV output path (default insider_trades_<timestamp>.csv)")
	cmd.Flags().BoolVar(&traceRun, "trace", false, "Emit OpenTelemetry spans for the run to stdout")
	return cmd
}
