package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tcheron/dirigeants/internal/chart"
	"github.com/tcheron/dirigeants/internal/config"
	"github.com/tcheron/dirigeants/internal/models"
	"github.com/tcheron/dirigeants/internal/table"
	"github.com/tcheron/dirigeants/internal/ticker"
)

func newChartCmd() *cobra.Command {
	var (
		csvPath string
		symbol  string
		company string
		days    int
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Overlay scraped trades on a symbol's price history",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := table.ReadCSV(csvPath)
			if err != nil {
				return err
			}
			if company != "" {
				records = filterByCompany(records, company)
			}
			if len(records) == 0 {
				return fmt.Errorf("no trade records to chart")
			}

			client := ticker.NewClient(config.CacheDir, logger)
			bars := client.HistoryWindow(symbol, days)
			if len(bars) == 0 {
				return fmt.Errorf("no price history for %s", symbol)
			}

			title := fmt.Sprintf("Insider Trading Activity vs Price (%s)", symbol)
			if err := chart.TradingChart(bars, records, title, outPath); err != nil {
				return err
			}
			logger.Printf("Chart saved to %s", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV trade table")
	cmd.Flags().StringVar(&symbol, "symbol", "", "Ticker symbol for the price series")
	cmd.Flags().StringVar(&company, "company", "", "Only overlay trades of companies matching this substring")
	cmd.Flags().IntVar(&days, "days", 365, "History window in days")
	cmd.Flags().StringVar(&outPath, "out", "insider_chart.html", "HTML output path")
	cmd.MarkFlagRequired("csv")
	cmd.MarkFlagRequired("symbol")
	return cmd
}

func filterByCompany(records []models.TradeRecord, needle string) []models.TradeRecord {
	needle = strings.ToLower(needle)
	out := make([]models.TradeRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Company), needle) {
			out = append(out, r)
		}
	}
	return out
}
