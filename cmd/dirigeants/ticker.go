package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tcheron/dirigeants/internal/config"
	"github.com/tcheron/dirigeants/internal/ticker"
	"github.com/tcheron/dirigeants/internal/trend"
)

func newTickerCmd() *cobra.Command {
	var (
		symbol      string
		days        int
		listSymbols bool
	)

	cmd := &cobra.Command{
		Use:   "ticker",
		Short: "Fetch price history and metadata for a symbol",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if listSymbols {
				stocks := ticker.FrenchStocks()
				symbols := make([]string, 0, len(stocks))
				for s := range stocks {
					symbols = append(symbols, s)
				}
				sort.Strings(symbols)
				for _, s := range symbols {
					fmt.Fprintf(out, "%-8s %s\n", s, stocks[s])
				}
				return nil
			}
			if symbol == "" {
				return fmt.Errorf("--symbol is required")
			}

			client := ticker.NewClient(config.CacheDir, logger)
			bars := client.HistoryWindow(symbol, days)
			if len(bars) == 0 {
				fmt.Fprintf(out, "No data found for ticker: %s\n", symbol)
				return nil
			}
			fmt.Fprintf(out, "Retrieved %d days of data for %s\n", len(bars), symbol)
			fmt.Fprintln(out, "Latest 5 days:")
			start := len(bars) - 5
			if start < 0 {
				start = 0
			}
			for _, b := range bars[start:] {
				fmt.Fprintf(out, "  %s  open=%s high=%s low=%s close=%s volume=%d\n",
					b.Date.Format("2006-01-02"), b.Open, b.High, b.Low, b.Close, b.Volume)
			}

			if info := client.Info(symbol); info != nil {
				fmt.Fprintf(out, "\n%s (%s, %s)\n", info.Name, info.Exchange, info.Currency)
				fmt.Fprintf(out, "  Price: %.2f  Market cap: %d  State: %s\n",
					info.Price, info.MarketCap, info.MarketState)
			}
			if chg := client.Change(symbol, days); chg != nil {
				fmt.Fprintf(out, "  Change over %d days: %.2f (%.2f%%)\n",
					chg.DaysAnalyzed, chg.Change, chg.ChangePct)
			}
			if t := trend.FromCloses(ticker.Closes(bars), 0); t != nil {
				fmt.Fprintf(out, "  Quarterly return: %.2f%%  slope: %.4f\n", t.WindowPct, t.Slope)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "Ticker symbol, e.g. AIR.PA")
	cmd.Flags().IntVar(&days, "days", 365, "History window in days")
	cmd.Flags().BoolVar(&listSymbols, "list", false, "List common Paris-listed symbols")
	return cmd
}
