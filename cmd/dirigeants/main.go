// Command dirigeants scrapes French insider-trading disclosures, analyzes
// them for buying opportunities and charts them against market prices.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var logger = log.New(os.Stderr, "", log.LstdFlags)

func main() {
	root := &cobra.Command{
		Use:           "dirigeants",
		Short:         "Scrape and analyze insider trading disclosures from abcbourse",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newScrapeCmd(),
		newAnalyzeCmd(),
		newTickerCmd(),
		newChartCmd(),
	)
	if err := root.Execute(); err != nil {
		logger.Fatal(err)
	}
}

// setupTracing installs a stdout span exporter when enabled; the returned
// shutdown flushes pending spans.
func setupTracing(enabled bool) (func(context.Context) error, error) {
	if !enabled {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("init trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
