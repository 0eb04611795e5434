// Package chart renders price history with insider trade overlays, plus a
// multi-panel summary dashboard, as standalone HTML files.
package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/tcheron/dirigeants/internal/models"
	"github.com/tcheron/dirigeants/internal/ticker"
)

const (
	buyColor  = "#2ca02c"
	sellColor = "#d62728"
)

// TradingChart draws the close series as a line and overlays trade events as
// scatter points: buys green, sells red, marker size scaled by quantity.
// Events only land on trading days present in the price series.
func TradingChart(bars []ticker.Bar, records []models.TradeRecord, title, path string) error {
	if len(bars) == 0 {
		return fmt.Errorf("no price history to chart")
	}
	if title == "" {
		title = "Insider Trading Activity vs Price"
	}

	dates := make([]string, 0, len(bars))
	closes := make([]opts.LineData, 0, len(bars))
	for _, b := range bars {
		dates = append(dates, b.Date.Format("2006-01-02"))
		closes = append(closes, opts.LineData{Value: b.Close.InexactFloat64()})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "600px"}),
	)
	line.SetXAxis(dates).AddSeries("Price", closes)

	buys, sells := eventSeries(records)
	if len(buys) > 0 {
		scatter := charts.NewScatter()
		scatter.SetXAxis(dates).AddSeries("Acquisition", buys,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: buyColor}))
		line.Overlap(scatter)
	}
	if len(sells) > 0 {
		scatter := charts.NewScatter()
		scatter.SetXAxis(dates).AddSeries("Cession", sells,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: sellColor}))
		line.Overlap(scatter)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return line.Render(f)
}

// eventSeries converts records with a date and price into scatter points.
func eventSeries(records []models.TradeRecord) (buys, sells []opts.ScatterData) {
	var maxQty int64
	for _, r := range records {
		if r.Quantity != nil && *r.Quantity > maxQty {
			maxQty = *r.Quantity
		}
	}
	for _, r := range records {
		t, ok := r.ParsedOperationDate()
		if !ok || r.PriceEUR == nil {
			continue
		}
		point := opts.ScatterData{
			Name:       r.Company,
			Value:      []interface{}{t.Format("2006-01-02"), *r.PriceEUR},
			SymbolSize: markerSize(r.Quantity, maxQty),
		}
		switch {
		case r.IsBuy():
			buys = append(buys, point)
		case r.IsSell():
			sells = append(sells, point)
		}
	}
	return buys, sells
}

// markerSize scales quantity into a 5..25 pixel marker.
func markerSize(qty *int64, maxQty int64) int {
	if qty == nil || maxQty <= 0 {
		return 8
	}
	return int(float64(*qty)/float64(maxQty)*20) + 5
}
