package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/tcheron/dirigeants/internal/analysis"
)

// Dashboard renders the four-panel analysis summary: cluster totals, buy vs
// sell values, recent activity and opportunity scores.
func Dashboard(res *analysis.Result, path string) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.PageTitle = "Insider Trading Analysis Dashboard"

	page.AddCharts(
		clusterPanel(res.ClusterBuying),
		ratioPanel(res.BuySellRatios),
		recentPanel(res.RecentActivity),
		scorePanel(res.Recommendations),
	)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return page.Render(f)
}

func clusterPanel(clusters []analysis.ClusterStat) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Companies with Multiple Insider Buyers"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	companies := make([]string, 0)
	values := make([]opts.BarData, 0)
	for i, c := range clusters {
		if i >= 10 {
			break
		}
		companies = append(companies, c.Company)
		values = append(values, opts.BarData{Value: c.TotalValue})
	}
	bar.SetXAxis(companies).AddSeries("Total Value (EUR)", values)
	return bar
}

func ratioPanel(ratios []analysis.RatioStat) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Buy vs Sell Value by Company"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Buy Value (EUR)"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Sell Value (EUR)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	points := make([]opts.ScatterData, 0)
	for i, r := range ratios {
		if i >= 10 {
			break
		}
		points = append(points, opts.ScatterData{
			Name:       r.Company,
			Value:      []interface{}{r.BuyValue, r.SellValue},
			SymbolSize: 12,
		})
	}
	scatter.AddSeries("Companies", points)
	return scatter
}

func recentPanel(recent []analysis.RecentSummary) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Recent Buying Activity (Last %d days)", analysis.RecentWindowDays)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	companies := make([]string, 0)
	values := make([]opts.BarData, 0)
	for i, r := range recent {
		if i >= 10 {
			break
		}
		companies = append(companies, r.Company)
		values = append(values, opts.BarData{Value: r.RecentBuyValue})
	}
	bar.SetXAxis(companies).AddSeries("Value (EUR)", values)
	return bar
}

func scorePanel(recs []analysis.Recommendation) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Investment Opportunity Scores"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	companies := make([]string, 0)
	values := make([]opts.BarData, 0)
	for i, r := range recs {
		if i >= 10 {
			break
		}
		companies = append(companies, r.Company)
		values = append(values, opts.BarData{Value: r.OpportunityScore})
	}
	bar.SetXAxis(companies).AddSeries("Opportunity Score", values)
	return bar
}
