package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcheron/dirigeants/internal/models"
	"github.com/tcheron/dirigeants/internal/ticker"
)

func dayBar(day int, close float64) ticker.Bar {
	return ticker.Bar{
		Date:  time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC),
		Close: decimal.NewFromFloat(close),
	}
}

func tradeOn(date, operation string, qty int64, price float64) models.TradeRecord {
	author := "Jean Dupont"
	return models.TradeRecord{
		Company:       "Foo SA",
		Operation:     operation,
		Author:        &author,
		OperationDate: &date,
		Quantity:      &qty,
		PriceEUR:      &price,
	}
}

func TestTradingChartRendersOverlay(t *testing.T) {
	t.Parallel()

	bars := []ticker.Bar{dayBar(1, 100), dayBar(2, 102), dayBar(3, 101)}
	records := []models.TradeRecord{
		tradeOn("02/07/2025", "Acquisition", 500, 101.5),
		tradeOn("03/07/2025", "Cession", 100, 101.0),
	}

	path := filepath.Join(t.TempDir(), "chart.html")
	require.NoError(t, TradingChart(bars, records, "Foo SA", path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(body)
	assert.Contains(t, html, "Foo SA")
	assert.Contains(t, html, "Acquisition")
	assert.Contains(t, html, "Cession")
	assert.Contains(t, html, "2025-07-02")
}

func TestTradingChartNoBars(t *testing.T) {
	t.Parallel()

	err := TradingChart(nil, nil, "", filepath.Join(t.TempDir(), "x.html"))
	assert.Error(t, err)
}

func TestEventSeriesSplitsBuysAndSells(t *testing.T) {
	t.Parallel()

	records := []models.TradeRecord{
		tradeOn("01/07/2025", "Acquisition", 100, 10),
		tradeOn("02/07/2025", "Cession", 200, 11),
		tradeOn("", "Acquisition", 300, 12), // no date, skipped
	}
	buys, sells := eventSeries(records)
	require.Len(t, buys, 1)
	require.Len(t, sells, 1)
	assert.Equal(t, []interface{}{"2025-07-01", 10.0}, buys[0].Value)
}

func TestMarkerSize(t *testing.T) {
	t.Parallel()

	q := int64(500)
	assert.Equal(t, 15, markerSize(&q, 1000))
	assert.Equal(t, 25, markerSize(&q, 500))
	assert.Equal(t, 8, markerSize(nil, 1000))
	assert.Equal(t, 8, markerSize(&q, 0))
}
