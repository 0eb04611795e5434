// Package ticker fetches daily price history and basic company metadata from
// Yahoo Finance. Provider failures are absorbed: callers get empty results,
// never an error.
package ticker

import (
	"fmt"
	"log"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"

	"github.com/tcheron/dirigeants/internal/cache"
)

// Bar is one day of OHLCV history.
type Bar struct {
	Date     time.Time       `json:"date"`
	Open     decimal.Decimal `json:"open"`
	High     decimal.Decimal `json:"high"`
	Low      decimal.Decimal `json:"low"`
	Close    decimal.Decimal `json:"close"`
	AdjClose decimal.Decimal `json:"adj_close"`
	Volume   int64           `json:"volume"`
}

// Info is the basic company metadata exposed by the quote endpoint.
type Info struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	Exchange    string  `json:"exchange"`
	Currency    string  `json:"currency"`
	MarketState string  `json:"market_state"`
	QuoteType   string  `json:"quote_type"`
	Price       float64 `json:"price"`
	MarketCap   int64   `json:"market_cap"`
}

// PriceChange summarizes the move over an analysis window.
type PriceChange struct {
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
	StartPrice   float64 `json:"start_price"`
	Change       float64 `json:"change"`
	ChangePct    float64 `json:"change_pct"`
	DaysAnalyzed int     `json:"days_analyzed"`
}

type Client struct {
	cache  *cache.Cache
	logger *log.Logger
}

// NewClient builds a client; cacheDir empty disables the on-disk cache.
func NewClient(cacheDir string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		cache:  cache.New(cacheDir, cache.DefaultMaxAge),
		logger: logger,
	}
}

// History returns daily bars for [start, end]. Empty on provider failure.
func (c *Client) History(symbol string, start, end time.Time) []Bar {
	if symbol == "" {
		return nil
	}
	key := fmt.Sprintf("hist_%s_%s_%s", symbol,
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	var cached []Bar
	if c.cache.Get(key, &cached) {
		return cached
	}

	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	})
	bars := make([]Bar, 0)
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, Bar{
			Date:     time.Unix(int64(b.Timestamp), 0).UTC(),
			Open:     b.Open,
			High:     b.High,
			Low:      b.Low,
			Close:    b.Close,
			AdjClose: b.AdjClose,
			Volume:   int64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		c.logger.Printf("ticker: history for %s failed: %v", symbol, err)
		return nil
	}
	if len(bars) > 0 {
		c.cache.Set(key, bars)
	}
	return bars
}

// HistoryWindow returns daily bars for the last days days.
func (c *Client) HistoryWindow(symbol string, days int) []Bar {
	end := time.Now()
	return c.History(symbol, end.AddDate(0, 0, -days), end)
}

// MultiHistory fetches several symbols; a failing symbol maps to an empty
// slice rather than dropping the whole batch.
func (c *Client) MultiHistory(symbols []string, start, end time.Time) map[string][]Bar {
	out := make(map[string][]Bar, len(symbols))
	for _, s := range symbols {
		out[s] = c.History(s, start, end)
	}
	return out
}

// Info fetches quote metadata for a symbol; nil on provider failure.
func (c *Client) Info(symbol string) *Info {
	if symbol == "" {
		return nil
	}
	q, err := equity.Get(symbol)
	if err != nil || q == nil {
		c.logger.Printf("ticker: info for %s failed: %v", symbol, err)
		return nil
	}
	return &Info{
		Symbol:      symbol,
		Name:        q.ShortName,
		Exchange:    q.FullExchangeName,
		Currency:    q.CurrencyID,
		MarketState: string(q.MarketState),
		QuoteType:   string(q.QuoteType),
		Price:       q.RegularMarketPrice,
		MarketCap:   q.MarketCap,
	}
}

// Change computes the price change over the last days days; nil when not
// enough history comes back.
func (c *Client) Change(symbol string, days int) *PriceChange {
	bars := c.HistoryWindow(symbol, days)
	return changeFromBars(symbol, bars, days)
}

func changeFromBars(symbol string, bars []Bar, days int) *PriceChange {
	if len(bars) < 2 {
		return nil
	}
	start := bars[0].Close.InexactFloat64()
	current := bars[len(bars)-1].Close.InexactFloat64()
	if start == 0 {
		return nil
	}
	change := current - start
	return &PriceChange{
		Symbol:       symbol,
		CurrentPrice: current,
		StartPrice:   start,
		Change:       change,
		ChangePct:    change / start * 100,
		DaysAnalyzed: days,
	}
}

// Closes extracts the close series from bars.
func Closes(bars []Bar) []float64 {
	out := make([]float64, 0, len(bars))
	for _, b := range bars {
		out = append(out, b.Close.InexactFloat64())
	}
	return out
}
