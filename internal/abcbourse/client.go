// Package abcbourse scrapes insider-trading disclosures from the abcbourse
// "transactions des dirigeants" listing.
package abcbourse

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tcheron/dirigeants/internal/config"
	"github.com/tcheron/dirigeants/internal/models"
)

// browserHeaders presents the scraper as an ordinary browser session.
// Accept-Encoding is left to the transport so gzip decoding stays automatic.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "fr-FR,fr;q=0.9,en;q=0.8",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

// Client fetches and extracts listing pages sequentially. A failed page is
// logged and skipped; it never aborts the run.
type Client struct {
	http      *resty.Client
	baseURL   string
	attempts  int
	pageDelay time.Duration
	logger    *log.Logger
}

func NewClient(cfg config.Scrape, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	rc := resty.New().
		SetTimeout(cfg.ParseTimeout()).
		SetRetryCount(cfg.RetryAttempts-1).
		SetRetryWaitTime(cfg.ParseRetryWait()).
		SetRetryMaxWaitTime(cfg.ParseRetryWait()).
		SetHeaders(browserHeaders)
	rc.AddRetryCondition(func(r *resty.Response, err error) bool {
		if err != nil || r == nil {
			return true
		}
		return !r.IsSuccess()
	})
	return &Client{
		http:      rc,
		baseURL:   cfg.BaseURL,
		attempts:  cfg.RetryAttempts,
		pageDelay: cfg.ParsePageDelay(),
		logger:    logger,
	}
}

// PageURL builds the listing URL; page 1 omits the query parameter.
func (c *Client) PageURL(page int) string {
	if page <= 1 {
		return c.baseURL
	}
	return c.baseURL + "?page=" + strconv.Itoa(page)
}

// FetchPage retrieves one listing page and parses it. All retry attempts are
// spent inside the resty client before an error is returned.
func (c *Client) FetchPage(ctx context.Context, page int) (*goquery.Document, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.PageURL(page))
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", page, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch page %d: status %d", page, resp.StatusCode())
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse page %d: %w", page, err)
	}
	return doc, nil
}

// Scrape walks pages startPage..endPage in order and returns the retained
// records in document order across pages.
func (c *Client) Scrape(ctx context.Context, startPage, endPage int) []models.TradeRecord {
	tracer := otel.Tracer("abcbourse")
	ctx, span := tracer.Start(ctx, "scrape",
		trace.WithAttributes(
			attribute.Int("start_page", startPage),
			attribute.Int("end_page", endPage),
		))
	defer span.End()

	var all []models.TradeRecord
	for page := startPage; page <= endPage; page++ {
		c.logger.Printf("Scraping page %d...", page)
		doc, err := c.FetchPage(ctx, page)
		if err != nil {
			c.logger.Printf("Failed to fetch page %d after %d attempts: %v", page, c.attempts, err)
			span.AddEvent("page skipped", trace.WithAttributes(attribute.Int("page", page)))
			continue
		}
		records := ExtractRecords(doc, page, time.Now())
		all = append(all, records...)
		span.AddEvent("page scraped", trace.WithAttributes(
			attribute.Int("page", page),
			attribute.Int("records", len(records)),
		))
		if page < endPage {
			time.Sleep(c.pageDelay)
		}
	}
	span.SetAttributes(attribute.Int("total_records", len(all)))
	c.logger.Printf("Successfully scraped %d trades from %d pages", len(all), endPage-startPage+1)
	return all
}

// MaxPage reads the highest page number out of the pagination links.
// Returns 1 when the page carries no pagination.
func MaxPage(doc *goquery.Document) int {
	max := 1
	doc.Find("ul.pagin a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		_, after, found := strings.Cut(href, "page=")
		if !found {
			return
		}
		if i := strings.IndexAny(after, "&#"); i >= 0 {
			after = after[:i]
		}
		if n, err := strconv.Atoi(after); err == nil && n > max {
			max = n
		}
	})
	return max
}
