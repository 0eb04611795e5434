package table

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tcheron/dirigeants/internal/models"
)

// Summary renders a short text overview of a scraped record set.
func Summary(records []models.TradeRecord) string {
	if len(records) == 0 {
		return "No data to summarize"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== INSIDER TRADING DATA SUMMARY ===\n")
	fmt.Fprintf(&b, "Total trades: %d\n", len(records))

	var minDate, maxDate time.Time
	companies := make(map[string]int)
	operations := make(map[string]int)
	authors := make(map[string]struct{})
	var totalValue float64
	var valued int

	for _, r := range records {
		if t, ok := r.ParsedOperationDate(); ok {
			if minDate.IsZero() || t.Before(minDate) {
				minDate = t
			}
			if t.After(maxDate) {
				maxDate = t
			}
		}
		companies[r.Company]++
		operations[r.Operation]++
		if r.Author != nil {
			authors[*r.Author] = struct{}{}
		}
		if r.TotalValueEUR != nil {
			totalValue += *r.TotalValueEUR
			valued++
		}
	}

	if !minDate.IsZero() {
		fmt.Fprintf(&b, "Date range: %s to %s\n",
			minDate.Format("2006-01-02"), maxDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "Unique companies: %d\n", len(companies))
	fmt.Fprintf(&b, "Unique authors: %d\n", len(authors))
	if valued > 0 {
		fmt.Fprintf(&b, "Total transaction value: %.2f EUR\n", totalValue)
		fmt.Fprintf(&b, "Average transaction value: %.2f EUR\n", totalValue/float64(valued))
	}

	fmt.Fprintf(&b, "\nTop 5 companies by number of trades:\n")
	for _, kv := range topCounts(companies, 5) {
		fmt.Fprintf(&b, "  %s: %d\n", kv.key, kv.count)
	}
	fmt.Fprintf(&b, "\nTop 5 operation types:\n")
	for _, kv := range topCounts(operations, 5) {
		fmt.Fprintf(&b, "  %s: %d\n", kv.key, kv.count)
	}
	return b.String()
}

type keyCount struct {
	key   string
	count int
}

func topCounts(m map[string]int, n int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, c := range m {
		out = append(out, keyCount{k, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
