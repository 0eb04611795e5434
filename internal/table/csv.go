// Package table is the flat tabular boundary of the pipeline: CSV export and
// the validated CSV-to-record import used by the analysis stage.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tcheron/dirigeants/internal/models"
)

const scrapedAtLayout = "2006-01-02 15:04:05"

// Columns is the CSV header, one column per TradeRecord field.
var Columns = []string{
	"company", "company_href", "declaration_date", "operation", "instrument",
	"amount_from_main", "author", "operation_date", "quantity", "price_eur",
	"total_value_eur", "comments", "scraped_page", "scraped_at",
}

// requiredColumns must be present for the analysis stage to accept a table.
var requiredColumns = []string{
	"company", "operation", "author", "quantity", "price_eur", "total_value_eur",
}

// WriteCSV writes the records as UTF-8 CSV with a header row and returns the
// path used. An empty filename selects insider_trades_<YYYYMMDD_HHMMSS>.csv.
func WriteCSV(records []models.TradeRecord, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("insider_trades_%s.csv", time.Now().Format("20060102_150405"))
	}
	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return "", err
	}
	for _, r := range records {
		row := []string{
			r.Company,
			r.CompanyHref,
			r.DeclarationDate,
			r.Operation,
			r.Instrument,
			floatField(r.AmountFromMain),
			strField(r.Author),
			strField(r.OperationDate),
			intField(r.Quantity),
			floatField(r.PriceEUR),
			floatField(r.TotalValueEUR),
			strField(r.Comments),
			strconv.Itoa(r.ScrapedPage),
			r.ScrapedAt.Format(scrapedAtLayout),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return filename, nil
}

// ReadCSV loads a trade table back into typed records. This is the one hard
// validation boundary of the pipeline: absent required columns produce a
// descriptive error naming them. Per-cell parse failures degrade to nil
// fields, matching extraction behavior.
func ReadCSV(path string) ([]models.TradeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: empty file", path)
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	get := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]models.TradeRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := models.TradeRecord{
			Company:         get(row, "company"),
			CompanyHref:     get(row, "company_href"),
			DeclarationDate: get(row, "declaration_date"),
			Operation:       get(row, "operation"),
			Instrument:      get(row, "instrument"),
			AmountFromMain:  parseFloat(get(row, "amount_from_main")),
			Author:          parseStr(get(row, "author")),
			OperationDate:   parseStr(get(row, "operation_date")),
			Quantity:        parseInt(get(row, "quantity")),
			PriceEUR:        parseFloat(get(row, "price_eur")),
			TotalValueEUR:   parseFloat(get(row, "total_value_eur")),
			Comments:        parseStr(get(row, "comments")),
		}
		if n, err := strconv.Atoi(get(row, "scraped_page")); err == nil {
			rec.ScrapedPage = n
		}
		if t, err := time.Parse(scrapedAtLayout, get(row, "scraped_at")); err == nil {
			rec.ScrapedAt = t
		}
		records = append(records, rec)
	}
	return records, nil
}

func strField(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intField(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func parseStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
