package abcbourse

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/tcheron/dirigeants/internal/models"
)

const (
	detailRowClass = "dtlinsider"
	authorPrefix   = "Auteur: "
	dateLabel      = "Date d'opération:"
	quantityLabel  = "Quantité:"
	priceLabel     = "Prix:"
	commentLabel   = "Commentaires:"
)

// rowKind classifies a listing table row.
type rowKind int

const (
	rowSummary rowKind = iota
	rowDetail
)

func classifyRow(row *goquery.Selection) rowKind {
	if row.HasClass(detailRowClass) {
		return rowDetail
	}
	return rowSummary
}

// extractState drives the summary/detail pairing: after a summary row the
// walker expects at most one detail row before the next summary.
type extractState int

const (
	expectSummary extractState = iota
	expectOptionalDetail
)

// ExtractRecords parses one listing page into retained trade records:
// candidates missing company or author are discarded.
func ExtractRecords(doc *goquery.Document, page int, scrapedAt time.Time) []models.TradeRecord {
	candidates := ExtractCandidates(doc, page, scrapedAt)
	records := make([]models.TradeRecord, 0, len(candidates))
	for _, rec := range candidates {
		if rec.Company == "" || rec.Author == nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// ExtractCandidates walks the results table and produces one candidate per
// summary row, merging in the immediately following detail row when present.
// Candidates keep document order. A missing table yields zero candidates.
func ExtractCandidates(doc *goquery.Document, page int, scrapedAt time.Time) []models.TradeRecord {
	tbody := doc.Find("table#tabQuotes tbody").First()
	if tbody.Length() == 0 {
		return nil
	}

	var candidates []models.TradeRecord
	var pending *models.TradeRecord
	state := expectSummary

	flush := func() {
		if pending == nil {
			return
		}
		finalize(pending)
		candidates = append(candidates, *pending)
		pending = nil
	}

	// Direct children only: detail rows nest their own table rows.
	tbody.ChildrenFiltered("tr").Each(func(_ int, row *goquery.Selection) {
		kind := classifyRow(row)
		if state == expectOptionalDetail {
			state = expectSummary
			if kind == rowDetail {
				parseDetail(row, pending)
				flush()
				return
			}
			flush()
		}
		if kind == rowDetail {
			// Stray detail row with no preceding summary.
			return
		}
		rec, ok := parseSummary(row, page, scrapedAt)
		if !ok {
			return
		}
		pending = &rec
		state = expectOptionalDetail
	})
	flush()

	return candidates
}

// parseSummary reads the primary row. Rows with fewer than 6 cells are
// skipped without error.
func parseSummary(row *goquery.Selection, page int, scrapedAt time.Time) (models.TradeRecord, bool) {
	cells := row.ChildrenFiltered("td")
	if cells.Length() < 6 {
		return models.TradeRecord{}, false
	}

	rec := models.TradeRecord{
		ScrapedPage: page,
		ScrapedAt:   scrapedAt,
	}

	link := cells.Eq(0).Find("a").First()
	if link.Length() > 0 {
		rec.Company = strings.TrimSpace(link.Text())
		rec.CompanyHref, _ = link.Attr("href")
	}
	rec.DeclarationDate = cellText(cells.Eq(1))
	rec.Operation = cellText(cells.Eq(2))
	rec.Instrument = cellText(cells.Eq(3))
	rec.AmountFromMain = ParseAmount(cellText(cells.Eq(4)))

	return rec, true
}

// parseDetail reads the nested three-row table of a detail row into rec.
// Every value-parse failure degrades to a nil field.
func parseDetail(row *goquery.Selection, rec *models.TradeRecord) {
	if rec == nil {
		return
	}
	inner := row.Find("table").First()
	if inner.Length() == 0 {
		return
	}
	rows := inner.Find("tr")

	// Row 0: author with a literal prefix.
	if rows.Length() > 0 {
		author := strings.TrimSpace(rows.Eq(0).Find("td").First().Text())
		author = strings.TrimPrefix(author, authorPrefix)
		if author != "" {
			rec.Author = &author
		}
	}

	// Row 1: labeled operation cells.
	if rows.Length() > 1 {
		rows.Eq(1).Find("td").Each(func(_ int, cell *goquery.Selection) {
			text := strings.TrimSpace(cell.Text())
			switch {
			case strings.HasPrefix(text, dateLabel):
				date := strings.TrimSpace(strings.TrimPrefix(text, dateLabel))
				if date != "" {
					rec.OperationDate = &date
				}
			case strings.HasPrefix(text, quantityLabel):
				rec.Quantity = ParseQuantity(strings.TrimPrefix(text, quantityLabel))
			case strings.HasPrefix(text, priceLabel):
				rec.PriceEUR = ParseAmount(strings.TrimPrefix(text, priceLabel))
			}
		})
	}

	// Row 2: optional comment; empty normalizes to nil.
	if rows.Length() > 2 {
		text := strings.TrimSpace(rows.Eq(2).Find("td").First().Text())
		if strings.HasPrefix(text, commentLabel) {
			comment := strings.TrimSpace(strings.TrimPrefix(text, commentLabel))
			if comment != "" {
				rec.Comments = &comment
			}
		}
	}
}

// finalize derives the total value; it is never independently supplied.
func finalize(rec *models.TradeRecord) {
	if rec.Quantity != nil && rec.PriceEUR != nil {
		total := float64(*rec.Quantity) * *rec.PriceEUR
		rec.TotalValueEUR = &total
	}
}

func cellText(cell *goquery.Selection) string {
	return strings.TrimSpace(cell.Text())
}
