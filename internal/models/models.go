package models

import (
	"strings"
	"time"
)

// DateLayout is the day-first layout used by abcbourse for both the
// declaration and operation dates.
const DateLayout = "02/01/2006"

// TradeRecord is one disclosed insider transaction. Fields sourced from the
// optional detail row are pointers: nil means the page did not carry the
// value, or it failed to parse. A record is never mutated after extraction.
type TradeRecord struct {
	Company         string    `json:"company"`
	CompanyHref     string    `json:"company_href,omitempty"`
	DeclarationDate string    `json:"declaration_date"`
	Operation       string    `json:"operation"`
	Instrument      string    `json:"instrument"`
	AmountFromMain  *float64  `json:"amount_from_main,omitempty"`
	Author          *string   `json:"author,omitempty"`
	OperationDate   *string   `json:"operation_date,omitempty"`
	Quantity        *int64    `json:"quantity,omitempty"`
	PriceEUR        *float64  `json:"price_eur,omitempty"`
	TotalValueEUR   *float64  `json:"total_value_eur,omitempty"`
	Comments        *string   `json:"comments,omitempty"`
	ScrapedPage     int       `json:"scraped_page"`
	ScrapedAt       time.Time `json:"scraped_at"`
}

// IsBuy reports whether the operation label reads as a purchase.
func (r TradeRecord) IsBuy() bool {
	op := strings.ToLower(r.Operation)
	return strings.Contains(op, "acquisition") ||
		strings.Contains(op, "achat") ||
		strings.Contains(op, "souscription")
}

// IsSell reports whether the operation label reads as a disposal.
func (r TradeRecord) IsSell() bool {
	op := strings.ToLower(r.Operation)
	return strings.Contains(op, "cession") || strings.Contains(op, "vente")
}

// ParsedOperationDate parses the DD/MM/YYYY operation date. ok is false when
// the date is absent or malformed.
func (r TradeRecord) ParsedOperationDate() (time.Time, bool) {
	if r.OperationDate == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(*r.OperationDate))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParsedDeclarationDate parses the DD/MM/YYYY declaration date.
func (r TradeRecord) ParsedDeclarationDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(r.DeclarationDate))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
