// Package analysis derives buying-opportunity views from a scraped trade
// table: clusters, ratios, recency windows and scored recommendations.
package analysis

import (
	"sort"
	"strings"
	"time"

	"github.com/tcheron/dirigeants/internal/models"
)

// RecentWindowDays bounds the "recent activity" views.
const RecentWindowDays = 30

// LargePurchasePercentile is the cut for unusually large buys.
const LargePurchasePercentile = 0.90

// executiveKeywords flag high-level roles in the author text. Best-effort
// classifier, no authoritative taxonomy behind it.
var executiveKeywords = []string{
	"pdg", "ceo", "president", "directeur general", "directeur général",
	"administrateur", "conseil", "gerant", "gérant",
}

type ClusterStat struct {
	Company        string    `json:"company"`
	UniqueBuyers   int       `json:"unique_buyers"`
	TotalValue     float64   `json:"total_value"`
	AvgValue       float64   `json:"avg_value"`
	NumTrades      int       `json:"num_trades"`
	FirstTrade     time.Time `json:"first_trade"`
	LastTrade      time.Time `json:"last_trade"`
	RecentActivity bool      `json:"recent_activity"`
}

type LargePurchase struct {
	Company         string    `json:"company"`
	Author          string    `json:"author"`
	TotalValueEUR   float64   `json:"total_value_eur"`
	Quantity        int64     `json:"quantity"`
	PriceEUR        float64   `json:"price_eur"`
	OperationDate   time.Time `json:"operation_date"`
	ValuePercentile float64   `json:"value_percentile"`
}

type ExecutiveSummary struct {
	Company        string    `json:"company"`
	TotalExecValue float64   `json:"total_exec_value"`
	NumExecTrades  int       `json:"num_exec_trades"`
	Executives     []string  `json:"executives"`
	LastTrade      time.Time `json:"last_trade"`
}

type RecentSummary struct {
	Company        string    `json:"company"`
	RecentBuyValue float64   `json:"recent_buy_value"`
	RecentBuyers   int       `json:"recent_buyers"`
	TotalShares    int64     `json:"total_shares"`
	LatestTrade    time.Time `json:"latest_trade"`
}

type RatioStat struct {
	Company    string  `json:"company"`
	BuyValue   float64 `json:"buy_value"`
	SellValue  float64 `json:"sell_value"`
	TotalValue float64 `json:"total_value"`
	BuyRatio   float64 `json:"buy_ratio"`
	NetBuying  float64 `json:"net_buying"`
}

type RepeatedBuyer struct {
	Company          string    `json:"company"`
	Author           string    `json:"author"`
	TotalInvested    float64   `json:"total_invested"`
	NumPurchases     int       `json:"num_purchases"`
	FirstPurchase    time.Time `json:"first_purchase"`
	LastPurchase     time.Time `json:"last_purchase"`
	DaysSpan         int       `json:"days_span"`
	ConsistencyScore float64   `json:"consistency_score"`
}

type CompanyActivity struct {
	Company      string  `json:"company"`
	TotalValue   float64 `json:"total_value"`
	UniqueBuyers int     `json:"unique_buyers"`
}

type Recommendation struct {
	Company          string  `json:"company"`
	OpportunityScore float64 `json:"opportunity_score"`
	Reasons          string  `json:"reasons"`
}

// Result collects every derived view of one analysis run.
type Result struct {
	ClusterBuying   []ClusterStat
	LargePurchases  []LargePurchase
	ExecutiveBuying []ExecutiveSummary
	RecentActivity  []RecentSummary
	BuySellRatios   []RatioStat
	RepeatedBuyers  []RepeatedBuyer
	SectorTrends    []CompanyActivity
	Recommendations []Recommendation
}

// Analyze runs every derived view over the record set as of asOf. Records
// missing company, operation, quantity or price are dropped up front; an
// empty input simply yields empty views.
func Analyze(records []models.TradeRecord, asOf time.Time) *Result {
	clean := make([]models.TradeRecord, 0, len(records))
	for _, r := range records {
		if r.Company == "" || r.Operation == "" || r.Quantity == nil || r.PriceEUR == nil {
			continue
		}
		clean = append(clean, r)
	}

	res := &Result{
		ClusterBuying:   clusterBuying(clean, asOf),
		LargePurchases:  largePurchases(clean),
		ExecutiveBuying: executiveBuying(clean),
		RecentActivity:  recentActivity(clean, asOf, RecentWindowDays),
		BuySellRatios:   buySellRatios(clean),
		RepeatedBuyers:  repeatedBuyers(clean),
	}
	res.SectorTrends = sectorTrends(clean)
	res.Recommendations = recommendations(res)
	return res
}

func totalValue(r models.TradeRecord) float64 {
	if r.TotalValueEUR == nil {
		return 0
	}
	return *r.TotalValueEUR
}

func author(r models.TradeRecord) string {
	if r.Author == nil {
		return ""
	}
	return *r.Author
}

// clusterBuying keeps companies where at least two distinct insiders bought,
// sorted by total buy value.
func clusterBuying(records []models.TradeRecord, asOf time.Time) []ClusterStat {
	type agg struct {
		buyers map[string]struct{}
		total  float64
		count  int
		first  time.Time
		last   time.Time
	}
	byCompany := make(map[string]*agg)
	for _, r := range records {
		if !r.IsBuy() {
			continue
		}
		a := byCompany[r.Company]
		if a == nil {
			a = &agg{buyers: make(map[string]struct{})}
			byCompany[r.Company] = a
		}
		a.buyers[author(r)] = struct{}{}
		a.total += totalValue(r)
		a.count++
		if t, ok := r.ParsedOperationDate(); ok {
			if a.first.IsZero() || t.Before(a.first) {
				a.first = t
			}
			if t.After(a.last) {
				a.last = t
			}
		}
	}

	recentCutoff := asOf.AddDate(0, 0, -RecentWindowDays)
	out := make([]ClusterStat, 0, len(byCompany))
	for company, a := range byCompany {
		if len(a.buyers) < 2 {
			continue
		}
		out = append(out, ClusterStat{
			Company:        company,
			UniqueBuyers:   len(a.buyers),
			TotalValue:     a.total,
			AvgValue:       a.total / float64(a.count),
			NumTrades:      a.count,
			FirstTrade:     a.first,
			LastTrade:      a.last,
			RecentActivity: !a.last.IsZero() && !a.last.Before(recentCutoff),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalValue > out[j].TotalValue })
	return out
}

// largePurchases returns buys at or above the 90th percentile of buy value,
// annotated with their percentile rank within that subset.
func largePurchases(records []models.TradeRecord) []LargePurchase {
	var buys []models.TradeRecord
	var values []float64
	for _, r := range records {
		if r.IsBuy() && r.TotalValueEUR != nil {
			buys = append(buys, r)
			values = append(values, *r.TotalValueEUR)
		}
	}
	if len(buys) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	threshold := quantile(sorted, LargePurchasePercentile)

	var large []LargePurchase
	var largeValues []float64
	for _, r := range buys {
		if *r.TotalValueEUR < threshold {
			continue
		}
		opDate, _ := r.ParsedOperationDate()
		large = append(large, LargePurchase{
			Company:       r.Company,
			Author:        author(r),
			TotalValueEUR: *r.TotalValueEUR,
			Quantity:      *r.Quantity,
			PriceEUR:      *r.PriceEUR,
			OperationDate: opDate,
		})
		largeValues = append(largeValues, *r.TotalValueEUR)
	}
	for i := range large {
		large[i].ValuePercentile = percentileRank(largeValues, large[i].TotalValueEUR)
	}
	sort.Slice(large, func(i, j int) bool { return large[i].TotalValueEUR > large[j].TotalValueEUR })
	return large
}

func isExecutive(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range executiveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func executiveBuying(records []models.TradeRecord) []ExecutiveSummary {
	type agg struct {
		total float64
		count int
		execs map[string]struct{}
		last  time.Time
	}
	byCompany := make(map[string]*agg)
	for _, r := range records {
		if !r.IsBuy() || !isExecutive(author(r)) {
			continue
		}
		a := byCompany[r.Company]
		if a == nil {
			a = &agg{execs: make(map[string]struct{})}
			byCompany[r.Company] = a
		}
		a.total += totalValue(r)
		a.count++
		a.execs[author(r)] = struct{}{}
		if t, ok := r.ParsedOperationDate(); ok && t.After(a.last) {
			a.last = t
		}
	}

	out := make([]ExecutiveSummary, 0, len(byCompany))
	for company, a := range byCompany {
		execs := make([]string, 0, len(a.execs))
		for e := range a.execs {
			execs = append(execs, e)
		}
		sort.Strings(execs)
		out = append(out, ExecutiveSummary{
			Company:        company,
			TotalExecValue: a.total,
			NumExecTrades:  a.count,
			Executives:     execs,
			LastTrade:      a.last,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalExecValue > out[j].TotalExecValue })
	return out
}

func recentActivity(records []models.TradeRecord, asOf time.Time, days int) []RecentSummary {
	cutoff := asOf.AddDate(0, 0, -days)
	type agg struct {
		value  float64
		buyers map[string]struct{}
		shares int64
		latest time.Time
	}
	byCompany := make(map[string]*agg)
	for _, r := range records {
		if !r.IsBuy() {
			continue
		}
		t, ok := r.ParsedOperationDate()
		if !ok || t.Before(cutoff) {
			continue
		}
		a := byCompany[r.Company]
		if a == nil {
			a = &agg{buyers: make(map[string]struct{})}
			byCompany[r.Company] = a
		}
		a.value += totalValue(r)
		a.buyers[author(r)] = struct{}{}
		a.shares += *r.Quantity
		if t.After(a.latest) {
			a.latest = t
		}
	}

	out := make([]RecentSummary, 0, len(byCompany))
	for company, a := range byCompany {
		out = append(out, RecentSummary{
			Company:        company,
			RecentBuyValue: a.value,
			RecentBuyers:   len(a.buyers),
			TotalShares:    a.shares,
			LatestTrade:    a.latest,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecentBuyValue > out[j].RecentBuyValue })
	return out
}

// buySellRatios keeps companies with at least median activity and a buy
// ratio of 0.7 or better, sorted by net buying.
func buySellRatios(records []models.TradeRecord) []RatioStat {
	type agg struct{ buy, sell float64 }
	byCompany := make(map[string]*agg)
	for _, r := range records {
		a := byCompany[r.Company]
		if a == nil {
			a = &agg{}
			byCompany[r.Company] = a
		}
		switch {
		case r.IsBuy():
			a.buy += totalValue(r)
		case r.IsSell():
			a.sell += totalValue(r)
		}
	}

	stats := make([]RatioStat, 0, len(byCompany))
	totals := make([]float64, 0, len(byCompany))
	for company, a := range byCompany {
		total := a.buy + a.sell
		if total <= 0 {
			continue
		}
		stats = append(stats, RatioStat{
			Company:    company,
			BuyValue:   a.buy,
			SellValue:  a.sell,
			TotalValue: total,
			BuyRatio:   a.buy / total,
			NetBuying:  a.buy - a.sell,
		})
		totals = append(totals, total)
	}
	if len(stats) == 0 {
		return nil
	}
	sort.Float64s(totals)
	median := quantile(totals, 0.5)

	out := stats[:0]
	for _, s := range stats {
		if s.TotalValue >= median && s.BuyRatio >= 0.7 {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NetBuying > out[j].NetBuying })
	return out
}

func repeatedBuyers(records []models.TradeRecord) []RepeatedBuyer {
	type key struct{ company, author string }
	type agg struct {
		total float64
		count int
		first time.Time
		last  time.Time
	}
	byPair := make(map[key]*agg)
	for _, r := range records {
		if !r.IsBuy() {
			continue
		}
		k := key{r.Company, author(r)}
		a := byPair[k]
		if a == nil {
			a = &agg{}
			byPair[k] = a
		}
		a.total += totalValue(r)
		a.count++
		if t, ok := r.ParsedOperationDate(); ok {
			if a.first.IsZero() || t.Before(a.first) {
				a.first = t
			}
			if t.After(a.last) {
				a.last = t
			}
		}
	}

	out := make([]RepeatedBuyer, 0)
	for k, a := range byPair {
		if a.count < 2 {
			continue
		}
		span := 0
		if !a.first.IsZero() && !a.last.IsZero() {
			span = int(a.last.Sub(a.first).Hours() / 24)
		}
		out = append(out, RepeatedBuyer{
			Company:          k.company,
			Author:           k.author,
			TotalInvested:    a.total,
			NumPurchases:     a.count,
			FirstPurchase:    a.first,
			LastPurchase:     a.last,
			DaysSpan:         span,
			ConsistencyScore: float64(a.count) / float64(span+1) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalInvested != out[j].TotalInvested {
			return out[i].TotalInvested > out[j].TotalInvested
		}
		return out[i].ConsistencyScore > out[j].ConsistencyScore
	})
	return out
}

// sectorTrends is a company-level proxy: top ten companies by insider buy
// value. There is no authoritative sector taxonomy in the source data.
func sectorTrends(records []models.TradeRecord) []CompanyActivity {
	type agg struct {
		total  float64
		buyers map[string]struct{}
	}
	byCompany := make(map[string]*agg)
	for _, r := range records {
		if !r.IsBuy() {
			continue
		}
		a := byCompany[r.Company]
		if a == nil {
			a = &agg{buyers: make(map[string]struct{})}
			byCompany[r.Company] = a
		}
		a.total += totalValue(r)
		a.buyers[author(r)] = struct{}{}
	}
	out := make([]CompanyActivity, 0, len(byCompany))
	for company, a := range byCompany {
		out = append(out, CompanyActivity{
			Company:      company,
			TotalValue:   a.total,
			UniqueBuyers: len(a.buyers),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalValue > out[j].TotalValue })
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}
