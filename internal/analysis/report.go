package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// recommendations scores companies across the derived views: two points per
// distinct cluster buyer, three for executive buying, two for recent
// activity, up to two for a strong buy ratio.
func recommendations(res *Result) []Recommendation {
	type score struct {
		points  float64
		reasons []string
	}
	scores := make(map[string]*score)
	add := func(company string, pts float64, reason string) {
		s := scores[company]
		if s == nil {
			s = &score{}
			scores[company] = s
		}
		s.points += pts
		s.reasons = append(s.reasons, reason)
	}

	for _, c := range head(res.ClusterBuying, 10) {
		add(c.Company, float64(c.UniqueBuyers)*2,
			fmt.Sprintf("%d different insiders buying", c.UniqueBuyers))
	}
	for _, e := range head(res.ExecutiveBuying, 10) {
		add(e.Company, 3, "Executive-level buying")
	}
	for _, r := range head(res.RecentActivity, 10) {
		add(r.Company, 2, "Recent buying activity")
	}
	for _, r := range head(res.BuySellRatios, 10) {
		add(r.Company, r.BuyRatio*2,
			fmt.Sprintf("Strong buy ratio (%.1f%%)", r.BuyRatio*100))
	}

	out := make([]Recommendation, 0, len(scores))
	for company, s := range scores {
		out = append(out, Recommendation{
			Company:          company,
			OpportunityScore: s.points,
			Reasons:          strings.Join(s.reasons, "; "),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OpportunityScore != out[j].OpportunityScore {
			return out[i].OpportunityScore > out[j].OpportunityScore
		}
		return out[i].Company < out[j].Company
	})
	return out
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Report renders the analysis as a plain-text report.
func (r *Result) Report() string {
	var b strings.Builder
	line := strings.Repeat("=", 60)
	b.WriteString(line + "\n")
	b.WriteString("INSIDER TRADING ANALYSIS REPORT\n")
	b.WriteString(line + "\n\n")

	if len(r.Recommendations) > 0 {
		b.WriteString("TOP INVESTMENT OPPORTUNITIES:\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for i, rec := range head(r.Recommendations, 5) {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec.Company)
			fmt.Fprintf(&b, "   Score: %.1f\n", rec.OpportunityScore)
			fmt.Fprintf(&b, "   Reasons: %s\n\n", rec.Reasons)
		}
	}

	if len(r.ClusterBuying) > 0 {
		b.WriteString("CLUSTER BUYING (Multiple Insiders):\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, c := range head(r.ClusterBuying, 5) {
			fmt.Fprintf(&b, "- %s: %d buyers, EUR %.0f total\n",
				c.Company, c.UniqueBuyers, c.TotalValue)
		}
		b.WriteString("\n")
	}

	if len(r.RecentActivity) > 0 {
		fmt.Fprintf(&b, "RECENT ACTIVITY (Last %d days):\n", RecentWindowDays)
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, a := range head(r.RecentActivity, 5) {
			fmt.Fprintf(&b, "- %s: EUR %.0f by %d insiders\n",
				a.Company, a.RecentBuyValue, a.RecentBuyers)
		}
	}

	return b.String()
}
