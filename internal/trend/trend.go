// Package trend computes simple return and slope statistics over a close
// series, used to annotate the comparison ticker in reports.
package trend

// Trend holds the windowed return and regression slope of a close series.
type Trend struct {
	WindowPct float64
	Return    float64
	Slope     float64
	Last      float64
}

// FromCloses computes the return over the last lookback points and the
// linear regression slope over that window. A lookback <= 0 selects the
// quarterly default of 63 trading days. Returns nil when fewer than 30
// positive closes are available.
func FromCloses(closes []float64, lookback int) *Trend {
	valid := make([]float64, 0, len(closes))
	for _, c := range closes {
		if c > 0 {
			valid = append(valid, c)
		}
	}
	if len(valid) < 30 {
		return nil
	}
	if lookback <= 0 {
		lookback = 63
	}
	if len(valid) <= lookback {
		lookback = len(valid) / 2
	}
	if lookback < 1 {
		lookback = 1
	}
	last := valid[len(valid)-1]
	prev := valid[len(valid)-lookback]
	if prev <= 0 {
		return nil
	}
	ret := last/prev - 1
	return &Trend{
		WindowPct: ret * 100,
		Return:    ret,
		Slope:     linearSlope(valid[len(valid)-lookback:]),
		Last:      last,
	}
}

func linearSlope(y []float64) float64 {
	n := float64(len(y))
	if n < 2 {
		return 0
	}
	xMean := (n - 1) / 2
	var ySum float64
	for _, v := range y {
		ySum += v
	}
	yMean := ySum / n
	var num, den float64
	for i, yi := range y {
		xi := float64(i)
		num += (xi - xMean) * (yi - yMean)
		den += (xi - xMean) * (xi - xMean)
	}
	if den == 0 {
		return 0
	}
	return num / den
}
