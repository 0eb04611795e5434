package analysis

import "math"

// quantile interpolates linearly between order statistics. vals must be
// sorted ascending.
func quantile(vals []float64, q float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	if q <= 0 {
		return vals[0]
	}
	if q >= 1 {
		return vals[len(vals)-1]
	}
	pos := q * float64(len(vals)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return vals[lo]*(1-frac) + vals[hi]*frac
}

// percentileRank returns the average-rank percentile of v within vals,
// ties shared, scaled to 0..100.
func percentileRank(vals []float64, v float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var less, equal int
	for _, x := range vals {
		switch {
		case x < v:
			less++
		case x == v:
			equal++
		}
	}
	rank := float64(less) + (float64(equal)+1)/2
	return rank / float64(len(vals)) * 100
}
