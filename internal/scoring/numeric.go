package scoring

import "math"

// mean returns the average response value and false when there is nothing to
// average.
func mean(responses []AssessmentResponse) (float64, bool) {
	if len(responses) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, r := range responses {
		sum += r.Value
	}
	return sum / float64(len(responses)), true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundScore rounds half up. Scores are never negative, so math.Round matches.
func roundScore(v float64) int {
	return int(math.Round(v))
}

func minOf(values ...float64) float64 {
	m := math.Inf(1)
	for _, v := range values {
		m = math.Min(m, v)
	}
	return m
}
