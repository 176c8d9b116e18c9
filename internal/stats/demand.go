package stats

import "math"

// DemandProfile summarizes a SKU's rolling sales history.
type DemandProfile struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	CV     float64 `json:"cv"`
}

// Analyze computes mean, standard deviation and coefficient of variation
// for a history window. Early in a session the window is shorter than a
// full week; the statistics operate on whatever length is present.
func Analyze(history []int) DemandProfile {
	if len(history) == 0 {
		return DemandProfile{}
	}

	mean := Mean(history)
	std := PopStdDev(history, mean)

	cv := 0.0
	if mean > 0 {
		cv = std / mean
	}

	return DemandProfile{Mean: mean, StdDev: std, CV: cv}
}

// Mean returns the arithmetic mean of a slice of daily counts.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// PopStdDev returns the population standard deviation (divisor n, not n-1).
// The history window is treated as the whole demand population, not a sample.
func PopStdDev(values []int, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sumSq float64
	for _, v := range values {
		d := float64(v) - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// RecentMean averages the most recent n entries of the history. If fewer
// than n are present it averages what is there.
func RecentMean(history []int, n int) float64 {
	if n <= 0 || len(history) == 0 {
		return 0
	}
	if n > len(history) {
		n = len(history)
	}
	return Mean(history[len(history)-n:])
}

// ClassifyVolatility buckets a coefficient of variation into a label the
// caller can surface next to the raw number.
func ClassifyVolatility(cv float64) string {
	switch {
	case cv < 0.1:
		return "steady"
	case cv < 0.2:
		return "stable"
	case cv < 0.4:
		return "choppy"
	default:
		return "erratic"
	}
}
