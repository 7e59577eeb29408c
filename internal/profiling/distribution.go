// Package profiling describes the shape of a numeric column.
package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Distribution is the descriptive summary of one numeric sample
type Distribution struct {
	Count    int
	Mean     float64
	StdDev   float64
	Min      float64
	Q1       float64
	Median   float64
	Q3       float64
	Max      float64
	Skewness float64
	Outliers int
}

// Describe summarises data. StdDev is the population standard deviation.
// An empty sample is an error.
func Describe(data []float64) (Distribution, error) {
	d := Distribution{Count: len(data)}

	mean, err := stats.Mean(data)
	if err != nil {
		return d, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return d, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return d, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return d, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return d, err
	}

	// Quartiles for IQR-based outlier detection
	q1, err := stats.Percentile(data, 25)
	if err != nil {
		return d, err
	}
	q3, err := stats.Percentile(data, 75)
	if err != nil {
		return d, err
	}

	d.Mean = mean
	d.StdDev = stdDev
	d.Min = min
	d.Max = max
	d.Median = median
	d.Q1 = q1
	d.Q3 = q3
	d.Skewness = skewness(data, mean, stdDev)
	d.Outliers = countOutliers(data, q1, q3)
	return d, nil
}

// skewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func skewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0
	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	// Bias correction for sample skewness
	return sumCubedDeviations / n * math.Sqrt(n*(n-1)) / (n - 2)
}

// countOutliers counts values outside 1.5 IQR of the quartiles
func countOutliers(data []float64, q1, q3 float64) int {
	iqr := q3 - q1
	lowerBound := q1 - 1.5*iqr
	upperBound := q3 + 1.5*iqr

	outlierCount := 0
	for _, x := range data {
		if x < lowerBound || x > upperBound {
			outlierCount++
		}
	}
	return outlierCount
}
