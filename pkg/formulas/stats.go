package formulas

import "gonum.org/v1/gonum/stat"

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// GrowthRates converts a corpus series into period-over-period growth rates
// Rates[i] = (Series[i] - Series[i-1]) / Series[i-1]
func GrowthRates(series []float64) []float64 {
	if len(series) < 2 {
		return []float64{}
	}

	rates := make([]float64, len(series)-1)
	for i := 1; i < len(series); i++ {
		if series[i-1] != 0 {
			rates[i-1] = (series[i] - series[i-1]) / series[i-1]
		}
	}

	return rates
}

// MeanGrowthRate returns the average period-over-period growth rate of a
// corpus series, as a fraction. Series shorter than two points yield 0.
func MeanGrowthRate(series []float64) float64 {
	return Mean(GrowthRates(series))
}
