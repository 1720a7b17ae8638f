package formulas

import "math"

// AnnualToMonthlyRate converts an annual rate to the effective monthly rate
// Formula: (1 + annual)^(1/12) - 1
func AnnualToMonthlyRate(annualRate float64) float64 {
	return math.Pow(1+annualRate, 1.0/12.0) - 1
}

// FutureValueLumpSum compounds a principal over n periods at rate r per period
func FutureValueLumpSum(principal, r float64, n int) float64 {
	return principal * math.Pow(1+r, float64(n))
}

// FutureValueAnnuity computes the future value of an ordinary annuity:
// a fixed payment invested at the end of each of n periods at rate r.
// The r = 0 case degenerates to payment * n.
func FutureValueAnnuity(payment, r float64, n int) float64 {
	if r == 0 {
		return payment * float64(n)
	}
	return payment * ((math.Pow(1+r, float64(n)) - 1) / r)
}

// DiscountToPresent deflates a future value by an annual inflation rate
// over the given number of years, expressing it in today's purchasing power.
func DiscountToPresent(futureValue, inflationRate float64, years int) float64 {
	return futureValue / math.Pow(1+inflationRate, float64(years))
}
