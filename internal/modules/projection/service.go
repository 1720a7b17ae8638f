package projection

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/aristath/investment-advisor/internal/domain"
	"github.com/aristath/investment-advisor/pkg/formulas"
)

// Service computes future-value projections. Pure and stateless: identical
// inputs always yield identical outputs.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new projection service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "projection").Logger(),
	}
}

// Project computes the nominal and inflation-adjusted future corpus for a
// profile at the given blended annual return. Current savings compound
// monthly as a lump sum; the monthly contribution stream compounds as an
// ordinary annuity. A zero horizon degrades to the current savings.
func (s *Service) Project(profile *domain.FinancialProfile, annualReturn float64) (*Result, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	inflation := profile.Inflation()
	nominal := corpusAt(profile, annualReturn, profile.HorizonYears)

	return &Result{
		NominalFutureValue: nominal,
		RealFutureValue:    formulas.DiscountToPresent(nominal, inflation, profile.HorizonYears),
		HorizonYears:       profile.HorizonYears,
		AnnualReturn:       annualReturn,
		InflationRate:      inflation,
	}, nil
}

// Series returns the yearly growth trajectory as a finite, restartable lazy
// sequence: each range over it re-evaluates the closed-form corpus at every
// partial horizon from year 1 through the full horizon.
func (s *Service) Series(profile *domain.FinancialProfile, annualReturn float64) iter.Seq[Point] {
	inflation := profile.Inflation()
	horizon := profile.HorizonYears

	return func(yield func(Point) bool) {
		for year := 1; year <= horizon; year++ {
			nominal := corpusAt(profile, annualReturn, year)
			p := Point{
				Year:    year,
				Nominal: nominal,
				Real:    formulas.DiscountToPresent(nominal, inflation, year),
			}
			if !yield(p) {
				return
			}
		}
	}
}

// SeriesPoints collects the yearly trajectory into a slice for JSON responses.
func (s *Service) SeriesPoints(profile *domain.FinancialProfile, annualReturn float64) []Point {
	points := make([]Point, 0, profile.HorizonYears)
	for p := range s.Series(profile, annualReturn) {
		points = append(points, p)
	}
	return points
}

// corpusAt evaluates the nominal corpus after the given number of years.
func corpusAt(profile *domain.FinancialProfile, annualReturn float64, years int) float64 {
	months := years * 12
	monthlyRate := formulas.AnnualToMonthlyRate(annualReturn)

	fvLump := formulas.FutureValueLumpSum(profile.CurrentSavings, monthlyRate, months)
	fvStream := formulas.FutureValueAnnuity(profile.MonthlyContribution, monthlyRate, months)

	return fvLump + fvStream
}
