package comparison

import (
	"github.com/rs/zerolog"

	"github.com/aristath/investment-advisor/internal/domain"
	"github.com/aristath/investment-advisor/internal/modules/projection"
)

// Result is the fixed-deposit-proxy projection shown alongside the portfolio
// projection for contrast. Same contribution schedule, fixed reference rate.
type Result struct {
	NominalFutureValue float64 `json:"nominal_future_value"`
	RealFutureValue    float64 `json:"real_future_value"`
	ReferenceRate      float64 `json:"reference_rate"`
}

// Service computes the fixed-reference comparison projection
type Service struct {
	engine *projection.Service
	log    zerolog.Logger
}

// NewService creates a new comparison service
func NewService(engine *projection.Service, log zerolog.Logger) *Service {
	return &Service{
		engine: engine,
		log:    log.With().Str("service", "comparison").Logger(),
	}
}

// Project runs the projection engine with the profile's fixed-deposit
// reference rate substituted for the risk-derived blended return. Display
// contrast only; it never feeds back into the allocation or main projection.
func (s *Service) Project(profile *domain.FinancialProfile) (*Result, error) {
	rate := profile.FixedDepositRate()

	res, err := s.engine.Project(profile, rate)
	if err != nil {
		return nil, err
	}

	return &Result{
		NominalFutureValue: res.NominalFutureValue,
		RealFutureValue:    res.RealFutureValue,
		ReferenceRate:      rate,
	}, nil
}
