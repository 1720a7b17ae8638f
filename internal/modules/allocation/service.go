package allocation

import (
	"github.com/rs/zerolog"

	"github.com/aristath/investment-advisor/internal/domain"
)

// Service maps risk tiers to allocation plans
type Service struct {
	log zerolog.Logger
}

// NewService creates a new allocation service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "allocation").Logger(),
	}
}

// PlanFor returns the allocation plan for a risk tier. Pure and
// deterministic; unrecognized tiers are rejected with an invalid-input error.
func (s *Service) PlanFor(tier domain.RiskTier) (*Plan, error) {
	weights, ok := tierWeights[tier]
	if !ok {
		return nil, domain.InvalidInputf("unknown risk tier %q", tier)
	}

	// Copy so callers cannot mutate the policy table.
	planWeights := make(map[domain.AssetClass]float64, len(weights))
	blended := 0.0
	for asset, pct := range weights {
		planWeights[asset] = pct
		blended += (pct / 100.0) * assetReturns[asset]
	}

	return &Plan{
		Tier:                 tier,
		Weights:              planWeights,
		ExpectedAnnualReturn: blended,
	}, nil
}

// PlanForProfile resolves the profile's tier, inferring one from the
// rule-based score when the profile leaves it unset.
func (s *Service) PlanForProfile(profile *domain.FinancialProfile) (*Plan, error) {
	if profile.RiskTier != "" {
		return s.PlanFor(profile.RiskTier)
	}

	tier, score := InferTier(profile)
	s.log.Debug().
		Str("tier", string(tier)).
		Int("score", score).
		Msg("Inferred risk tier from profile")

	plan, err := s.PlanFor(tier)
	if err != nil {
		return nil, err
	}
	plan.Inferred = true
	plan.InferenceScore = score
	return plan, nil
}

// InferTier scores a profile into a risk tier when no explicit preference
// was given. Scoring: age < 35 adds 2 (age <= 50 adds 1), a horizon of 15+
// years adds 2, a savings rate of 30%+ adds 1, growth-oriented goals add 1.
// Scores of 0-2 map to Low, 3-4 to Medium, 5+ to High.
func InferTier(profile *domain.FinancialProfile) (domain.RiskTier, int) {
	monthlyIncome := profile.AnnualIncome / 12.0
	savingsRate := 0.0
	if monthlyIncome > 0 {
		savingsRate = profile.MonthlyContribution / monthlyIncome
	}

	score := 0
	if profile.Age < 35 {
		score += 2
	} else if profile.Age <= 50 {
		score++
	}
	if profile.HorizonYears >= inferenceLongHorizonYears {
		score += 2
	}
	if savingsRate >= inferenceSavingsRateFloor {
		score++
	}
	for _, goal := range profile.AllGoals() {
		if growthGoals[goal] {
			score++
			break
		}
	}

	switch {
	case score <= inferenceLowMaxScore:
		return domain.RiskLow, score
	case score <= inferenceMediumMaxScore:
		return domain.RiskMedium, score
	default:
		return domain.RiskHigh, score
	}
}
