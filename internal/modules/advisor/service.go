package advisor

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/investment-advisor/internal/domain"
	"github.com/aristath/investment-advisor/internal/modules/allocation"
	"github.com/aristath/investment-advisor/internal/modules/comparison"
	"github.com/aristath/investment-advisor/internal/modules/narrative"
	"github.com/aristath/investment-advisor/internal/modules/projection"
	"github.com/aristath/investment-advisor/pkg/formulas"
)

// Service runs the advisory pipeline: allocation, projection, comparison,
// narrative. Synchronous and single-pass; the narrative request is the only
// step that can block, bounded by its context timeout.
type Service struct {
	allocation *allocation.Service
	projection *projection.Service
	comparison *comparison.Service
	narrative  *narrative.Service
	log        zerolog.Logger
}

// NewService creates a new advisor service
func NewService(
	alloc *allocation.Service,
	proj *projection.Service,
	comp *comparison.Service,
	narr *narrative.Service,
	log zerolog.Logger,
) *Service {
	return &Service{
		allocation: alloc,
		projection: proj,
		comparison: comp,
		narrative:  narr,
		log:        log.With().Str("service", "advisor").Logger(),
	}
}

// BuildReport validates the profile and runs the full pipeline. Validation
// failures return before any computation; every later step either succeeds
// or degrades locally.
func (s *Service) BuildReport(ctx context.Context, profile *domain.FinancialProfile) (*Report, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.allocation.PlanForProfile(profile)
	if err != nil {
		return nil, err
	}

	proj, err := s.projection.Project(profile, plan.ExpectedAnnualReturn)
	if err != nil {
		return nil, err
	}

	comp, err := s.comparison.Project(profile)
	if err != nil {
		return nil, err
	}

	series := s.projection.SeriesPoints(profile, plan.ExpectedAnnualReturn)
	note := s.narrative.Advise(ctx, profile, plan, proj, comp)

	report := &Report{
		ID:         uuid.NewString(),
		Profile:    *profile,
		Plan:       plan,
		Projection: proj,
		Comparison: comp,
		Series:     series,
		Summary:    summarize(profile, proj, series),
		Note:       note,
	}

	s.log.Info().
		Str("report_id", report.ID).
		Str("tier", string(plan.Tier)).
		Bool("tier_inferred", plan.Inferred).
		Int("horizon_years", profile.HorizonYears).
		Str("note_source", note.Source).
		Msg("Advisory report built")

	return report, nil
}

// Defaults returns pre-filled form values seeded by the risk hint. Invalid
// or missing hints fall back to Medium; the hint is UI convenience only and
// never reaches the core pipeline.
func (s *Service) Defaults(riskHint string) *Defaults {
	tier := normalizeTierHint(riskHint)

	// Tier is always valid here, the lookup cannot fail.
	plan, _ := s.allocation.PlanFor(tier)

	return &Defaults{
		Profile: domain.FinancialProfile{
			Age:                 30,
			AnnualIncome:        1200000,
			HorizonYears:        15,
			MonthlyContribution: 20000,
			CurrentSavings:      0,
			Goals:               []string{"Wealth Creation"},
			RiskTier:            tier,
		},
		Plan: plan,
	}
}

// normalizeTierHint title-cases the hint and falls back to Medium when it is
// not a recognized tier.
func normalizeTierHint(hint string) domain.RiskTier {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return domain.RiskMedium
	}

	tier := domain.RiskTier(strings.ToUpper(hint[:1]) + strings.ToLower(hint[1:]))
	if !tier.IsValid() {
		return domain.RiskMedium
	}
	return tier
}

// summarize derives the KPI summary from the nominal trajectory.
func summarize(profile *domain.FinancialProfile, proj *projection.Result, series []projection.Point) Summary {
	invested := profile.CurrentSavings + profile.MonthlyContribution*12*float64(profile.HorizonYears)

	nominal := make([]float64, 0, len(series))
	for _, p := range series {
		nominal = append(nominal, p.Nominal)
	}

	return Summary{
		TotalInvested:       invested,
		WealthGain:          proj.NominalFutureValue - invested,
		MeanAnnualGrowthPct: formulas.MeanGrowthRate(nominal) * 100,
	}
}
