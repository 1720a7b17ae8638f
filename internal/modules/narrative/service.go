package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aristath/investment-advisor/internal/domain"
	"github.com/aristath/investment-advisor/internal/modules/allocation"
	"github.com/aristath/investment-advisor/internal/modules/comparison"
	"github.com/aristath/investment-advisor/internal/modules/projection"
)

// systemPrompt frames the completion request. The endpoint must return plain
// text only; anything else is treated as a malformed response upstream.
const systemPrompt = "You are a fiduciary financial advisor AND quantitative planner for retail investors. " +
	"Use only the JSON profile provided by the user. " +
	"Assume annual return and interest rates are compounded monthly. " +
	"Use standard time-value-of-money formulas (future value of lump sum, future value of annuity, " +
	"present value with inflation discounting). " +
	"All outputs are research / preview only; never guarantee returns. " +
	"Write a detailed, structured advisor note in plain text that clearly uses the user's inputs " +
	"(age, goals, horizon, monthly investment, current savings, FD rate, inflation). " +
	"Focus on risk profiling, suggested allocation, expected returns, and inflation impact."

// Completer generates text for a system+user prompt pair
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Service builds the advisor prompt and requests the narrative note. A nil
// completer means the credential is absent: the service degrades to the
// fallback note without attempting the call.
type Service struct {
	completer Completer
	log       zerolog.Logger
}

// NewService creates a new narrative service
func NewService(completer Completer, log zerolog.Logger) *Service {
	return &Service{
		completer: completer,
		log:       log.With().Str("service", "narrative").Logger(),
	}
}

// Advise requests an advisor note for the computed results. It never fails:
// missing credential, timeout, non-2xx status and malformed responses all
// degrade to the deterministic fallback note with a non-fatal warning.
func (s *Service) Advise(
	ctx context.Context,
	profile *domain.FinancialProfile,
	plan *allocation.Plan,
	proj *projection.Result,
	comp *comparison.Result,
) Note {
	if s.completer == nil {
		s.log.Warn().Err(domain.ErrConfigurationMissing).Msg("Narrative credential absent, using fallback note")
		return Note{
			Text:    FallbackNote(profile, plan),
			Source:  SourceFallback,
			Warning: "advisor note unavailable: narrative credential not configured",
		}
	}

	userPrompt, err := BuildPrompt(profile, plan, proj, comp)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to build narrative prompt")
		return Note{
			Text:    FallbackNote(profile, plan),
			Source:  SourceFallback,
			Warning: "advisor note unavailable: could not build prompt",
		}
	}

	text, err := s.completer.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		s.log.Warn().
			Err(fmt.Errorf("%w: %v", domain.ErrExternalService, err)).
			Msg("Narrative request failed, using fallback note")
		return Note{
			Text:    FallbackNote(profile, plan),
			Source:  SourceFallback,
			Warning: "advisor note unavailable: narrative service did not respond",
		}
	}

	return Note{Text: text, Source: SourceLLM}
}

// BuildPrompt assembles the user prompt embedding all salient figures.
func BuildPrompt(
	profile *domain.FinancialProfile,
	plan *allocation.Plan,
	proj *projection.Result,
	comp *comparison.Result,
) (string, error) {
	allocationPct := make(map[string]float64, len(plan.Weights))
	for asset, pct := range plan.Weights {
		allocationPct[string(asset)] = pct
	}

	payload := promptProfile{
		Age:                  profile.Age,
		AnnualIncome:         profile.AnnualIncome,
		HorizonYears:         profile.HorizonYears,
		MonthlyContribution:  profile.MonthlyContribution,
		CurrentSavings:       profile.CurrentSavings,
		Goals:                profile.AllGoals(),
		TopGoal:              profile.TopGoal(),
		RiskTier:             string(plan.Tier),
		AllocationPct:        allocationPct,
		ExpectedAnnualReturn: plan.ExpectedAnnualReturn,
		InflationRate:        proj.InflationRate,
		FDRate:               comp.ReferenceRate,
		NominalFutureValue:   proj.NominalFutureValue,
		RealFutureValue:      proj.RealFutureValue,
		FDFutureValue:        comp.NominalFutureValue,
		FDRealFutureValue:    comp.RealFutureValue,
	}

	profileJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal prompt profile: %w", err)
	}

	return "Here is the investor profile as JSON:\n" +
		string(profileJSON) +
		"\n\nWrite only a detailed advisor note in plain text. " +
		"Do NOT return JSON, just human-readable advice.", nil
}

// FallbackNote is the deterministic advisor note used whenever the external
// narrative call is skipped or fails.
func FallbackNote(profile *domain.FinancialProfile, plan *allocation.Plan) string {
	return fmt.Sprintf(
		"Based on your age (%d), monthly investment of roughly %.0f, "+
			"current savings of about %.0f, and a %d-year horizon, "+
			"this preview assumes a %s risk profile with an expected CAGR "+
			"of around %.1f%% per year. Use this purely as research, not as a guarantee.",
		profile.Age, profile.MonthlyContribution, profile.CurrentSavings,
		profile.HorizonYears, strings.ToLower(string(plan.Tier)), plan.ExpectedAnnualReturn*100,
	)
}
