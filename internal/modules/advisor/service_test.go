package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/investment-advisor/internal/domain"
	"github.com/aristath/investment-advisor/internal/modules/allocation"
	"github.com/aristath/investment-advisor/internal/modules/comparison"
	"github.com/aristath/investment-advisor/internal/modules/narrative"
	"github.com/aristath/investment-advisor/internal/modules/projection"
)

// newTestService wires the pipeline with no narrative completer, so the
// advisor note always comes from the fallback path.
func newTestService() *Service {
	log := zerolog.Nop()
	proj := projection.NewService(log)
	return NewService(
		allocation.NewService(log),
		proj,
		comparison.NewService(proj, log),
		narrative.NewService(nil, log),
		log,
	)
}

func referenceProfile() domain.FinancialProfile {
	return domain.FinancialProfile{
		Age:                 30,
		AnnualIncome:        100000,
		HorizonYears:        10,
		MonthlyContribution: 5000,
		CurrentSavings:      50000,
		Goal:                "Wealth Creation",
		RiskTier:            domain.RiskMedium,
	}
}

func TestBuildReport(t *testing.T) {
	service := newTestService()
	profile := referenceProfile()

	report, err := service.BuildReport(context.Background(), &profile)
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, profile, report.Profile)
	assert.Equal(t, domain.RiskMedium, report.Plan.Tier)
	assert.InDelta(t, 0.093, report.Plan.ExpectedAnnualReturn, 1e-9)

	require.Len(t, report.Series, 10)
	assert.InDelta(t, report.Projection.NominalFutureValue, report.Series[9].Nominal, 1e-6)

	assert.Less(t, report.Comparison.NominalFutureValue, report.Projection.NominalFutureValue)
	assert.Equal(t, narrative.SourceFallback, report.Note.Source)
	assert.NotEmpty(t, report.Note.Warning)

	// 50000 savings + 5000/month for 10 years
	assert.InDelta(t, 650000.0, report.Summary.TotalInvested, 1e-6)
	assert.InDelta(t, report.Projection.NominalFutureValue-650000.0, report.Summary.WealthGain, 1e-6)
	assert.Greater(t, report.Summary.MeanAnnualGrowthPct, 0.0)
}

func TestBuildReport_UniqueIDs(t *testing.T) {
	service := newTestService()
	profile := referenceProfile()

	a, err := service.BuildReport(context.Background(), &profile)
	require.NoError(t, err)
	b, err := service.BuildReport(context.Background(), &profile)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)

	// Everything except the ID is deterministic.
	assert.Equal(t, a.Projection, b.Projection)
	assert.Equal(t, a.Comparison, b.Comparison)
	assert.Equal(t, a.Series, b.Series)
	assert.Equal(t, a.Note, b.Note)
}

func TestBuildReport_InvalidProfile(t *testing.T) {
	service := newTestService()
	profile := referenceProfile()
	profile.Age = -5

	_, err := service.BuildReport(context.Background(), &profile)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestBuildReport_InfersTierWhenMissing(t *testing.T) {
	service := newTestService()
	profile := domain.FinancialProfile{
		Age:                 28,
		AnnualIncome:        1200000,
		HorizonYears:        20,
		MonthlyContribution: 40000,
		Goals:               []string{"Retirement", "Home Purchase"},
	}

	report, err := service.BuildReport(context.Background(), &profile)
	require.NoError(t, err)
	assert.Equal(t, domain.RiskHigh, report.Plan.Tier)
	assert.True(t, report.Plan.Inferred)
}

func TestDefaults(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name string
		hint string
		want domain.RiskTier
	}{
		{"empty hint", "", domain.RiskMedium},
		{"valid hint", "High", domain.RiskHigh},
		{"lowercase hint", "low", domain.RiskLow},
		{"uppercase hint", "HIGH", domain.RiskHigh},
		{"invalid hint falls back to Medium", "yolo", domain.RiskMedium},
		{"whitespace hint", "   ", domain.RiskMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaults := service.Defaults(tt.hint)
			assert.Equal(t, tt.want, defaults.Profile.RiskTier)
			require.NotNil(t, defaults.Plan)
			assert.Equal(t, tt.want, defaults.Plan.Tier)
		})
	}
}
