package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() FinancialProfile {
	return FinancialProfile{
		Age:                 30,
		AnnualIncome:        100000,
		HorizonYears:        10,
		MonthlyContribution: 5000,
		CurrentSavings:      50000,
		Goal:                "Retirement",
		RiskTier:            RiskMedium,
	}
}

func TestFinancialProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FinancialProfile)
		wantErr bool
	}{
		{
			name:    "valid profile",
			mutate:  func(p *FinancialProfile) {},
			wantErr: false,
		},
		{
			name:    "negative age",
			mutate:  func(p *FinancialProfile) { p.Age = -5 },
			wantErr: true,
		},
		{
			name:    "zero age",
			mutate:  func(p *FinancialProfile) { p.Age = 0 },
			wantErr: true,
		},
		{
			name:    "negative income",
			mutate:  func(p *FinancialProfile) { p.AnnualIncome = -1 },
			wantErr: true,
		},
		{
			name:    "negative horizon",
			mutate:  func(p *FinancialProfile) { p.HorizonYears = -1 },
			wantErr: true,
		},
		{
			name:    "zero horizon is allowed",
			mutate:  func(p *FinancialProfile) { p.HorizonYears = 0 },
			wantErr: false,
		},
		{
			name:    "negative contribution",
			mutate:  func(p *FinancialProfile) { p.MonthlyContribution = -100 },
			wantErr: true,
		},
		{
			name:    "negative savings",
			mutate:  func(p *FinancialProfile) { p.CurrentSavings = -100 },
			wantErr: true,
		},
		{
			name:    "unknown risk tier",
			mutate:  func(p *FinancialProfile) { p.RiskTier = "Aggressive" },
			wantErr: true,
		},
		{
			name:    "empty risk tier triggers inference, not an error",
			mutate:  func(p *FinancialProfile) { p.RiskTier = "" },
			wantErr: false,
		},
		{
			name:    "negative inflation override",
			mutate:  func(p *FinancialProfile) { p.InflationRate = -0.01 },
			wantErr: true,
		},
		{
			name:    "negative fd rate override",
			mutate:  func(p *FinancialProfile) { p.FDRate = -0.01 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFinancialProfile_AssumptionDefaults(t *testing.T) {
	p := validProfile()
	assert.Equal(t, DefaultInflationRate, p.Inflation())
	assert.Equal(t, DefaultFDRate, p.FixedDepositRate())

	p.InflationRate = 0.05
	p.FDRate = 0.07
	assert.Equal(t, 0.05, p.Inflation())
	assert.Equal(t, 0.07, p.FixedDepositRate())
}

func TestFinancialProfile_Goals(t *testing.T) {
	p := FinancialProfile{Goal: "Education"}
	assert.Equal(t, "Education", p.TopGoal())
	assert.Equal(t, []string{"Education"}, p.AllGoals())

	p = FinancialProfile{Goals: []string{"Retirement", "Home Purchase"}}
	assert.Equal(t, "Retirement", p.TopGoal())
	assert.Equal(t, []string{"Retirement", "Home Purchase"}, p.AllGoals())

	p = FinancialProfile{}
	assert.Equal(t, "", p.TopGoal())
	assert.Nil(t, p.AllGoals())
}

func TestRiskTier_IsValid(t *testing.T) {
	for _, tier := range RiskTiers {
		assert.True(t, tier.IsValid(), "tier %s should be valid", tier)
	}
	assert.False(t, RiskTier("").IsValid())
	assert.False(t, RiskTier("medium").IsValid(), "tiers are case-sensitive")
}
