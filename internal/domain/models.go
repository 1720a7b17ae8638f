package domain

// RiskTier is the investor's risk preference
type RiskTier string

const (
	RiskLow    RiskTier = "Low"
	RiskMedium RiskTier = "Medium"
	RiskHigh   RiskTier = "High"
)

// RiskTiers lists the valid tiers in ascending risk order
var RiskTiers = []RiskTier{RiskLow, RiskMedium, RiskHigh}

// IsValid reports whether the tier is one of the known values
func (t RiskTier) IsValid() bool {
	switch t {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// AssetClass is a broad investment bucket used by allocation plans
type AssetClass string

const (
	AssetEquity AssetClass = "Equity"
	AssetDebt   AssetClass = "Debt"
	AssetGold   AssetClass = "Gold"
	AssetCash   AssetClass = "Cash"
)

// AssetClasses lists the asset classes in display order
var AssetClasses = []AssetClass{AssetEquity, AssetDebt, AssetGold, AssetCash}

// Economic policy constants. These materially affect projections but are
// research assumptions, not guarantees.
const (
	// DefaultInflationRate is the assumed annual inflation rate (6% p.a.)
	DefaultInflationRate = 0.06

	// DefaultFDRate is the fixed-deposit-proxy reference rate (6.5% p.a.)
	DefaultFDRate = 0.065
)

// FinancialProfile is the investor profile collected once per session.
// Immutable after submission, never persisted.
type FinancialProfile struct {
	Age                 int      `json:"age"`
	AnnualIncome        float64  `json:"annual_income"`
	HorizonYears        int      `json:"horizon_years"`
	MonthlyContribution float64  `json:"monthly_contribution"`
	CurrentSavings      float64  `json:"current_savings"`
	Goal                string   `json:"goal"`
	Goals               []string `json:"goals,omitempty"` // ordered, first is top priority
	RiskTier            RiskTier `json:"risk_tier,omitempty"`

	// Optional assumption overrides. Zero means "use the policy constant".
	InflationRate float64 `json:"inflation_rate,omitempty"`
	FDRate        float64 `json:"fd_rate,omitempty"`
}

// Validate checks all profile fields before any computation begins.
func (p *FinancialProfile) Validate() error {
	if p.Age <= 0 {
		return InvalidInputf("age must be positive, got %d", p.Age)
	}
	if p.AnnualIncome < 0 {
		return InvalidInputf("annual_income must be non-negative, got %.2f", p.AnnualIncome)
	}
	if p.HorizonYears < 0 {
		return InvalidInputf("horizon_years must be non-negative, got %d", p.HorizonYears)
	}
	if p.MonthlyContribution < 0 {
		return InvalidInputf("monthly_contribution must be non-negative, got %.2f", p.MonthlyContribution)
	}
	if p.CurrentSavings < 0 {
		return InvalidInputf("current_savings must be non-negative, got %.2f", p.CurrentSavings)
	}
	if p.RiskTier != "" && !p.RiskTier.IsValid() {
		return InvalidInputf("risk_tier must be one of Low, Medium, High, got %q", p.RiskTier)
	}
	if p.InflationRate < 0 {
		return InvalidInputf("inflation_rate must be non-negative, got %.4f", p.InflationRate)
	}
	if p.FDRate < 0 {
		return InvalidInputf("fd_rate must be non-negative, got %.4f", p.FDRate)
	}
	return nil
}

// Inflation returns the effective inflation assumption for this profile.
func (p *FinancialProfile) Inflation() float64 {
	if p.InflationRate > 0 {
		return p.InflationRate
	}
	return DefaultInflationRate
}

// FixedDepositRate returns the effective FD reference rate for this profile.
func (p *FinancialProfile) FixedDepositRate() float64 {
	if p.FDRate > 0 {
		return p.FDRate
	}
	return DefaultFDRate
}

// TopGoal returns the highest-priority goal label. The explicit Goal field
// wins; otherwise the first entry of the ordered Goals list.
func (p *FinancialProfile) TopGoal() string {
	if p.Goal != "" {
		return p.Goal
	}
	if len(p.Goals) > 0 {
		return p.Goals[0]
	}
	return ""
}

// AllGoals returns the ordered goal list, folding the single Goal field in
// when the list is empty.
func (p *FinancialProfile) AllGoals() []string {
	if len(p.Goals) > 0 {
		return p.Goals
	}
	if p.Goal != "" {
		return []string{p.Goal}
	}
	return nil
}
