package narrative

// Note sources
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// Note is the advisor note shown with the projection. Ephemeral: regenerated
// per submission, never cached.
type Note struct {
	Text    string `json:"text"`
	Source  string `json:"source"`
	Warning string `json:"warning,omitempty"` // non-fatal, set when the external call was skipped or failed
}

// promptProfile is the JSON payload embedded into the user prompt. It carries
// every salient figure the advisor note should reference.
type promptProfile struct {
	Age                  int                `json:"age"`
	AnnualIncome         float64            `json:"annual_income"`
	HorizonYears         int                `json:"horizon_years"`
	MonthlyContribution  float64            `json:"monthly_contribution"`
	CurrentSavings       float64            `json:"current_savings"`
	Goals                []string           `json:"goals"`
	TopGoal              string             `json:"top_goal"`
	RiskTier             string             `json:"risk_tier"`
	AllocationPct        map[string]float64 `json:"allocation_pct"`
	ExpectedAnnualReturn float64            `json:"expected_annual_return"`
	InflationRate        float64            `json:"inflation_rate"`
	FDRate               float64            `json:"fd_rate"`
	NominalFutureValue   float64            `json:"nominal_future_value"`
	RealFutureValue      float64            `json:"real_future_value"`
	FDFutureValue        float64            `json:"fd_future_value"`
	FDRealFutureValue    float64            `json:"fd_real_future_value"`
}
