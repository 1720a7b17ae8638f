package advisor

import (
	"github.com/aristath/investment-advisor/internal/domain"
	"github.com/aristath/investment-advisor/internal/modules/allocation"
	"github.com/aristath/investment-advisor/internal/modules/comparison"
	"github.com/aristath/investment-advisor/internal/modules/narrative"
	"github.com/aristath/investment-advisor/internal/modules/projection"
)

// Report is the full advisory result for one submission. Request-scoped,
// never persisted.
type Report struct {
	ID         string                  `json:"id"`
	Profile    domain.FinancialProfile `json:"profile"`
	Plan       *allocation.Plan        `json:"allocation"`
	Projection *projection.Result      `json:"projection"`
	Comparison *comparison.Result      `json:"comparison"`
	Series     []projection.Point      `json:"series"`
	Summary    Summary                 `json:"summary"`
	Note       narrative.Note          `json:"note"`
}

// Summary condenses the trajectory for the dashboard KPI cards
type Summary struct {
	TotalInvested       float64 `json:"total_invested"`
	WealthGain          float64 `json:"wealth_gain"`
	MeanAnnualGrowthPct float64 `json:"mean_annual_growth_pct"`
}

// Defaults pre-fills the dashboard form, optionally seeded by the risk
// query-parameter hint.
type Defaults struct {
	Profile domain.FinancialProfile `json:"profile"`
	Plan    *allocation.Plan        `json:"allocation"`
}
