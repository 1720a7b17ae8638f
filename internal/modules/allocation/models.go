package allocation

import "github.com/aristath/investment-advisor/internal/domain"

// Plan is the fixed percentage split across asset classes for a risk tier,
// together with the blended expected annual return it implies.
type Plan struct {
	Tier                 domain.RiskTier               `json:"tier"`
	Weights              map[domain.AssetClass]float64 `json:"weights"`                // percentages, sum to 100
	ExpectedAnnualReturn float64                       `json:"expected_annual_return"` // fraction, e.g. 0.093
	Inferred             bool                          `json:"inferred"`
	InferenceScore       int                           `json:"inference_score,omitempty"`
}

// Allocation policy constants. Weights are percentages per tier and must sum
// to exactly 100; returns are assumed per-asset annual returns. These are
// research assumptions, chosen once and documented here.
var tierWeights = map[domain.RiskTier]map[domain.AssetClass]float64{
	domain.RiskLow: {
		domain.AssetEquity: 20,
		domain.AssetDebt:   50,
		domain.AssetGold:   10,
		domain.AssetCash:   20,
	},
	domain.RiskMedium: {
		domain.AssetEquity: 50,
		domain.AssetDebt:   30,
		domain.AssetGold:   10,
		domain.AssetCash:   10,
	},
	domain.RiskHigh: {
		domain.AssetEquity: 70,
		domain.AssetDebt:   15,
		domain.AssetGold:   10,
		domain.AssetCash:   5,
	},
}

// Assumed annual return per asset class, as fractions.
var assetReturns = map[domain.AssetClass]float64{
	domain.AssetEquity: 0.12,
	domain.AssetDebt:   0.07,
	domain.AssetGold:   0.08,
	domain.AssetCash:   0.04,
}

// Risk inference thresholds, from the rule-based scoring model:
// young investors, long horizons, high savings rates and growth-oriented
// goals each add to the score.
const (
	inferenceLongHorizonYears = 15
	inferenceSavingsRateFloor = 0.30
	inferenceLowMaxScore      = 2
	inferenceMediumMaxScore   = 4
)

// growthGoals are the goal labels treated as growth-oriented by inference.
var growthGoals = map[string]bool{
	"Wealth Creation": true,
	"Retirement":      true,
}
