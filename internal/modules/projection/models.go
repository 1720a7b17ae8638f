package projection

// Result is the projected corpus for a profile under a given annual return
type Result struct {
	NominalFutureValue float64 `json:"nominal_future_value"`
	RealFutureValue    float64 `json:"real_future_value"`
	HorizonYears       int     `json:"horizon_years"`
	AnnualReturn       float64 `json:"annual_return"`
	InflationRate      float64 `json:"inflation_rate"`
}

// Point is one step of the yearly growth trajectory used for charting
type Point struct {
	Year    int     `json:"year"`
	Nominal float64 `json:"nominal"`
	Real    float64 `json:"real"`
}
