package domain

// ComparisonRequest is the self-contained input of one comparison run:
// the property, the financing structures to evaluate, and presentation
// options.
type ComparisonRequest struct {
	Property      PropertyContext `json:"property"`
	Scenarios     []ScenarioInput `json:"scenarios"`
	OutlookYears  []int           `json:"outlook_years,omitempty"`
	ScheduleLimit int             `json:"schedule_limit,omitempty"`
}

// ScenarioResult is one scenario's computed summary plus its metrics
// and (possibly row-limited) schedule.
type ScenarioResult struct {
	Scenario
	Metrics InvestmentMetrics `json:"metrics"`
}

// ComparisonResult holds per-scenario results in input order.
type ComparisonResult struct {
	Property  PropertyContext  `json:"property"`
	Scenarios []ScenarioResult `json:"scenarios"`
}
