package domain

// ScenarioInput is one financing structure to evaluate: a label and one
// or more liens stacked against the property.
type ScenarioInput struct {
	Label string `json:"label,omitempty"`
	Liens []Lien `json:"liens"`
}

// LienSummary describes one component of an aggregated scenario.
type LienSummary struct {
	Lien           Lien    `json:"lien"`
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

// Scenario is a fully computed financing structure: the merged schedule
// across all liens plus the money needed to close. The merged schedule
// runs to the longest lien's term; retired liens contribute zero to
// later periods, and the balance column is the sum of the remaining
// component balances.
type Scenario struct {
	Label          string        `json:"label"`
	Components     []LienSummary `json:"components"`
	LoanAmount     float64       `json:"loan_amount"`
	LoanToValue    float64       `json:"loan_to_value"`
	MonthlyPayment float64       `json:"monthly_payment"`
	TotalInterest  float64       `json:"total_interest"`
	DownPayment    float64       `json:"down_payment"`
	CashToClose    float64       `json:"cash_to_close"`
	Schedule       Schedule      `json:"schedule"`
}

// PaymentAt returns the combined payment due in the given month, 0 once
// every lien has retired.
func (s *Scenario) PaymentAt(month int) float64 {
	return s.Schedule.PaymentAt(month)
}

// BalanceAt returns the combined remaining balance after the given
// number of months.
func (s *Scenario) BalanceAt(month int) float64 {
	return s.Schedule.BalanceAt(month)
}
