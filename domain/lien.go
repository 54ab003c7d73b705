package domain

// Lien is one loan component secured against the property, carrying its
// own share of the property value, term, and rate.
type Lien struct {
	PercentOfValue     float64 `json:"percent_of_value"`
	TermYears          int     `json:"term_years"`
	AnnualInterestRate float64 `json:"annual_interest_rate"`
}

// MonthlyRate returns the periodic interest rate as a fraction.
func (l Lien) MonthlyRate() float64 {
	return l.AnnualInterestRate / 100 / 12
}

// TotalPayments returns the number of monthly periods over the term.
func (l Lien) TotalPayments() int {
	return l.TermYears * 12
}

// Principal returns the loan amount this lien contributes against the
// given property value.
func (l Lien) Principal(propertyValue float64) float64 {
	return propertyValue * l.PercentOfValue / 100
}
