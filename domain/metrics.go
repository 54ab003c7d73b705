package domain

// HorizonOutlook is the projected financial position at a future year,
// after applying annual compounding growth to value, rent, and
// expenses.
type HorizonOutlook struct {
	Year            int     `json:"year"`
	PropertyValue   float64 `json:"property_value"`
	MonthlyRent     float64 `json:"monthly_rent"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	MonthlyPayment  float64 `json:"monthly_payment"`
	MonthlyCashflow float64 `json:"monthly_cashflow"`
	LoanPayoff      float64 `json:"loan_payoff"`
	Equity          float64 `json:"equity"`
	EquityBuilt     float64 `json:"equity_built"`
	NetCashflow     float64 `json:"net_cashflow"`
}

// InvestmentMetrics are the rental investment figures derived from a
// scenario and its property context. CashOnCashReturn and related
// ratios are nil when undefined (no cash invested, no debt service).
type InvestmentMetrics struct {
	MonthlyExpenses  float64          `json:"monthly_expenses"`
	MonthlyCashflow  float64          `json:"monthly_cashflow"`
	CashOnCashReturn *float64         `json:"cash_on_cash_return"`
	DebtServiceRatio *float64         `json:"debt_service_ratio"`
	AnnualizedIRR    *float64         `json:"annualized_irr"`
	Outlooks         []HorizonOutlook `json:"outlooks"`
}
