package domain

// Closing cost modes.
const (
	ClosingCostsFixed   = "fixed"
	ClosingCostsPercent = "percent"
)

// ExpenseInputs holds the recurring cost lines of operating the
// property. Annual lines are spread over twelve months; percentage
// lines scale with rent.
type ExpenseInputs struct {
	PropertyTaxesAnnual float64 `json:"property_taxes_annual"`
	InsuranceAnnual     float64 `json:"insurance_annual"`
	RepairsPercent      float64 `json:"repairs_percent"`
	CapexPercent        float64 `json:"capex_percent"`
	VacancyPercent      float64 `json:"vacancy_percent"`
	ManagementPercent   float64 `json:"management_percent"`
	UtilitiesMonthly    float64 `json:"utilities_monthly"`
	HOAMonthly          float64 `json:"hoa_monthly"`
	OtherMonthly        float64 `json:"other_monthly"`
}

// MonthlyOperatingCosts returns the total monthly expense for the given
// gross monthly rent.
func (e ExpenseInputs) MonthlyOperatingCosts(monthlyRent float64) float64 {
	fixed := e.PropertyTaxesAnnual/12 + e.InsuranceAnnual/12 +
		e.UtilitiesMonthly + e.HOAMonthly + e.OtherMonthly
	variable := monthlyRent * (e.RepairsPercent + e.CapexPercent +
		e.VacancyPercent + e.ManagementPercent) / 100
	return fixed + variable
}

// GrowthAssumptions are the annual compounding rates applied when
// projecting horizon outlooks.
type GrowthAssumptions struct {
	AppreciationPercent     float64 `json:"appreciation_percent"`
	RentGrowthPercent       float64 `json:"rent_growth_percent"`
	ExpenseInflationPercent float64 `json:"expense_inflation_percent"`
}

// PropertyContext carries the purchase and operating inputs shared by
// every scenario in a comparison.
type PropertyContext struct {
	PurchasePrice    float64           `json:"purchase_price"`
	PropertyValue    float64           `json:"property_value"`
	ClosingCostsMode string            `json:"closing_costs_mode"`
	ClosingCosts     float64           `json:"closing_costs"`
	MonthlyRent      float64           `json:"monthly_rent"`
	Expenses         ExpenseInputs     `json:"expenses"`
	Assumptions      GrowthAssumptions `json:"assumptions"`
}

// ClosingCostAmount resolves the closing cost line to dollars.
func (p PropertyContext) ClosingCostAmount() float64 {
	if p.ClosingCostsMode == ClosingCostsPercent {
		return p.PurchasePrice * p.ClosingCosts / 100
	}
	return p.ClosingCosts
}

// Value returns the property value, falling back to the purchase price
// when no separate appraisal value was given.
func (p PropertyContext) Value() float64 {
	if p.PropertyValue > 0 {
		return p.PropertyValue
	}
	return p.PurchasePrice
}
