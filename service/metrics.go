package service

import (
	"math"
	"sort"

	"mortgage-agent/domain"
)

// ProjectMetrics derives the rental investment figures for a computed
// scenario: first-year cashflow, cash-on-cash return, debt service
// coverage, annualized IRR over the longest requested horizon, and one
// outlook per requested year.
func ProjectMetrics(scenario *domain.Scenario, property domain.PropertyContext, outlookYears []int) (domain.InvestmentMetrics, error) {
	if property.Value() <= 0 {
		return domain.InvestmentMetrics{}, domain.Invalidf("property value must be positive, got %.2f", property.Value())
	}
	years, err := normalizeOutlookYears(outlookYears)
	if err != nil {
		return domain.InvestmentMetrics{}, err
	}

	rent := property.MonthlyRent
	expenses := property.Expenses.MonthlyOperatingCosts(rent)
	payment := scenario.PaymentAt(1)
	cashflow := rent - payment - expenses

	metrics := domain.InvestmentMetrics{
		MonthlyExpenses: roundCents(expenses),
		MonthlyCashflow: roundCents(cashflow),
	}

	if scenario.CashToClose > 0 {
		coc := roundRate(cashflow * 12 / scenario.CashToClose)
		metrics.CashOnCashReturn = &coc
	}
	if debtService := payment * 12; debtService > 0 {
		dscr := roundRate((rent - expenses) * 12 / debtService)
		metrics.DebtServiceRatio = &dscr
	}

	for _, year := range years {
		metrics.Outlooks = append(metrics.Outlooks, projectOutlook(scenario, property, year))
	}

	horizon := years[len(years)-1]
	if irr, ok := annualizedIRR(scenario, property, horizon); ok {
		v := roundRate(irr)
		metrics.AnnualizedIRR = &v
	}

	return metrics, nil
}

func normalizeOutlookYears(years []int) ([]int, error) {
	if len(years) == 0 {
		return append([]int(nil), DefaultOutlookYears...), nil
	}
	seen := make(map[int]bool, len(years))
	out := make([]int, 0, len(years))
	for _, y := range years {
		if y <= 0 {
			return nil, domain.Invalidf("outlook year must be positive, got %d", y)
		}
		if y > MaxOutlookYears {
			return nil, domain.Invalidf("outlook year exceeds the maximum of %d", MaxOutlookYears)
		}
		if seen[y] {
			continue
		}
		seen[y] = true
		out = append(out, y)
	}
	sort.Ints(out)
	return out, nil
}

func grow(base, annualRatePct float64, years int) float64 {
	return base * math.Pow(1+annualRatePct/100, float64(years))
}

func projectOutlook(scenario *domain.Scenario, property domain.PropertyContext, year int) domain.HorizonOutlook {
	month := year * 12
	value := grow(property.Value(), property.Assumptions.AppreciationPercent, year)
	rent := grow(property.MonthlyRent, property.Assumptions.RentGrowthPercent, year)
	expenses := grow(
		property.Expenses.MonthlyOperatingCosts(property.MonthlyRent),
		property.Assumptions.ExpenseInflationPercent, year)
	payment := scenario.PaymentAt(month)
	payoff := scenario.BalanceAt(month)

	return domain.HorizonOutlook{
		Year:            year,
		PropertyValue:   roundCents(value),
		MonthlyRent:     roundCents(rent),
		MonthlyExpenses: roundCents(expenses),
		MonthlyPayment:  roundCents(payment),
		MonthlyCashflow: roundCents(rent - payment - expenses),
		LoanPayoff:      roundCents(payoff),
		Equity:          roundCents(value - payoff),
		EquityBuilt:     roundCents(scenario.Schedule.PrincipalPaidThrough(month)),
		NetCashflow:     roundCents(cumulativeCashflow(scenario, property, year)),
	}
}

// cumulativeCashflow totals the net monthly cashflow through the
// horizon, growing rent and expenses once per elapsed year.
func cumulativeCashflow(scenario *domain.Scenario, property domain.PropertyContext, years int) float64 {
	baseExpenses := property.Expenses.MonthlyOperatingCosts(property.MonthlyRent)
	var total float64
	for y := 0; y < years; y++ {
		rent := grow(property.MonthlyRent, property.Assumptions.RentGrowthPercent, y)
		expenses := grow(baseExpenses, property.Assumptions.ExpenseInflationPercent, y)
		for m := y*12 + 1; m <= (y+1)*12; m++ {
			total += rent - expenses - scenario.PaymentAt(m)
		}
	}
	return total
}

// annualizedIRR runs Newton's method over the monthly cashflows of the
// horizon, treating cash to close as the initial outlay and a sale at
// the appreciated value net of payoff as the terminal flow. Reports ok
// = false when there is no initial outlay or the iteration fails to
// converge.
func annualizedIRR(scenario *domain.Scenario, property domain.PropertyContext, years int) (float64, bool) {
	if scenario.CashToClose <= 0 {
		return 0, false
	}

	months := years * 12
	baseExpenses := property.Expenses.MonthlyOperatingCosts(property.MonthlyRent)
	flows := make([]float64, 0, months+1)
	flows = append(flows, -scenario.CashToClose)
	for m := 1; m <= months; m++ {
		y := (m - 1) / 12
		rent := grow(property.MonthlyRent, property.Assumptions.RentGrowthPercent, y)
		expenses := grow(baseExpenses, property.Assumptions.ExpenseInflationPercent, y)
		flows = append(flows, rent-expenses-scenario.PaymentAt(m))
	}
	saleValue := grow(property.Value(), property.Assumptions.AppreciationPercent, years)
	flows[len(flows)-1] += saleValue - scenario.BalanceAt(months)

	guess := 0.08 / 12
	for i := 0; i < 100; i++ {
		var npv, derivative float64
		for period, cash := range flows {
			discount := math.Pow(1+guess, float64(period))
			if discount == 0 {
				continue
			}
			npv += cash / discount
			derivative -= float64(period) * cash / (discount * (1 + guess))
		}
		if math.Abs(npv) < 1e-6 {
			return math.Pow(1+guess, 12) - 1, true
		}
		if derivative == 0 {
			return 0, false
		}
		guess -= npv / derivative
	}
	return 0, false
}
