package service

import (
	"mortgage-agent/domain"
)

func validateLien(l domain.Lien) error {
	if l.PercentOfValue <= 0 || l.PercentOfValue > 100 {
		return domain.Invalidf("lien share must be between 0 and 100 percent, got %.4f", l.PercentOfValue)
	}
	if l.AnnualInterestRate < 0 {
		return domain.Invalidf("interest rate must not be negative, got %.4f", l.AnnualInterestRate)
	}
	if l.AnnualInterestRate > MaxInterestRate {
		return domain.Invalidf("interest rate exceeds the maximum of %.0f%%", MaxInterestRate)
	}
	if l.TermYears <= 0 {
		return domain.Invalidf("term must be positive, got %d years", l.TermYears)
	}
	if l.TermYears > MaxTermYears {
		return domain.Invalidf("term exceeds the maximum of %d years", MaxTermYears)
	}
	return nil
}

// ValidateScenario checks a financing structure without computing any
// schedule: lien count, per-lien fields, and the combined share of
// property value.
func ValidateScenario(input domain.ScenarioInput) error {
	if len(input.Liens) == 0 {
		return domain.Invalidf("scenario %q needs at least one lien", input.Label)
	}
	if len(input.Liens) > MaxLiensPerScenario {
		return domain.Invalidf("scenario %q has %d liens, maximum is %d", input.Label, len(input.Liens), MaxLiensPerScenario)
	}
	var share float64
	for _, lien := range input.Liens {
		if err := validateLien(lien); err != nil {
			return err
		}
		share += lien.PercentOfValue
	}
	if share > 100+LienShareEpsilon {
		return domain.Invalidf("scenario %q lien shares sum to %.4f%%, must not exceed 100%%", input.Label, share)
	}
	return nil
}

// AggregateLiens combines a scenario's liens into one blended schedule
// against the property. Schedules of different lengths are merged
// period by period up to the longest term; a retired lien contributes
// nothing to later periods.
func AggregateLiens(input domain.ScenarioInput, property domain.PropertyContext) (domain.Scenario, error) {
	if property.Value() <= 0 {
		return domain.Scenario{}, domain.Invalidf("property value must be positive, got %.2f", property.Value())
	}
	if property.Value() > MaxPropertyValue {
		return domain.Scenario{}, domain.Invalidf("property value exceeds the maximum of $%.0f", MaxPropertyValue)
	}
	if err := ValidateScenario(input); err != nil {
		return domain.Scenario{}, err
	}

	value := property.Value()
	components := make([]domain.LienSummary, 0, len(input.Liens))
	schedules := make([]domain.Schedule, 0, len(input.Liens))
	var loanAmount, totalInterest float64
	longest := 0

	for _, lien := range input.Liens {
		principal := lien.Principal(value)
		schedule, err := AmortizationSchedule(principal, lien.AnnualInterestRate, lien.TermYears)
		if err != nil {
			return domain.Scenario{}, err
		}
		interest := schedule.TotalInterest()
		components = append(components, domain.LienSummary{
			Lien:           lien,
			Principal:      roundCents(principal),
			MonthlyPayment: roundCents(schedule.PaymentAt(1)),
			TotalInterest:  roundCents(interest),
		})
		schedules = append(schedules, schedule)
		loanAmount += principal
		totalInterest += interest
		if len(schedule) > longest {
			longest = len(schedule)
		}
	}

	merged := mergeSchedules(schedules, longest)
	downPayment := property.PurchasePrice - loanAmount
	cashToClose := downPayment + property.ClosingCostAmount()

	return domain.Scenario{
		Label:          input.Label,
		Components:     components,
		LoanAmount:     roundCents(loanAmount),
		LoanToValue:    roundRate(loanAmount / value),
		MonthlyPayment: roundCents(merged.PaymentAt(1)),
		TotalInterest:  roundCents(totalInterest),
		DownPayment:    roundCents(downPayment),
		CashToClose:    roundCents(cashToClose),
		Schedule:       merged,
	}, nil
}

func mergeSchedules(schedules []domain.Schedule, longest int) domain.Schedule {
	merged := make(domain.Schedule, 0, longest)
	for n := 1; n <= longest; n++ {
		entry := domain.PaymentEntry{PaymentNumber: n}
		for _, s := range schedules {
			if n > len(s) {
				continue
			}
			row := s[n-1]
			entry.Payment += row.Payment
			entry.Principal += row.Principal
			entry.Interest += row.Interest
			entry.Balance += row.Balance
		}
		merged = append(merged, entry)
	}
	return merged
}
