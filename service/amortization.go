package service

import (
	"math"

	"github.com/shopspring/decimal"

	"mortgage-agent/domain"
)

// roundCents rounds a dollar amount to whole cents.
func roundCents(value float64) float64 {
	f, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return f
}

// roundRate rounds a ratio to four decimal places.
func roundRate(value float64) float64 {
	f, _ := decimal.NewFromFloat(value).Round(4).Float64()
	return f
}

func validateLoan(principal, annualRatePct float64, termYears int) error {
	if principal <= 0 {
		return domain.Invalidf("loan principal must be positive, got %.2f", principal)
	}
	if principal > MaxPropertyValue {
		return domain.Invalidf("loan principal exceeds the maximum of $%.0f", MaxPropertyValue)
	}
	if annualRatePct < 0 {
		return domain.Invalidf("interest rate must not be negative, got %.4f", annualRatePct)
	}
	if annualRatePct > MaxInterestRate {
		return domain.Invalidf("interest rate exceeds the maximum of %.0f%%", MaxInterestRate)
	}
	if termYears <= 0 {
		return domain.Invalidf("term must be positive, got %d years", termYears)
	}
	if termYears > MaxTermYears {
		return domain.Invalidf("term exceeds the maximum of %d years", MaxTermYears)
	}
	return nil
}

// MonthlyPayment computes the constant monthly payment for a fixed-rate
// loan using the standard annuity formula. A zero rate divides the
// principal evenly over the term.
func MonthlyPayment(principal, annualRatePct float64, termYears int) (float64, error) {
	if err := validateLoan(principal, annualRatePct, termYears); err != nil {
		return 0, err
	}
	return monthlyPayment(principal, annualRatePct, termYears), nil
}

func monthlyPayment(principal, annualRatePct float64, termYears int) float64 {
	periods := float64(termYears * 12)
	if annualRatePct == 0 {
		return principal / periods
	}
	rate := annualRatePct / 100 / 12
	return principal * rate / (1 - math.Pow(1+rate, -periods))
}

// AmortizationSchedule materializes the full payment-by-payment
// schedule. The final period's principal payment is adjusted to zero
// the balance exactly so rounding residue never survives the term.
func AmortizationSchedule(principal, annualRatePct float64, termYears int) (domain.Schedule, error) {
	if err := validateLoan(principal, annualRatePct, termYears); err != nil {
		return nil, err
	}

	periods := termYears * 12
	payment := monthlyPayment(principal, annualRatePct, termYears)
	rate := annualRatePct / 100 / 12
	balance := principal

	schedule := make(domain.Schedule, 0, periods)
	for n := 1; n <= periods; n++ {
		interest := balance * rate
		principalPart := payment - interest
		paid := payment

		if n == periods {
			// absorb floating drift in the last period
			principalPart = balance
			paid = principalPart + interest
			balance = 0
		} else {
			balance = math.Max(balance-principalPart, 0)
		}

		schedule = append(schedule, domain.PaymentEntry{
			PaymentNumber: n,
			Payment:       paid,
			Principal:     principalPart,
			Interest:      interest,
			Balance:       balance,
		})
	}
	return schedule, nil
}
