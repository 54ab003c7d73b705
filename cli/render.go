package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"mortgage-agent/domain"
)

// FormatCurrency renders a dollar amount with cent precision and
// thousands separators, e.g. "$ 2,771.57".
func FormatCurrency(value float64) string {
	d := decimal.NewFromFloat(value).Round(2)
	negative := d.IsNegative()
	s := d.Abs().StringFixed(2)

	whole, cents, _ := strings.Cut(s, ".")
	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("$ %s%s.%s", sign, grouped.String(), cents)
}

// RenderSummary prints the per-scenario comparison table.
func RenderSummary(w io.Writer, result domain.ComparisonResult) {
	fmt.Fprintln(w, "Mortgage Comparison Summary")
	fmt.Fprintln(w, strings.Repeat("=", 96))
	fmt.Fprintf(w, "%-20s%12s%12s%18s%18s%16s\n",
		"Scenario", "Term (yrs)", "Rate", "Monthly Payment", "Total Interest", "Cashflow/mo")
	fmt.Fprintln(w, strings.Repeat("-", 96))
	for _, sc := range result.Scenarios {
		fmt.Fprintf(w, "%-20s%12s%12s%18s%18s%16s\n",
			sc.Label,
			describeTerms(sc.Components),
			describeRates(sc.Components),
			FormatCurrency(sc.MonthlyPayment),
			FormatCurrency(sc.TotalInterest),
			FormatCurrency(sc.Metrics.MonthlyCashflow),
		)
	}
	fmt.Fprintln(w)
}

// RenderSchedule prints one scenario's amortization table, truncated to
// limit rows when limit > 0.
func RenderSchedule(w io.Writer, sc domain.ScenarioResult, limit int) {
	fmt.Fprintf(w, "Amortization Schedule - %s\n", sc.Label)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintf(w, "%6s%16s%16s%16s%16s\n", "#", "Payment", "Principal", "Interest", "Balance")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, p := range sc.Schedule.Limit(limit) {
		fmt.Fprintf(w, "%6d%16s%16s%16s%16s\n",
			p.PaymentNumber,
			FormatCurrency(p.Payment),
			FormatCurrency(p.Principal),
			FormatCurrency(p.Interest),
			FormatCurrency(p.Balance),
		)
	}
	fmt.Fprintln(w)
}

// RenderOutlooks prints the horizon projections of one scenario.
func RenderOutlooks(w io.Writer, sc domain.ScenarioResult) {
	if len(sc.Metrics.Outlooks) == 0 {
		return
	}
	fmt.Fprintf(w, "Horizon Outlook - %s\n", sc.Label)
	fmt.Fprintln(w, strings.Repeat("=", 96))
	fmt.Fprintf(w, "%6s%16s%16s%16s%16s%16s\n",
		"Year", "Value", "Cashflow/mo", "Payoff", "Equity", "Net Cashflow")
	fmt.Fprintln(w, strings.Repeat("-", 96))
	for _, o := range sc.Metrics.Outlooks {
		fmt.Fprintf(w, "%6d%16s%16s%16s%16s%16s\n",
			o.Year,
			FormatCurrency(o.PropertyValue),
			FormatCurrency(o.MonthlyCashflow),
			FormatCurrency(o.LoanPayoff),
			FormatCurrency(o.Equity),
			FormatCurrency(o.NetCashflow),
		)
	}
	fmt.Fprintln(w)
}

func describeTerms(components []domain.LienSummary) string {
	terms := make([]string, 0, len(components))
	for _, c := range components {
		terms = append(terms, fmt.Sprintf("%d", c.Lien.TermYears))
	}
	return strings.Join(terms, "+")
}

func describeRates(components []domain.LienSummary) string {
	rates := make([]string, 0, len(components))
	for _, c := range components {
		rates = append(rates, fmt.Sprintf("%.2f%%", c.Lien.AnnualInterestRate))
	}
	return strings.Join(rates, "+")
}
