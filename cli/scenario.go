package cli

import (
	"strconv"
	"strings"

	"mortgage-agent/domain"
)

// ParseScenarioSpec turns a "<years>:<rate>" spec (also "<years>@<rate>"
// or comma-separated) into a single-lien scenario over the whole loan.
func ParseScenarioSpec(text string) (domain.ScenarioInput, error) {
	normalized := strings.NewReplacer("@", ":", ",", ":").Replace(text)
	parts := strings.Split(normalized, ":")
	if len(parts) != 2 {
		return domain.ScenarioInput{}, domain.Invalidf("scenario must be '<years>:<rate>' (e.g. 30:6.5), got %q", text)
	}
	years, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return domain.ScenarioInput{}, domain.Invalidf("scenario term must be a whole number of years, got %q", parts[0])
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.ScenarioInput{}, domain.Invalidf("scenario rate must be numeric, got %q", parts[1])
	}
	return domain.ScenarioInput{
		Liens: []domain.Lien{{
			PercentOfValue:     100,
			TermYears:          years,
			AnnualInterestRate: rate,
		}},
	}, nil
}
