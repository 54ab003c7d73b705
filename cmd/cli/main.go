package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"mortgage-agent/cli"
	"mortgage-agent/domain"
	"mortgage-agent/repository"
	"mortgage-agent/service"
)

type scenarioFlags []domain.ScenarioInput

func (s *scenarioFlags) String() string { return fmt.Sprintf("%d scenarios", len(*s)) }

func (s *scenarioFlags) Set(value string) error {
	input, err := cli.ParseScenarioSpec(value)
	if err != nil {
		return err
	}
	*s = append(*s, input)
	return nil
}

func main() {
	var scenarios scenarioFlags
	var (
		loan          = flag.Float64("loan", 0, "Loan amount (principal) in dollars")
		rent          = flag.Float64("rent", 0, "Expected gross monthly rent (optional)")
		costs         = flag.Float64("costs", 0, "Recurring monthly operating costs (optional)")
		showSchedules = flag.Bool("show-schedules", false, "Display the amortization table for each scenario")
		showOutlooks  = flag.Bool("show-outlooks", false, "Display horizon projections for each scenario")
		limit         = flag.Int("limit", 0, "Limit amortization tables to the first N payments")
		saveFile      = flag.String("save", "", "Write the comparison inputs to FILE and exit")
		loadFile      = flag.String("load", "", "Read comparison inputs from a previously saved FILE")
	)
	flag.Var(&scenarios, "scenario", "Scenario as '<term>:<rate>' (e.g. 30:6.5). Can be repeated.")
	flag.Parse()

	if err := run(*loan, *rent, *costs, scenarios, *showSchedules, *showOutlooks, *limit, *saveFile, *loadFile); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, domain.ErrInvalidInput) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func run(loan, rent, costs float64, scenarios []domain.ScenarioInput,
	showSchedules, showOutlooks bool, limit int, saveFile, loadFile string) error {

	var req domain.ComparisonRequest
	if loadFile != "" {
		raw, err := os.ReadFile(loadFile)
		if err != nil {
			return err
		}
		req, err = domain.DecodeSavedForm(raw)
		if err != nil {
			return err
		}
	} else {
		if loan <= 0 {
			return domain.Invalidf("--loan must be positive (or use --load)")
		}
		req = domain.ComparisonRequest{
			Property: domain.PropertyContext{
				PurchasePrice: loan,
				PropertyValue: loan,
				MonthlyRent:   rent,
				Expenses:      domain.ExpenseInputs{OtherMonthly: costs},
			},
			Scenarios: scenarios,
		}
	}

	if saveFile != "" {
		raw, err := domain.EncodeSavedForm(req)
		if err != nil {
			return err
		}
		if err := os.WriteFile(saveFile, raw, 0o644); err != nil {
			return err
		}
		fmt.Printf("saved comparison inputs to %s\n", saveFile)
		return nil
	}

	svc := service.NewComparisonService(repository.NewMemoryCache(), nil)
	result, err := svc.Compare(context.Background(), req)
	if err != nil {
		return err
	}

	cli.RenderSummary(os.Stdout, result)
	for _, sc := range result.Scenarios {
		if showOutlooks {
			cli.RenderOutlooks(os.Stdout, sc)
		}
		if showSchedules {
			cli.RenderSchedule(os.Stdout, sc, limit)
		}
	}
	return nil
}
