package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mortgage-agent/domain"
	"mortgage-agent/repository"
)

func newTestService() (*ComparisonService, *repository.MemoryCache) {
	cache := repository.NewMemoryCache()
	return NewComparisonService(cache, nil), cache
}

func validRequest() domain.ComparisonRequest {
	return domain.ComparisonRequest{
		Property: domain.PropertyContext{
			PurchasePrice: 500_000,
			MonthlyRent:   4000,
		},
		Scenarios: []domain.ScenarioInput{
			{Label: "80% LTV", Liens: []domain.Lien{{PercentOfValue: 80, TermYears: 30, AnnualInterestRate: 6.25}}},
			{Liens: []domain.Lien{
				{PercentOfValue: 50, TermYears: 30, AnnualInterestRate: 7.25},
				{PercentOfValue: 30, TermYears: 15, AnnualInterestRate: 5.0},
			}},
		},
	}
}

func TestCompare_OrderAndDefaultLabels(t *testing.T) {
	svc, _ := newTestService()
	result, err := svc.Compare(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Scenarios) != 2 {
		t.Fatalf("scenarios = %d, want 2", len(result.Scenarios))
	}
	if result.Scenarios[0].Label != "80% LTV" {
		t.Errorf("first label = %q, want the provided one", result.Scenarios[0].Label)
	}
	if result.Scenarios[1].Label != "Scenario 2" {
		t.Errorf("second label = %q, want default \"Scenario 2\"", result.Scenarios[1].Label)
	}
	if len(result.Scenarios[1].Components) != 2 {
		t.Errorf("stacked scenario components = %d, want 2", len(result.Scenarios[1].Components))
	}
}

func TestCompare_DefaultScenariosWhenNoneGiven(t *testing.T) {
	svc, _ := newTestService()
	req := domain.ComparisonRequest{
		Property: domain.PropertyContext{PurchasePrice: 300_000},
	}
	result, err := svc.Compare(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Scenarios) != len(DefaultScenarios) {
		t.Fatalf("scenarios = %d, want %d defaults", len(result.Scenarios), len(DefaultScenarios))
	}
	if got := result.Scenarios[1].Components[0].Lien.TermYears; got != 30 {
		t.Errorf("second default term = %d, want 30", got)
	}
}

func TestCompare_ScheduleLimitDoesNotAffectTotals(t *testing.T) {
	svc, _ := newTestService()

	full, err := svc.Compare(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	limited := validRequest()
	limited.ScheduleLimit = 12
	got, err := svc.Compare(context.Background(), limited)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range got.Scenarios {
		if len(got.Scenarios[i].Schedule) != 12 {
			t.Errorf("scenario %d schedule rows = %d, want 12", i, len(got.Scenarios[i].Schedule))
		}
		if got.Scenarios[i].TotalInterest != full.Scenarios[i].TotalInterest {
			t.Errorf("scenario %d total interest changed under schedule limit", i)
		}
		if got.Scenarios[i].MonthlyPayment != full.Scenarios[i].MonthlyPayment {
			t.Errorf("scenario %d monthly payment changed under schedule limit", i)
		}
	}
}

func TestCompare_AllOrNothingValidation(t *testing.T) {
	svc, cache := newTestService()

	req := validRequest()
	req.Scenarios = append(req.Scenarios, domain.ScenarioInput{
		Label: "overextended",
		Liens: []domain.Lien{
			{PercentOfValue: 70, TermYears: 30, AnnualInterestRate: 6},
			{PercentOfValue: 35, TermYears: 15, AnnualInterestRate: 5},
		},
	})
	req.OutlookYears = []int{-1}

	_, err := svc.Compare(context.Background(), req)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	// both failures surface in the one aggregated error
	if !strings.Contains(err.Error(), "overextended") {
		t.Errorf("aggregated error should name the invalid scenario: %v", err)
	}
	if !strings.Contains(err.Error(), "outlook year") {
		t.Errorf("aggregated error should include the outlook failure: %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("nothing should be cached for an invalid request")
	}
}

func TestCompare_RejectsExcessiveScheduleLimit(t *testing.T) {
	svc, _ := newTestService()
	req := validRequest()
	req.ScheduleLimit = MaxScheduleRows + 1
	if _, err := svc.Compare(context.Background(), req); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestCompare_DoesNotMutateCallerScenarios(t *testing.T) {
	svc, _ := newTestService()

	scenarios := []domain.ScenarioInput{
		{Liens: []domain.Lien{{PercentOfValue: 80, TermYears: 30, AnnualInterestRate: 6.25}}},
	}
	req := domain.ComparisonRequest{
		Property:  domain.PropertyContext{PurchasePrice: 500_000},
		Scenarios: scenarios,
	}

	result, err := svc.Compare(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Scenarios[0].Label != "Scenario 1" {
		t.Errorf("result label = %q, want default applied", result.Scenarios[0].Label)
	}
	if scenarios[0].Label != "" {
		t.Errorf("caller's scenario label = %q, default labeling leaked into the input slice", scenarios[0].Label)
	}
}

func TestCompare_CachesComputedResults(t *testing.T) {
	svc, cache := newTestService()

	first, err := svc.Compare(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("cache entries = %d, want 1", cache.Len())
	}

	second, err := svc.Compare(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.Len() != 1 {
		t.Errorf("repeat request should not add cache entries, got %d", cache.Len())
	}
	if len(second.Scenarios) != len(first.Scenarios) ||
		second.Scenarios[0].MonthlyPayment != first.Scenarios[0].MonthlyPayment {
		t.Errorf("cached result differs from the computed one")
	}
}
