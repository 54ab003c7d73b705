package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"mortgage-agent/domain"
	"mortgage-agent/repository"
)

// DefaultScenarios are evaluated when a request names none: a single
// 100% lien over three common term/rate combinations.
var DefaultScenarios = []domain.ScenarioInput{
	{Liens: []domain.Lien{{PercentOfValue: 100, TermYears: 15, AnnualInterestRate: 5.5}}},
	{Liens: []domain.Lien{{PercentOfValue: 100, TermYears: 30, AnnualInterestRate: 6.25}}},
	{Liens: []domain.Lien{{PercentOfValue: 100, TermYears: 50, AnnualInterestRate: 7.0}}},
}

// ComparisonService runs scenario definitions through the aggregation
// and metrics engines and assembles the comparison. Computed results
// are cached by request hash; cache failures are logged, never fatal.
type ComparisonService struct {
	cache  repository.CacheRepository
	logger *zap.Logger
}

func NewComparisonService(cache repository.CacheRepository, logger *zap.Logger) *ComparisonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComparisonService{cache: cache, logger: logger}
}

// Compare validates the whole request up front and computes every
// scenario, in input order. Any invalid scenario aborts the run with a
// single aggregated error; no partial result is returned.
func (s *ComparisonService) Compare(ctx context.Context, req domain.ComparisonRequest) (domain.ComparisonResult, error) {
	req = withDefaults(req)

	if err := s.validateRequest(req); err != nil {
		return domain.ComparisonResult{}, err
	}

	key, cacheable := requestKey(req)
	if cacheable {
		if cached, ok := s.lookup(ctx, key); ok {
			return cached, nil
		}
	}

	result := domain.ComparisonResult{
		Property:  req.Property,
		Scenarios: make([]domain.ScenarioResult, 0, len(req.Scenarios)),
	}
	for _, input := range req.Scenarios {
		scenario, err := AggregateLiens(input, req.Property)
		if err != nil {
			return domain.ComparisonResult{}, err
		}
		metrics, err := ProjectMetrics(&scenario, req.Property, req.OutlookYears)
		if err != nil {
			return domain.ComparisonResult{}, err
		}
		scenario.Schedule = scenario.Schedule.Limit(req.ScheduleLimit)
		result.Scenarios = append(result.Scenarios, domain.ScenarioResult{
			Scenario: scenario,
			Metrics:  metrics,
		})
	}

	if cacheable {
		s.store(ctx, key, result)
	}
	return result, nil
}

func withDefaults(req domain.ComparisonRequest) domain.ComparisonRequest {
	// copy before labeling so the caller's slice is never written to
	if len(req.Scenarios) == 0 {
		req.Scenarios = append([]domain.ScenarioInput(nil), DefaultScenarios...)
	} else {
		req.Scenarios = append([]domain.ScenarioInput(nil), req.Scenarios...)
	}
	for i := range req.Scenarios {
		if req.Scenarios[i].Label == "" {
			req.Scenarios[i].Label = fmt.Sprintf("Scenario %d", i+1)
		}
	}
	return req
}

// validateRequest rejects the request before any schedule is computed,
// joining every scenario's validation failure into one error.
func (s *ComparisonService) validateRequest(req domain.ComparisonRequest) error {
	var errs []error

	if req.Property.Value() <= 0 {
		errs = append(errs, domain.Invalidf("property value must be positive, got %.2f", req.Property.Value()))
	}
	if req.Property.Value() > MaxPropertyValue {
		errs = append(errs, domain.Invalidf("property value exceeds the maximum of $%.0f", MaxPropertyValue))
	}
	if req.Property.MonthlyRent < 0 {
		errs = append(errs, domain.Invalidf("monthly rent must not be negative, got %.2f", req.Property.MonthlyRent))
	}
	if req.ScheduleLimit < 0 {
		errs = append(errs, domain.Invalidf("schedule limit must not be negative, got %d", req.ScheduleLimit))
	}
	if req.ScheduleLimit > MaxScheduleRows {
		errs = append(errs, domain.Invalidf("schedule limit exceeds the maximum of %d rows", MaxScheduleRows))
	}
	if len(req.Scenarios) > MaxScenariosPerRequest {
		errs = append(errs, domain.Invalidf("request has %d scenarios, maximum is %d", len(req.Scenarios), MaxScenariosPerRequest))
	}
	if _, err := normalizeOutlookYears(req.OutlookYears); err != nil {
		errs = append(errs, err)
	}
	for _, input := range req.Scenarios {
		if err := ValidateScenario(input); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// requestKey hashes the canonical JSON form of the request.
func requestKey(req domain.ComparisonRequest) (string, bool) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("compare:%016x", xxhash.Sum64(raw)), true
}

func (s *ComparisonService) lookup(ctx context.Context, key string) (domain.ComparisonResult, bool) {
	if s.cache == nil {
		return domain.ComparisonResult{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.ComparisonResult{}, false
	}
	var result domain.ComparisonResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return domain.ComparisonResult{}, false
	}
	s.logger.Debug("comparison served from cache", zap.String("key", key))
	return result, true
}

func (s *ComparisonService) store(ctx context.Context, key string, result domain.ComparisonResult) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		s.logger.Warn("failed to cache comparison", zap.String("key", key), zap.Error(err))
	}
}
