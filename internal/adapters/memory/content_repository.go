package memory

import (
	"context"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
)

// ListInstrumentsByCountry returns the country's instruments in insertion order.
func (s *ContentStore) ListInstrumentsByCountry(ctx context.Context, countryCode string) ([]domain.FinancialInstrument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.instruments.filter(func(i domain.FinancialInstrument) bool {
		return i.CountryCode == countryCode
	}), nil
}

// SaveInstrument stores the instrument, generating an id when it has none.
func (s *ContentStore) SaveInstrument(ctx context.Context, instrument domain.FinancialInstrument) (*domain.FinancialInstrument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.putInstrument(instrument)
	return &saved, nil
}

// ListSchemesByCountry returns the country's savings schemes in insertion order.
func (s *ContentStore) ListSchemesByCountry(ctx context.Context, countryCode string) ([]domain.SavingsScheme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.schemes.filter(func(sc domain.SavingsScheme) bool {
		return sc.CountryCode == countryCode
	}), nil
}

// SaveScheme stores the scheme, generating an id when it has none.
func (s *ContentStore) SaveScheme(ctx context.Context, scheme domain.SavingsScheme) (*domain.SavingsScheme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.putScheme(scheme)
	return &saved, nil
}

// ListRegulationsByCountry returns the country's tax regulations in insertion order.
// The first entry is the default regime.
func (s *ContentStore) ListRegulationsByCountry(ctx context.Context, countryCode string) ([]domain.TaxRegulation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.regulations.filter(func(r domain.TaxRegulation) bool {
		return r.CountryCode == countryCode
	}), nil
}

// SaveRegulation stores the regulation, generating an id when it has none.
func (s *ContentStore) SaveRegulation(ctx context.Context, regulation domain.TaxRegulation) (*domain.TaxRegulation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.putRegulation(regulation)
	return &saved, nil
}

// ListRecommendationsByCountry returns the country's recommendations in insertion order.
// Not every country has any.
func (s *ContentStore) ListRecommendationsByCountry(ctx context.Context, countryCode string) ([]domain.Recommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.recommendations.filter(func(r domain.Recommendation) bool {
		return r.CountryCode == countryCode
	}), nil
}

// SaveRecommendation stores the recommendation, generating an id when it has none.
func (s *ContentStore) SaveRecommendation(ctx context.Context, recommendation domain.Recommendation) (*domain.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.putRecommendation(recommendation)
	return &saved, nil
}
