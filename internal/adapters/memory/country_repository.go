package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/global_finance_path/internal/apperrors"
	"github.com/SscSPs/global_finance_path/internal/core/domain"
)

// FindCountryByCode retrieves a country by its exact code.
func (s *ContentStore) FindCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	country, ok := s.countries.get(code)
	if !ok {
		return nil, fmt.Errorf("country %q: %w", code, apperrors.ErrNotFound)
	}
	return &country, nil
}

// ListCountries returns every country in insertion order.
func (s *ContentStore) ListCountries(ctx context.Context) ([]domain.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.countries.filter(nil), nil
}

// SaveCountry stores the country under its code. An existing country with the same
// code is replaced in place.
func (s *ContentStore) SaveCountry(ctx context.Context, country domain.Country) (*domain.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.countries.put(country.Code, country)
	return &country, nil
}
