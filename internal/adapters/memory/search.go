package memory

import (
	"context"
	"strings"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
)

// SearchContent returns the country's instruments, schemes and regulations that
// contain query in any searchable field, ignoring case. Recommendations are not
// searched.
//
// Fields per collection:
//   - instruments: name, description, category, features
//   - schemes: name, key features
//   - regulations: regime, deduction names and descriptions
//
// The query is used as given, whitespace included. An empty query matches every
// record of the country.
func (s *ContentStore) SearchContent(ctx context.Context, countryCode string, query string) (*domain.SearchResult, error) {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return &domain.SearchResult{
		Instruments: s.instruments.filter(func(i domain.FinancialInstrument) bool {
			return i.CountryCode == countryCode && instrumentMatches(i, q)
		}),
		Schemes: s.schemes.filter(func(sc domain.SavingsScheme) bool {
			return sc.CountryCode == countryCode && schemeMatches(sc, q)
		}),
		Regulations: s.regulations.filter(func(r domain.TaxRegulation) bool {
			return r.CountryCode == countryCode && regulationMatches(r, q)
		}),
	}, nil
}

// q must already be lower case.
func instrumentMatches(i domain.FinancialInstrument, q string) bool {
	return containsLower(i.Name, q) ||
		containsLower(i.Description, q) ||
		containsLower(i.Category, q) ||
		anyContainsLower(i.Features, q)
}

func schemeMatches(sc domain.SavingsScheme, q string) bool {
	return containsLower(sc.Name, q) || anyContainsLower(sc.KeyFeatures, q)
}

func regulationMatches(r domain.TaxRegulation, q string) bool {
	if r.Regime != nil && containsLower(*r.Regime, q) {
		return true
	}
	for _, d := range r.Deductions {
		if containsLower(d.Name, q) || containsLower(d.Description, q) {
			return true
		}
	}
	return false
}

func containsLower(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

func anyContainsLower(values []string, q string) bool {
	for _, v := range values {
		if containsLower(v, q) {
			return true
		}
	}
	return false
}
