package repositories

import (
	"context"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
)

// CountryReader defines read operations for country data
type CountryReader interface {
	// FindCountryByCode retrieves a country by its code. Returns apperrors.ErrNotFound if unknown.
	FindCountryByCode(ctx context.Context, code string) (*domain.Country, error)

	// ListCountries retrieves all countries in insertion order.
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

// CountryWriter defines write operations for country data
type CountryWriter interface {
	// SaveCountry stores a country keyed by its code, replacing any existing entry.
	SaveCountry(ctx context.Context, country domain.Country) (*domain.Country, error)
}

// CountryRepositoryFacade combines all country-related repository interfaces
type CountryRepositoryFacade interface {
	CountryReader
	CountryWriter
}
