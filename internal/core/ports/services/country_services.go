package services

import (
	"context"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
	"github.com/SscSPs/global_finance_path/internal/dto"
)

// CountryReaderSvc defines read operations for country data
type CountryReaderSvc interface {
	// GetCountryByCode retrieves a country by its two-letter code.
	// It returns an error wrapping apperrors.ErrNotFound for unknown codes.
	GetCountryByCode(ctx context.Context, code string) (*domain.Country, error)

	// ListCountries retrieves all countries in display order.
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

// CountryWriterSvc defines write operations for country data
type CountryWriterSvc interface {
	// CreateCountry stores a country, replacing any country with the same code.
	CreateCountry(ctx context.Context, req dto.CreateCountryRequest) (*domain.Country, error)
}

// CountrySvcFacade combines all country-related service interfaces
type CountrySvcFacade interface {
	CountryReaderSvc
	CountryWriterSvc
}
