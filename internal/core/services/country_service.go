package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/global_finance_path/internal/apperrors"
	"github.com/SscSPs/global_finance_path/internal/core/domain"
	portsrepo "github.com/SscSPs/global_finance_path/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/global_finance_path/internal/core/ports/services"
	"github.com/SscSPs/global_finance_path/internal/dto"
)

type countryService struct {
	BaseService
	countryRepo portsrepo.CountryRepositoryFacade
}

func NewCountryService(countryRepo portsrepo.CountryRepositoryFacade) portssvc.CountrySvcFacade {
	return &countryService{countryRepo: countryRepo}
}

func (s *countryService) CreateCountry(ctx context.Context, req dto.CreateCountryRequest) (*domain.Country, error) {
	country := domain.Country{
		Code:           req.Code,
		Name:           req.Name,
		Currency:       req.Currency,
		CurrencySymbol: req.CurrencySymbol,
	}

	saved, err := s.countryRepo.SaveCountry(ctx, country)
	if err != nil {
		s.LogError(ctx, err, "Failed to save country in repository", slog.String("country_code", req.Code))
		return nil, fmt.Errorf("failed to create country: %w", err)
	}

	s.LogInfo(ctx, "Country created successfully", slog.String("country_code", saved.Code))
	return saved, nil
}

func (s *countryService) GetCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	country, err := s.countryRepo.FindCountryByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Country not found", slog.String("country_code", code))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get country by code", slog.String("country_code", code))
		return nil, fmt.Errorf("failed to get country by code: %w", err)
	}
	return country, nil
}

func (s *countryService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.countryRepo.ListCountries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list countries")
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return emptyIfNil(countries), nil
}
