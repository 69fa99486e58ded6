package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
	portsrepo "github.com/SscSPs/global_finance_path/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/global_finance_path/internal/core/ports/services"
	"github.com/SscSPs/global_finance_path/internal/dto"
)

type schemeService struct {
	BaseService
	schemeRepo portsrepo.SchemeRepositoryFacade
}

func NewSchemeService(schemeRepo portsrepo.SchemeRepositoryFacade) portssvc.SchemeSvcFacade {
	return &schemeService{schemeRepo: schemeRepo}
}

func (s *schemeService) CreateScheme(ctx context.Context, countryCode string, req dto.CreateSchemeRequest) (*domain.SavingsScheme, error) {
	scheme := domain.SavingsScheme{
		ID:           req.ID,
		CountryCode:  countryCode,
		Name:         req.Name,
		Tenure:       req.Tenure,
		InterestRate: req.InterestRate,
		KeyFeatures:  slices.Clone(req.KeyFeatures),
		TaxBenefits:  req.TaxBenefits,
		Eligibility:  req.Eligibility,
		MinAmount:    req.MinAmount,
		MaxAmount:    req.MaxAmount,
	}

	saved, err := s.schemeRepo.SaveScheme(ctx, scheme)
	if err != nil {
		s.LogError(ctx, err, "Failed to save scheme in repository", slog.String("country_code", countryCode), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create scheme: %w", err)
	}

	s.LogInfo(ctx, "Scheme created successfully", slog.String("scheme_id", saved.ID), slog.String("country_code", countryCode))
	return saved, nil
}

func (s *schemeService) ListSchemesByCountry(ctx context.Context, countryCode string) ([]domain.SavingsScheme, error) {
	schemes, err := s.schemeRepo.ListSchemesByCountry(ctx, countryCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to list schemes", slog.String("country_code", countryCode))
		return nil, fmt.Errorf("failed to list schemes: %w", err)
	}
	return emptyIfNil(schemes), nil
}
