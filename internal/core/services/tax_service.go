package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
	portsrepo "github.com/SscSPs/global_finance_path/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/global_finance_path/internal/core/ports/services"
	"github.com/SscSPs/global_finance_path/internal/dto"
)

type taxService struct {
	BaseService
	regulationRepo portsrepo.RegulationRepositoryFacade
}

func NewTaxService(regulationRepo portsrepo.RegulationRepositoryFacade) portssvc.TaxSvcFacade {
	return &taxService{regulationRepo: regulationRepo}
}

func (s *taxService) CreateRegulation(ctx context.Context, countryCode string, req dto.CreateTaxRegulationRequest) (*domain.TaxRegulation, error) {
	regulation := domain.TaxRegulation{
		ID:          req.ID,
		CountryCode: countryCode,
		Regime:      req.Regime,
		TaxSlabs:    emptyIfNil(dto.ToDomainTaxSlabs(req.TaxSlabs)),
		Deductions:  dto.ToDomainDeductions(req.Deductions),
		OtherTaxes:  dto.ToDomainOtherTaxes(req.OtherTaxes),
	}

	saved, err := s.regulationRepo.SaveRegulation(ctx, regulation)
	if err != nil {
		s.LogError(ctx, err, "Failed to save tax regulation in repository", slog.String("country_code", countryCode))
		return nil, fmt.Errorf("failed to create tax regulation: %w", err)
	}

	s.LogInfo(ctx, "Tax regulation created successfully",
		slog.String("regulation_id", saved.ID),
		slog.String("country_code", countryCode),
		slog.String("regime", saved.RegimeName()))
	return saved, nil
}

func (s *taxService) ListRegulationsByCountry(ctx context.Context, countryCode string) ([]domain.TaxRegulation, error) {
	regulations, err := s.regulationRepo.ListRegulationsByCountry(ctx, countryCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax regulations", slog.String("country_code", countryCode))
		return nil, fmt.Errorf("failed to list tax regulations: %w", err)
	}
	return emptyIfNil(regulations), nil
}
