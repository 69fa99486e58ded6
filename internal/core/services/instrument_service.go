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

type instrumentService struct {
	BaseService
	instrumentRepo portsrepo.InstrumentRepositoryFacade
}

func NewInstrumentService(instrumentRepo portsrepo.InstrumentRepositoryFacade) portssvc.InstrumentSvcFacade {
	return &instrumentService{instrumentRepo: instrumentRepo}
}

func (s *instrumentService) CreateInstrument(ctx context.Context, countryCode string, req dto.CreateInstrumentRequest) (*domain.FinancialInstrument, error) {
	instrument := domain.FinancialInstrument{
		ID:            req.ID,
		CountryCode:   countryCode,
		Category:      req.Category,
		Name:          req.Name,
		Description:   req.Description,
		Features:      slices.Clone(req.Features),
		RiskLevel:     req.RiskLevel,
		MinInvestment: req.MinInvestment,
		Taxation:      req.Taxation,
	}

	saved, err := s.instrumentRepo.SaveInstrument(ctx, instrument)
	if err != nil {
		s.LogError(ctx, err, "Failed to save instrument in repository", slog.String("country_code", countryCode), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create instrument: %w", err)
	}

	s.LogInfo(ctx, "Instrument created successfully", slog.String("instrument_id", saved.ID), slog.String("country_code", countryCode))
	return saved, nil
}

func (s *instrumentService) ListInstrumentsByCountry(ctx context.Context, countryCode string) ([]domain.FinancialInstrument, error) {
	instruments, err := s.instrumentRepo.ListInstrumentsByCountry(ctx, countryCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to list instruments", slog.String("country_code", countryCode))
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	return emptyIfNil(instruments), nil
}
