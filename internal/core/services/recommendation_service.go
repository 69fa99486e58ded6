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

type recommendationService struct {
	BaseService
	recommendationRepo portsrepo.RecommendationRepositoryFacade
}

func NewRecommendationService(recommendationRepo portsrepo.RecommendationRepositoryFacade) portssvc.RecommendationSvcFacade {
	return &recommendationService{recommendationRepo: recommendationRepo}
}

func (s *recommendationService) CreateRecommendation(ctx context.Context, countryCode string, req dto.CreateRecommendationRequest) (*domain.Recommendation, error) {
	recommendation := domain.Recommendation{
		ID:              req.ID,
		CountryCode:     countryCode,
		AgeGroup:        req.AgeGroup,
		Occupation:      req.Occupation,
		InstrumentTypes: slices.Clone(req.InstrumentTypes),
		Schemes:         slices.Clone(req.Schemes),
		Description:     req.Description,
	}

	saved, err := s.recommendationRepo.SaveRecommendation(ctx, recommendation)
	if err != nil {
		s.LogError(ctx, err, "Failed to save recommendation in repository", slog.String("country_code", countryCode))
		return nil, fmt.Errorf("failed to create recommendation: %w", err)
	}

	s.LogInfo(ctx, "Recommendation created successfully", slog.String("recommendation_id", saved.ID), slog.String("country_code", countryCode))
	return saved, nil
}

func (s *recommendationService) ListRecommendationsByCountry(ctx context.Context, countryCode string) ([]domain.Recommendation, error) {
	recommendations, err := s.recommendationRepo.ListRecommendationsByCountry(ctx, countryCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recommendations", slog.String("country_code", countryCode))
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return emptyIfNil(recommendations), nil
}
