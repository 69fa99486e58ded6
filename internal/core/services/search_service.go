package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/global_finance_path/internal/apperrors"
	"github.com/SscSPs/global_finance_path/internal/core/domain"
	portsrepo "github.com/SscSPs/global_finance_path/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/global_finance_path/internal/core/ports/services"
)

// SearchObserver is told how many records each successful search matched.
type SearchObserver interface {
	ObserveSearch(countryCode string, matches int)
}

type searchService struct {
	BaseService
	searcher portsrepo.ContentSearcher
	observer SearchObserver
}

// SearchServiceOption is a functional option for configuring searchService
type SearchServiceOption func(*searchService)

// WithSearchObserver reports match counts to observer.
func WithSearchObserver(observer SearchObserver) SearchServiceOption {
	return func(s *searchService) {
		s.observer = observer
	}
}

func NewSearchService(searcher portsrepo.ContentSearcher, options ...SearchServiceOption) portssvc.SearchSvc {
	svc := &searchService{searcher: searcher}
	for _, opt := range options {
		opt(svc)
	}
	return svc
}

func (s *searchService) SearchContent(ctx context.Context, countryCode, query string) (*domain.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query must not be empty", apperrors.ErrValidation)
	}

	found, err := s.searcher.SearchContent(ctx, countryCode, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to search content", slog.String("country_code", countryCode), slog.String("query", query))
		return nil, fmt.Errorf("failed to search content: %w", err)
	}
	if found == nil {
		found = &domain.SearchResult{}
	}

	result := &domain.SearchResult{
		Instruments: emptyIfNil(found.Instruments),
		Schemes:     emptyIfNil(found.Schemes),
		Regulations: emptyIfNil(found.Regulations),
	}

	s.LogDebug(ctx, "Content search completed",
		slog.String("country_code", countryCode),
		slog.String("query", query),
		slog.Int("matches", result.Total()))
	if s.observer != nil {
		s.observer.ObserveSearch(countryCode, result.Total())
	}
	return result, nil
}
