package services

import (
	"context"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
	"github.com/SscSPs/global_finance_path/internal/dto"
)

// InstrumentReaderSvc defines read operations for financial instruments
type InstrumentReaderSvc interface {
	ListInstrumentsByCountry(ctx context.Context, countryCode string) ([]domain.FinancialInstrument, error)
}

// InstrumentWriterSvc defines write operations for financial instruments
type InstrumentWriterSvc interface {
	CreateInstrument(ctx context.Context, countryCode string, req dto.CreateInstrumentRequest) (*domain.FinancialInstrument, error)
}

// InstrumentSvcFacade combines all instrument-related service interfaces
type InstrumentSvcFacade interface {
	InstrumentReaderSvc
	InstrumentWriterSvc
}

// SchemeReaderSvc defines read operations for savings schemes
type SchemeReaderSvc interface {
	ListSchemesByCountry(ctx context.Context, countryCode string) ([]domain.SavingsScheme, error)
}

// SchemeWriterSvc defines write operations for savings schemes
type SchemeWriterSvc interface {
	CreateScheme(ctx context.Context, countryCode string, req dto.CreateSchemeRequest) (*domain.SavingsScheme, error)
}

// SchemeSvcFacade combines all scheme-related service interfaces
type SchemeSvcFacade interface {
	SchemeReaderSvc
	SchemeWriterSvc
}

// TaxReaderSvc defines read operations for tax regulations
type TaxReaderSvc interface {
	ListRegulationsByCountry(ctx context.Context, countryCode string) ([]domain.TaxRegulation, error)
}

// TaxWriterSvc defines write operations for tax regulations
type TaxWriterSvc interface {
	CreateRegulation(ctx context.Context, countryCode string, req dto.CreateTaxRegulationRequest) (*domain.TaxRegulation, error)
}

// TaxSvcFacade combines all tax-related service interfaces
type TaxSvcFacade interface {
	TaxReaderSvc
	TaxWriterSvc
}

// RecommendationReaderSvc defines read operations for recommendations
type RecommendationReaderSvc interface {
	ListRecommendationsByCountry(ctx context.Context, countryCode string) ([]domain.Recommendation, error)
}

// RecommendationWriterSvc defines write operations for recommendations
type RecommendationWriterSvc interface {
	CreateRecommendation(ctx context.Context, countryCode string, req dto.CreateRecommendationRequest) (*domain.Recommendation, error)
}

// RecommendationSvcFacade combines all recommendation-related service interfaces
type RecommendationSvcFacade interface {
	RecommendationReaderSvc
	RecommendationWriterSvc
}

// SearchSvc searches one country's instruments, schemes and tax regulations.
type SearchSvc interface {
	// SearchContent returns apperrors.ErrValidation when query is empty.
	SearchContent(ctx context.Context, countryCode, query string) (*domain.SearchResult, error)
}
