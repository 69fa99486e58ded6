package repositories

import (
	"context"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
)

// List reads return records for one country in insertion order. An unknown country
// yields an empty slice, not an error. Saves assign an id when the record has none.

// InstrumentReader defines read operations for financial instruments
type InstrumentReader interface {
	ListInstrumentsByCountry(ctx context.Context, countryCode string) ([]domain.FinancialInstrument, error)
}

// InstrumentWriter defines write operations for financial instruments
type InstrumentWriter interface {
	SaveInstrument(ctx context.Context, instrument domain.FinancialInstrument) (*domain.FinancialInstrument, error)
}

// InstrumentRepositoryFacade combines instrument read and write operations
type InstrumentRepositoryFacade interface {
	InstrumentReader
	InstrumentWriter
}

// SchemeReader defines read operations for savings schemes
type SchemeReader interface {
	ListSchemesByCountry(ctx context.Context, countryCode string) ([]domain.SavingsScheme, error)
}

// SchemeWriter defines write operations for savings schemes
type SchemeWriter interface {
	SaveScheme(ctx context.Context, scheme domain.SavingsScheme) (*domain.SavingsScheme, error)
}

// SchemeRepositoryFacade combines scheme read and write operations
type SchemeRepositoryFacade interface {
	SchemeReader
	SchemeWriter
}

// RegulationReader defines read operations for tax regulations
type RegulationReader interface {
	ListRegulationsByCountry(ctx context.Context, countryCode string) ([]domain.TaxRegulation, error)
}

// RegulationWriter defines write operations for tax regulations
type RegulationWriter interface {
	SaveRegulation(ctx context.Context, regulation domain.TaxRegulation) (*domain.TaxRegulation, error)
}

// RegulationRepositoryFacade combines regulation read and write operations
type RegulationRepositoryFacade interface {
	RegulationReader
	RegulationWriter
}

// RecommendationReader defines read operations for recommendations
type RecommendationReader interface {
	ListRecommendationsByCountry(ctx context.Context, countryCode string) ([]domain.Recommendation, error)
}

// RecommendationWriter defines write operations for recommendations
type RecommendationWriter interface {
	SaveRecommendation(ctx context.Context, recommendation domain.Recommendation) (*domain.Recommendation, error)
}

// RecommendationRepositoryFacade combines recommendation read and write operations
type RecommendationRepositoryFacade interface {
	RecommendationReader
	RecommendationWriter
}

// ContentSearcher runs a case-insensitive substring search over one country's
// instruments, schemes and regulations.
type ContentSearcher interface {
	SearchContent(ctx context.Context, countryCode string, query string) (*domain.SearchResult, error)
}
