package memory

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
	portsrepo "github.com/SscSPs/global_finance_path/internal/core/ports/repositories"
	"github.com/SscSPs/global_finance_path/internal/seed"
	"github.com/google/uuid"
)

// Collection names reported by Counts.
const (
	CollectionCountries       = "countries"
	CollectionInstruments     = "instruments"
	CollectionSchemes         = "schemes"
	CollectionRegulations     = "regulations"
	CollectionRecommendations = "recommendations"
)

// IDGenerator returns a fresh record identifier.
type IDGenerator func() string

// ContentStore holds the reference content for every country in process memory.
// A single RWMutex guards all five collections: reads share it, saves take it
// exclusively, so concurrent saves of the same id never lose an update.
type ContentStore struct {
	mu     sync.RWMutex
	newID  IDGenerator
	logger *slog.Logger

	countries       *collection[domain.Country]
	instruments     *collection[domain.FinancialInstrument]
	schemes         *collection[domain.SavingsScheme]
	regulations     *collection[domain.TaxRegulation]
	recommendations *collection[domain.Recommendation]
}

// Option configures a ContentStore.
type Option func(*ContentStore)

// WithIDGenerator replaces the default UUID generator, e.g. for deterministic tests.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *ContentStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger used while seeding.
func WithLogger(logger *slog.Logger) Option {
	return func(s *ContentStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewContentStore builds a store and loads the catalog into it: countries first,
// then each country's seeder in catalog order. Seeding happens once per instance.
func NewContentStore(catalog seed.Catalog, opts ...Option) *ContentStore {
	s := &ContentStore{
		newID:           uuid.NewString,
		logger:          slog.Default(),
		countries:       newCollection[domain.Country](nil),
		instruments:     newCollection(cloneInstrument),
		schemes:         newCollection(cloneScheme),
		regulations:     newCollection(cloneRegulation),
		recommendations: newCollection(cloneRecommendation),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.seed(catalog)
	return s
}

var (
	_ portsrepo.CountryRepositoryFacade        = (*ContentStore)(nil)
	_ portsrepo.InstrumentRepositoryFacade     = (*ContentStore)(nil)
	_ portsrepo.SchemeRepositoryFacade         = (*ContentStore)(nil)
	_ portsrepo.RegulationRepositoryFacade     = (*ContentStore)(nil)
	_ portsrepo.RecommendationRepositoryFacade = (*ContentStore)(nil)
	_ portsrepo.ContentSearcher                = (*ContentStore)(nil)
)

// NewRepositoryProvider exposes one store through every repository port.
func NewRepositoryProvider(store *ContentStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CountryRepo:        store,
		InstrumentRepo:     store,
		SchemeRepo:         store,
		RegulationRepo:     store,
		RecommendationRepo: store,
		Searcher:           store,
	}
}

func (s *ContentStore) seed(catalog seed.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, country := range catalog.Countries {
		s.countries.put(country.Code, country)
	}

	for _, seeder := range catalog.Seeders {
		content := seeder.Load()
		for _, inst := range content.Instruments {
			inst.CountryCode = seeder.CountryCode
			s.putInstrument(inst)
		}
		for _, scheme := range content.Schemes {
			scheme.CountryCode = seeder.CountryCode
			s.putScheme(scheme)
		}
		for _, reg := range content.Regulations {
			reg.CountryCode = seeder.CountryCode
			s.putRegulation(reg)
		}
		for _, rec := range content.Recommendations {
			rec.CountryCode = seeder.CountryCode
			s.putRecommendation(rec)
		}
		s.logger.Debug("Seeded country content",
			slog.String("country_code", seeder.CountryCode),
			slog.Int("instruments", len(content.Instruments)),
			slog.Int("schemes", len(content.Schemes)),
			slog.Int("regulations", len(content.Regulations)),
			slog.Int("recommendations", len(content.Recommendations)),
		)
	}
}

// Counts returns the number of records held per collection.
func (s *ContentStore) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]int{
		CollectionCountries:       s.countries.len(),
		CollectionInstruments:     s.instruments.len(),
		CollectionSchemes:         s.schemes.len(),
		CollectionRegulations:     s.regulations.len(),
		CollectionRecommendations: s.recommendations.len(),
	}
}

// The put helpers assume s.mu is held for writing. The collections store deep
// copies, so the returned record shares nothing with the stored one.

func (s *ContentStore) putInstrument(inst domain.FinancialInstrument) domain.FinancialInstrument {
	if inst.ID == "" {
		inst.ID = s.newID()
	}
	s.instruments.put(inst.ID, inst)
	return inst
}

func (s *ContentStore) putScheme(scheme domain.SavingsScheme) domain.SavingsScheme {
	if scheme.ID == "" {
		scheme.ID = s.newID()
	}
	s.schemes.put(scheme.ID, scheme)
	return scheme
}

func (s *ContentStore) putRegulation(reg domain.TaxRegulation) domain.TaxRegulation {
	if reg.ID == "" {
		reg.ID = s.newID()
	}
	s.regulations.put(reg.ID, reg)
	return reg
}

func (s *ContentStore) putRecommendation(rec domain.Recommendation) domain.Recommendation {
	if rec.ID == "" {
		rec.ID = s.newID()
	}
	s.recommendations.put(rec.ID, rec)
	return rec
}

func cloneInstrument(inst domain.FinancialInstrument) domain.FinancialInstrument {
	inst.Features = slices.Clone(inst.Features)
	return inst
}

// cloneScheme also copies the optional strings so a caller cannot rewrite them
// through the pointer.
func cloneScheme(scheme domain.SavingsScheme) domain.SavingsScheme {
	scheme.KeyFeatures = slices.Clone(scheme.KeyFeatures)
	scheme.TaxBenefits = cloneString(scheme.TaxBenefits)
	scheme.Eligibility = cloneString(scheme.Eligibility)
	scheme.MinAmount = cloneString(scheme.MinAmount)
	scheme.MaxAmount = cloneString(scheme.MaxAmount)
	return scheme
}

func cloneRegulation(reg domain.TaxRegulation) domain.TaxRegulation {
	reg.Regime = cloneString(reg.Regime)
	reg.TaxSlabs = slices.Clone(reg.TaxSlabs)
	reg.Deductions = slices.Clone(reg.Deductions)
	reg.OtherTaxes = slices.Clone(reg.OtherTaxes)
	return reg
}

func cloneRecommendation(rec domain.Recommendation) domain.Recommendation {
	rec.InstrumentTypes = slices.Clone(rec.InstrumentTypes)
	rec.Schemes = slices.Clone(rec.Schemes)
	return rec
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
