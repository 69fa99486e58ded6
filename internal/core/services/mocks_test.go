package services_test

import (
	"context"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CountryRepository ---
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) FindCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *MockCountryRepository) SaveCountry(ctx context.Context, country domain.Country) (*domain.Country, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

// --- Mock InstrumentRepository ---
type MockInstrumentRepository struct {
	mock.Mock
}

func (m *MockInstrumentRepository) ListInstrumentsByCountry(ctx context.Context, countryCode string) ([]domain.FinancialInstrument, error) {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialInstrument), args.Error(1)
}

func (m *MockInstrumentRepository) SaveInstrument(ctx context.Context, instrument domain.FinancialInstrument) (*domain.FinancialInstrument, error) {
	args := m.Called(ctx, instrument)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialInstrument), args.Error(1)
}

// --- Mock RegulationRepository ---
type MockRegulationRepository struct {
	mock.Mock
}

func (m *MockRegulationRepository) ListRegulationsByCountry(ctx context.Context, countryCode string) ([]domain.TaxRegulation, error) {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRegulation), args.Error(1)
}

func (m *MockRegulationRepository) SaveRegulation(ctx context.Context, regulation domain.TaxRegulation) (*domain.TaxRegulation, error) {
	args := m.Called(ctx, regulation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRegulation), args.Error(1)
}

// --- Mock ContentSearcher ---
type MockContentSearcher struct {
	mock.Mock
}

func (m *MockContentSearcher) SearchContent(ctx context.Context, countryCode, query string) (*domain.SearchResult, error) {
	args := m.Called(ctx, countryCode, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResult), args.Error(1)
}

// --- Mock SearchObserver ---
type MockSearchObserver struct {
	mock.Mock
}

func (m *MockSearchObserver) ObserveSearch(countryCode string, matches int) {
	m.Called(countryCode, matches)
}
