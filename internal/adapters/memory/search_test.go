package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/global_finance_path/internal/adapters/memory"
	"github.com/SscSPs/global_finance_path/internal/core/domain"
	"github.com/SscSPs/global_finance_path/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore(t *testing.T) *memory.ContentStore {
	t.Helper()
	return memory.NewContentStore(seed.Default(), memory.WithIDGenerator(sequentialIDs()))
}

func instrumentNames(r *domain.SearchResult) []string {
	names := make([]string, 0, len(r.Instruments))
	for _, i := range r.Instruments {
		names = append(names, i.Name)
	}
	return names
}

func schemeNames(r *domain.SearchResult) []string {
	names := make([]string, 0, len(r.Schemes))
	for _, s := range r.Schemes {
		names = append(names, s.Name)
	}
	return names
}

func regimes(r *domain.SearchResult) []string {
	names := make([]string, 0, len(r.Regulations))
	for _, reg := range r.Regulations {
		names = append(names, reg.RegimeName())
	}
	return names
}

func TestSearchContent_IndiaPPF(t *testing.T) {
	store := newSeededStore(t)

	result, err := store.SearchContent(context.Background(), "IN", "PPF")

	require.NoError(t, err)
	assert.Empty(t, result.Instruments)
	assert.Equal(t, []string{"Public Provident Fund (PPF)"}, schemeNames(result))
	assert.Empty(t, result.Regulations)
}

func TestSearchContent_CaseInsensitive(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	lower, err := store.SearchContent(ctx, "IN", "ppf")
	require.NoError(t, err)
	upper, err := store.SearchContent(ctx, "IN", "PPF")
	require.NoError(t, err)
	mixed, err := store.SearchContent(ctx, "IN", "pPf")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
}

func TestSearchContent_NoMatches(t *testing.T) {
	store := newSeededStore(t)

	result, err := store.SearchContent(context.Background(), "US", "xyzxyz")

	require.NoError(t, err)
	assert.NotNil(t, result.Instruments)
	assert.NotNil(t, result.Schemes)
	assert.NotNil(t, result.Regulations)
	assert.Zero(t, result.Total())
}

func TestSearchContent_FieldCoverage(t *testing.T) {
	tests := []struct {
		name        string
		country     string
		query       string
		instruments []string
		schemes     []string
		regimes     []string
	}{
		{
			name:        "instrument name",
			country:     "DE",
			query:       "dax",
			instruments: []string{"DAX Stocks"},
		},
		{
			name:        "instrument description",
			country:     "IN",
			query:       "hedging and speculation",
			instruments: []string{"Futures & Options"},
		},
		{
			name:        "instrument category",
			country:     "IN",
			query:       "money market",
			instruments: []string{"Treasury Bills"},
		},
		{
			name:        "instrument feature",
			country:     "IN",
			query:       "voting",
			instruments: []string{"Stocks & Shares"},
		},
		{
			name:    "scheme key feature",
			country: "IN",
			query:   "quarterly",
			schemes: []string{"Senior Citizens Savings Scheme"},
		},
		{
			name:    "regime",
			country: "IN",
			query:   "old",
			regimes: []string{"Old"},
		},
		{
			name:    "deduction name",
			country: "US",
			query:   "standard deduction",
			regimes: []string{"Federal"},
		},
		{
			name:    "deduction description",
			country: "ES",
			query:   "private pension",
			regimes: []string{"General"},
		},
		{
			name:        "matches across collections in insertion order",
			country:     "ES",
			query:       "pension",
			instruments: []string{},
			schemes:     []string{"Pension Plans (Planes de Pensiones)"},
			regimes:     []string{"General"},
		},
		{
			name:        "instrument and scheme share a term",
			country:     "IN",
			query:       "government backing",
			instruments: []string{"Government Bonds", "Treasury Bills"},
			schemes:     []string{"National Savings Certificate (NSC)"},
		},
	}

	store := newSeededStore(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := store.SearchContent(context.Background(), tt.country, tt.query)
			require.NoError(t, err)

			want := func(v []string) []string {
				if v == nil {
					return []string{}
				}
				return v
			}
			assert.Equal(t, want(tt.instruments), instrumentNames(result))
			assert.Equal(t, want(tt.schemes), schemeNames(result))
			assert.Equal(t, want(tt.regimes), regimes(result))
		})
	}
}

func TestSearchContent_IgnoresUnsearchedFields(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	// taxation text of Indian instruments
	result, err := store.SearchContent(ctx, "IN", "business income")
	require.NoError(t, err)
	assert.Zero(t, result.Total())

	// scheme eligibility
	result, err = store.SearchContent(ctx, "IN", "girl child below")
	require.NoError(t, err)
	assert.Zero(t, result.Total())

	// other taxes and recommendations
	result, err = store.SearchContent(ctx, "US", "medicare")
	require.NoError(t, err)
	assert.Zero(t, result.Total())
	result, err = store.SearchContent(ctx, "US", "growth stocks")
	require.NoError(t, err)
	assert.Zero(t, result.Total())
}

func TestSearchContent_IsCountryScoped(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	for _, code := range seededCodes {
		result, err := store.SearchContent(ctx, code, "e")
		require.NoError(t, err)

		instruments, _ := store.ListInstrumentsByCountry(ctx, code)
		schemes, _ := store.ListSchemesByCountry(ctx, code)
		regulations, _ := store.ListRegulationsByCountry(ctx, code)

		assert.Subset(t, instruments, result.Instruments, code)
		assert.Subset(t, schemes, result.Schemes, code)
		assert.Subset(t, regulations, result.Regulations, code)
	}
}

func TestSearchContent_EmptyQueryMatchesEverything(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	result, err := store.SearchContent(ctx, "IN", "")
	require.NoError(t, err)

	instruments, _ := store.ListInstrumentsByCountry(ctx, "IN")
	schemes, _ := store.ListSchemesByCountry(ctx, "IN")
	regulations, _ := store.ListRegulationsByCountry(ctx, "IN")
	assert.Equal(t, instruments, result.Instruments)
	assert.Equal(t, schemes, result.Schemes)
	assert.Equal(t, regulations, result.Regulations)
}

func TestSearchContent_WhitespaceIsLiteral(t *testing.T) {
	store := newSeededStore(t)

	result, err := store.SearchContent(context.Background(), "IN", " ")
	require.NoError(t, err)

	// every multi-word instrument name contains a space; "Old"/"New" do not,
	// but the Old regime's deductions do.
	assert.NotEmpty(t, result.Instruments)
	assert.Equal(t, []string{"Old"}, regimes(result))

	padded, err := store.SearchContent(context.Background(), "DE", " dax stocks ")
	require.NoError(t, err)
	assert.Empty(t, padded.Instruments)
}

func TestSearchContent_UnknownCountry(t *testing.T) {
	store := newSeededStore(t)

	result, err := store.SearchContent(context.Background(), "ZZ", "fund")

	require.NoError(t, err)
	assert.Zero(t, result.Total())
}

func TestSearchContent_RegulationWithoutRegimeOrDeductions(t *testing.T) {
	store := memory.NewContentStore(seed.Catalog{})
	ctx := context.Background()
	_, err := store.SaveRegulation(ctx, domain.TaxRegulation{CountryCode: "FR", TaxSlabs: []domain.TaxSlab{{Range: "all", Rate: "10%", Amount: "flat"}}})
	require.NoError(t, err)

	result, err := store.SearchContent(ctx, "FR", "flat")
	require.NoError(t, err)
	assert.Empty(t, result.Regulations)

	result, err = store.SearchContent(ctx, "FR", "")
	require.NoError(t, err)
	assert.Empty(t, result.Regulations, "a regulation with no searchable fields matches nothing, not even the empty query")
}
