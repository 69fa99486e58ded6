package seed_test

import (
	"testing"

	"github.com/SscSPs/global_finance_path/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CountriesHaveSeeders(t *testing.T) {
	catalog := seed.Default()

	require.Len(t, catalog.Countries, 5)
	require.Len(t, catalog.Seeders, len(catalog.Countries))
	for i, country := range catalog.Countries {
		assert.Equal(t, country.Code, catalog.Seeders[i].CountryCode, "seeders follow country order")
	}
}

func TestDefault_EveryCountryHasCoreContent(t *testing.T) {
	for _, seeder := range seed.Default().Seeders {
		t.Run(seeder.CountryCode, func(t *testing.T) {
			content := seeder.Load()
			assert.NotEmpty(t, content.Instruments)
			assert.NotEmpty(t, content.Schemes)
			assert.NotEmpty(t, content.Regulations)
			for _, reg := range content.Regulations {
				assert.NotNil(t, reg.Regime)
				assert.NotEmpty(t, reg.TaxSlabs)
			}
		})
	}
}

func TestDefault_RecommendationsOnlyForSomeCountries(t *testing.T) {
	withRecommendations := map[string]bool{}
	for _, seeder := range seed.Default().Seeders {
		if len(seeder.Load().Recommendations) > 0 {
			withRecommendations[seeder.CountryCode] = true
		}
	}

	assert.Equal(t, map[string]bool{"IN": true, "ES": true, "US": true}, withRecommendations)
}

func TestDefault_RecordsCarryNoIdentity(t *testing.T) {
	for _, seeder := range seed.Default().Seeders {
		content := seeder.Load()
		for _, inst := range content.Instruments {
			assert.Empty(t, inst.ID)
			assert.Empty(t, inst.CountryCode)
		}
		for _, scheme := range content.Schemes {
			assert.Empty(t, scheme.ID)
		}
	}
}

func TestDefault_LoadReturnsFreshData(t *testing.T) {
	first := seed.Default().Seeders[0].Load()
	first.Instruments[0].Name = "mutated"

	second := seed.Default().Seeders[0].Load()
	assert.NotEqual(t, "mutated", second.Instruments[0].Name)
}
