// Package seed holds the fixed reference content loaded into the content store at
// startup. Records carry no ids or country codes; the store assigns both.
package seed

import "github.com/SscSPs/global_finance_path/internal/core/domain"

// Content is everything one country contributes besides its Country record.
type Content struct {
	Instruments     []domain.FinancialInstrument
	Schemes         []domain.SavingsScheme
	Regulations     []domain.TaxRegulation
	Recommendations []domain.Recommendation
}

// Seeder loads the content of a single country.
type Seeder struct {
	CountryCode string
	Load        func() Content
}

// Catalog is a complete seed set: the country list and one seeder per country.
type Catalog struct {
	Countries []domain.Country
	Seeders   []Seeder
}

// Default returns the product's reference catalog for IN, ES, DE, MX and US.
func Default() Catalog {
	return Catalog{
		Countries: []domain.Country{
			{Code: "IN", Name: "India", Currency: "INR", CurrencySymbol: "₹"},
			{Code: "ES", Name: "Spain", Currency: "EUR", CurrencySymbol: "€"},
			{Code: "DE", Name: "Germany", Currency: "EUR", CurrencySymbol: "€"},
			{Code: "MX", Name: "Mexico", Currency: "MXN", CurrencySymbol: "$"},
			{Code: "US", Name: "United States", Currency: "USD", CurrencySymbol: "$"},
		},
		Seeders: []Seeder{
			{CountryCode: "IN", Load: india},
			{CountryCode: "ES", Load: spain},
			{CountryCode: "DE", Load: germany},
			{CountryCode: "MX", Load: mexico},
			{CountryCode: "US", Load: unitedStates},
		},
	}
}

var str = domain.StringPtr
