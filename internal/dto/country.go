package dto

import "github.com/SscSPs/global_finance_path/internal/core/domain"

// CreateCountryRequest defines the data needed to create a new country.
type CreateCountryRequest struct {
	Code           string `json:"code" binding:"required,countrycode"`
	Name           string `json:"name" binding:"required"`
	Currency       string `json:"currency" binding:"required,uppercase,len=3"`
	CurrencySymbol string `json:"currencySymbol" binding:"required"`
}

// CountryResponse defines the data returned for a country.
type CountryResponse struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currencySymbol"`
}

// ToCountryResponse converts a domain.Country to CountryResponse DTO
func ToCountryResponse(c *domain.Country) CountryResponse {
	return CountryResponse{
		Code:           c.Code,
		Name:           c.Name,
		Currency:       c.Currency,
		CurrencySymbol: c.CurrencySymbol,
	}
}

// ToListCountryResponse converts a slice of domain.Country to a slice of CountryResponse DTOs
func ToListCountryResponse(countries []domain.Country) []CountryResponse {
	res := make([]CountryResponse, len(countries))
	for i := range countries {
		res[i] = ToCountryResponse(&countries[i])
	}
	return res
}
