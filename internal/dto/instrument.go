package dto

import "github.com/SscSPs/global_finance_path/internal/core/domain"

// CreateInstrumentRequest defines the data needed to add a financial instrument.
// The country comes from the request path. ID is optional; the store assigns one
// when it is empty.
type CreateInstrumentRequest struct {
	ID            string   `json:"id"`
	Category      string   `json:"category" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Features      []string `json:"features"`
	RiskLevel     string   `json:"riskLevel" binding:"required"`
	MinInvestment string   `json:"minInvestment"`
	Taxation      string   `json:"taxation"`
}

// InstrumentResponse defines the data returned for a financial instrument.
type InstrumentResponse struct {
	ID            string   `json:"id"`
	CountryCode   string   `json:"countryCode"`
	Category      string   `json:"category"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	RiskLevel     string   `json:"riskLevel"`
	MinInvestment string   `json:"minInvestment"`
	Taxation      string   `json:"taxation"`
}

func ToInstrumentResponse(i *domain.FinancialInstrument) InstrumentResponse {
	return InstrumentResponse{
		ID:            i.ID,
		CountryCode:   i.CountryCode,
		Category:      i.Category,
		Name:          i.Name,
		Description:   i.Description,
		Features:      nonNil(i.Features),
		RiskLevel:     i.RiskLevel,
		MinInvestment: i.MinInvestment,
		Taxation:      i.Taxation,
	}
}

func ToListInstrumentResponse(instruments []domain.FinancialInstrument) []InstrumentResponse {
	res := make([]InstrumentResponse, len(instruments))
	for i := range instruments {
		res[i] = ToInstrumentResponse(&instruments[i])
	}
	return res
}

// nonNil keeps required list fields serialised as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
