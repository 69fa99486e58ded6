package dto

import "github.com/SscSPs/global_finance_path/internal/core/domain"

// CreateSchemeRequest defines the data needed to add a savings scheme.
type CreateSchemeRequest struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" binding:"required"`
	Tenure       string   `json:"tenure" binding:"required"`
	InterestRate string   `json:"interestRate" binding:"required"`
	KeyFeatures  []string `json:"keyFeatures"`
	TaxBenefits  *string  `json:"taxBenefits,omitempty"`
	Eligibility  *string  `json:"eligibility,omitempty"`
	MinAmount    *string  `json:"minAmount,omitempty"`
	MaxAmount    *string  `json:"maxAmount,omitempty"`
}

// SchemeResponse defines the data returned for a savings scheme.
// Optional fields are null when absent.
type SchemeResponse struct {
	ID           string   `json:"id"`
	CountryCode  string   `json:"countryCode"`
	Name         string   `json:"name"`
	Tenure       string   `json:"tenure"`
	InterestRate string   `json:"interestRate"`
	KeyFeatures  []string `json:"keyFeatures"`
	TaxBenefits  *string  `json:"taxBenefits"`
	Eligibility  *string  `json:"eligibility"`
	MinAmount    *string  `json:"minAmount"`
	MaxAmount    *string  `json:"maxAmount"`
}

func ToSchemeResponse(s *domain.SavingsScheme) SchemeResponse {
	return SchemeResponse{
		ID:           s.ID,
		CountryCode:  s.CountryCode,
		Name:         s.Name,
		Tenure:       s.Tenure,
		InterestRate: s.InterestRate,
		KeyFeatures:  nonNil(s.KeyFeatures),
		TaxBenefits:  s.TaxBenefits,
		Eligibility:  s.Eligibility,
		MinAmount:    s.MinAmount,
		MaxAmount:    s.MaxAmount,
	}
}

func ToListSchemeResponse(schemes []domain.SavingsScheme) []SchemeResponse {
	res := make([]SchemeResponse, len(schemes))
	for i := range schemes {
		res[i] = ToSchemeResponse(&schemes[i])
	}
	return res
}
