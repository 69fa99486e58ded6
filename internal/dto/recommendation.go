package dto

import "github.com/SscSPs/global_finance_path/internal/core/domain"

// CreateRecommendationRequest defines the data needed to add a recommendation.
type CreateRecommendationRequest struct {
	ID              string   `json:"id"`
	AgeGroup        string   `json:"ageGroup" binding:"required"`
	Occupation      string   `json:"occupation" binding:"required"`
	InstrumentTypes []string `json:"instrumentTypes"`
	Schemes         []string `json:"schemes"`
	Description     string   `json:"description" binding:"required"`
}

// RecommendationResponse defines the data returned for a recommendation.
type RecommendationResponse struct {
	ID              string   `json:"id"`
	CountryCode     string   `json:"countryCode"`
	AgeGroup        string   `json:"ageGroup"`
	Occupation      string   `json:"occupation"`
	InstrumentTypes []string `json:"instrumentTypes"`
	Schemes         []string `json:"schemes"`
	Description     string   `json:"description"`
}

func ToRecommendationResponse(r *domain.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		ID:              r.ID,
		CountryCode:     r.CountryCode,
		AgeGroup:        r.AgeGroup,
		Occupation:      r.Occupation,
		InstrumentTypes: nonNil(r.InstrumentTypes),
		Schemes:         nonNil(r.Schemes),
		Description:     r.Description,
	}
}

func ToListRecommendationResponse(recommendations []domain.Recommendation) []RecommendationResponse {
	res := make([]RecommendationResponse, len(recommendations))
	for i := range recommendations {
		res[i] = ToRecommendationResponse(&recommendations[i])
	}
	return res
}
