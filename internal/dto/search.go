package dto

import "github.com/SscSPs/global_finance_path/internal/core/domain"

// SearchParams binds the query string of a content search.
type SearchParams struct {
	Q string `form:"q" binding:"required"`
}

// SearchResponse groups matched records by collection. Each list is [] when
// nothing in that collection matched.
type SearchResponse struct {
	Instruments []InstrumentResponse    `json:"instruments"`
	Schemes     []SchemeResponse        `json:"schemes"`
	Regulations []TaxRegulationResponse `json:"regulations"`
}

func ToSearchResponse(r *domain.SearchResult) SearchResponse {
	return SearchResponse{
		Instruments: ToListInstrumentResponse(r.Instruments),
		Schemes:     ToListSchemeResponse(r.Schemes),
		Regulations: ToListTaxRegulationResponse(r.Regulations),
	}
}
