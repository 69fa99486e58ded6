package dto

import "github.com/SscSPs/global_finance_path/internal/core/domain"

// TaxSlabDTO is one bracket of a progressive schedule.
type TaxSlabDTO struct {
	Range  string `json:"range" binding:"required"`
	Rate   string `json:"rate" binding:"required"`
	Amount string `json:"amount"`
}

// DeductionDTO is an allowance that reduces taxable income.
type DeductionDTO struct {
	Section     string `json:"section"`
	Name        string `json:"name" binding:"required"`
	Limit       string `json:"limit"`
	Description string `json:"description"`
}

// OtherTaxDTO is a non-income tax listed with a regulation.
type OtherTaxDTO struct {
	Name        string `json:"name" binding:"required"`
	Rate        string `json:"rate"`
	Description string `json:"description"`
}

// CreateTaxRegulationRequest defines the data needed to add a tax regulation.
// Omitting deductions or otherTaxes stores the regulation without those lists.
type CreateTaxRegulationRequest struct {
	ID         string         `json:"id"`
	Regime     *string        `json:"regime,omitempty"`
	TaxSlabs   []TaxSlabDTO   `json:"taxSlabs" binding:"required,dive"`
	Deductions []DeductionDTO `json:"deductions,omitempty" binding:"omitempty,dive"`
	OtherTaxes []OtherTaxDTO  `json:"otherTaxes,omitempty" binding:"omitempty,dive"`
}

// TaxRegulationResponse defines the data returned for a tax regulation.
type TaxRegulationResponse struct {
	ID          string         `json:"id"`
	CountryCode string         `json:"countryCode"`
	Regime      *string        `json:"regime"`
	TaxSlabs    []TaxSlabDTO   `json:"taxSlabs"`
	Deductions  []DeductionDTO `json:"deductions"`
	OtherTaxes  []OtherTaxDTO  `json:"otherTaxes"`
}

// ToDomainTaxSlabs converts request slabs to domain slabs.
func ToDomainTaxSlabs(slabs []TaxSlabDTO) []domain.TaxSlab {
	if slabs == nil {
		return nil
	}
	out := make([]domain.TaxSlab, len(slabs))
	for i, s := range slabs {
		out[i] = domain.TaxSlab{Range: s.Range, Rate: s.Rate, Amount: s.Amount}
	}
	return out
}

// ToDomainDeductions keeps a nil input nil so "absent" survives the mapping.
func ToDomainDeductions(deductions []DeductionDTO) []domain.Deduction {
	if deductions == nil {
		return nil
	}
	out := make([]domain.Deduction, len(deductions))
	for i, d := range deductions {
		out[i] = domain.Deduction{Section: d.Section, Name: d.Name, Limit: d.Limit, Description: d.Description}
	}
	return out
}

// ToDomainOtherTaxes keeps a nil input nil so "absent" survives the mapping.
func ToDomainOtherTaxes(taxes []OtherTaxDTO) []domain.OtherTax {
	if taxes == nil {
		return nil
	}
	out := make([]domain.OtherTax, len(taxes))
	for i, t := range taxes {
		out[i] = domain.OtherTax{Name: t.Name, Rate: t.Rate, Description: t.Description}
	}
	return out
}

func ToTaxRegulationResponse(t *domain.TaxRegulation) TaxRegulationResponse {
	res := TaxRegulationResponse{
		ID:          t.ID,
		CountryCode: t.CountryCode,
		Regime:      t.Regime,
		TaxSlabs:    make([]TaxSlabDTO, len(t.TaxSlabs)),
	}
	for i, s := range t.TaxSlabs {
		res.TaxSlabs[i] = TaxSlabDTO{Range: s.Range, Rate: s.Rate, Amount: s.Amount}
	}
	if t.Deductions != nil {
		res.Deductions = make([]DeductionDTO, len(t.Deductions))
		for i, d := range t.Deductions {
			res.Deductions[i] = DeductionDTO{Section: d.Section, Name: d.Name, Limit: d.Limit, Description: d.Description}
		}
	}
	if t.OtherTaxes != nil {
		res.OtherTaxes = make([]OtherTaxDTO, len(t.OtherTaxes))
		for i, o := range t.OtherTaxes {
			res.OtherTaxes[i] = OtherTaxDTO{Name: o.Name, Rate: o.Rate, Description: o.Description}
		}
	}
	return res
}

func ToListTaxRegulationResponse(regulations []domain.TaxRegulation) []TaxRegulationResponse {
	res := make([]TaxRegulationResponse, len(regulations))
	for i := range regulations {
		res[i] = ToTaxRegulationResponse(&regulations[i])
	}
	return res
}
