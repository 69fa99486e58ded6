package domain

// TaxSlab is one bracket of a progressive schedule, as display text.
type TaxSlab struct {
	Range  string `json:"range"`
	Rate   string `json:"rate"`
	Amount string `json:"amount"`
}

// Deduction is an allowance that reduces taxable income.
type Deduction struct {
	Section     string `json:"section"`
	Name        string `json:"name"`
	Limit       string `json:"limit"`
	Description string `json:"description"`
}

// OtherTax is a non-income tax shown alongside the slabs (VAT, FICA, ...).
type OtherTax struct {
	Name        string `json:"name"`
	Rate        string `json:"rate"`
	Description string `json:"description"`
}

// TaxRegulation is one regime of a country's income tax rules. The first regulation
// of a country is its default regime.
//
// A nil Deductions or OtherTaxes means the record does not carry the list at all;
// an empty slice means it carries an explicitly empty list.
type TaxRegulation struct {
	ID          string      `json:"id"`
	CountryCode string      `json:"countryCode"`
	Regime      *string     `json:"regime"`
	TaxSlabs    []TaxSlab   `json:"taxSlabs"`
	Deductions  []Deduction `json:"deductions"`
	OtherTaxes  []OtherTax  `json:"otherTaxes"`
}

// HasDeductions reports whether the regulation carries a deductions list.
func (t TaxRegulation) HasDeductions() bool {
	return t.Deductions != nil
}

// RegimeName returns the regime or "" when absent.
func (t TaxRegulation) RegimeName() string {
	if t.Regime == nil {
		return ""
	}
	return *t.Regime
}
