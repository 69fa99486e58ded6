package domain

// SavingsScheme is a government or bank savings product. Optional fields are nil
// when the source record does not carry them.
type SavingsScheme struct {
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
