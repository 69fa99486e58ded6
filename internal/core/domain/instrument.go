package domain

// Instrument categories used by the seed data. Category stays a plain string so
// callers may store values outside this set.
const (
	CategoryEquity      = "Equity"
	CategoryDebt        = "Debt"
	CategoryDerivatives = "Derivatives"
	CategoryMoneyMarket = "Money Market"
	CategoryForex       = "Forex"
)

// Risk levels, ordered from safest to riskiest.
const (
	RiskVeryLow      = "Very Low"
	RiskLow          = "Low"
	RiskMedium       = "Medium"
	RiskMediumToHigh = "Medium to High"
	RiskHigh         = "High"
	RiskVeryHigh     = "Very High"
)

// FinancialInstrument describes a class of investment available in a country.
// MinInvestment and Taxation are display text, not amounts.
type FinancialInstrument struct {
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
