package seed

import "github.com/SscSPs/global_finance_path/internal/core/domain"

func unitedStates() Content {
	return Content{
		Instruments: []domain.FinancialInstrument{
			{
				Category:      domain.CategoryEquity,
				Name:          "US Stocks (S&P 500)",
				Description:   "Shares in major US companies",
				Features:      []string{"Global market leader", "Dollar denomination", "High liquidity", "Innovation focus"},
				RiskLevel:     domain.RiskMediumToHigh,
				MinInvestment: "$1",
				Taxation:      "Capital gains tax applies",
			},
			{
				Category:      domain.CategoryDebt,
				Name:          "US Treasury Bonds",
				Description:   "Federal government bonds",
				Features:      []string{"Risk-free rate", "Dollar strength", "Global benchmark", "High liquidity"},
				RiskLevel:     domain.RiskVeryLow,
				MinInvestment: "$100",
				Taxation:      "Federal tax, state exempt",
			},
		},
		Schemes: []domain.SavingsScheme{
			{
				Name:         "401(k) Plans",
				Tenure:       "Until retirement",
				InterestRate: "Variable",
				KeyFeatures:  []string{"Employer matching", "Tax deferred", "Investment options", "Portable"},
				TaxBenefits:  str("Up to $23,000 annually (2024)"),
				Eligibility:  str("Employees with qualifying plans"),
				MinAmount:    str("Varies by plan"),
				MaxAmount:    str("$23,000 (under 50)"),
			},
			{
				Name:         "IRA (Individual Retirement Account)",
				Tenure:       "Until retirement",
				InterestRate: "Variable",
				KeyFeatures:  []string{"Tax advantages", "Investment flexibility", "Contribution limits", "Rollover options"},
				TaxBenefits:  str("Up to $7,000 annually (2024)"),
				Eligibility:  str("All income earners"),
				MinAmount:    str("No minimum"),
				MaxAmount:    str("$7,000 (under 50)"),
			},
		},
		Regulations: []domain.TaxRegulation{
			{
				Regime: str("Federal"),
				TaxSlabs: []domain.TaxSlab{
					{Range: "$0 - $11,000", Rate: "10%", Amount: "Up to $1,100"},
					{Range: "$11,001 - $44,725", Rate: "12%", Amount: "$1,100 + 12% of excess"},
					{Range: "$44,726 - $95,375", Rate: "22%", Amount: "$5,147 + 22% of excess"},
					{Range: "$95,376 - $182,050", Rate: "24%", Amount: "$16,290 + 24% of excess"},
					{Range: "$182,051 - $231,250", Rate: "32%", Amount: "$37,104 + 32% of excess"},
					{Range: "$231,251 - $578,125", Rate: "35%", Amount: "$52,832 + 35% of excess"},
					{Range: "Above $578,126", Rate: "37%", Amount: "$174,238.25 + 37% of excess"},
				},
				Deductions: []domain.Deduction{
					{Section: "Standard", Name: "Standard Deduction", Limit: "$14,600", Description: "Standard deduction for single filers (2024)"},
					{Section: "401k", Name: "401(k) Contributions", Limit: "$23,000", Description: "Pre-tax retirement contributions"},
				},
				OtherTaxes: []domain.OtherTax{
					{Name: "Social Security", Rate: "6.2%", Description: "Up to wage base limit"},
					{Name: "Medicare", Rate: "1.45%", Description: "No wage limit"},
				},
			},
		},
		Recommendations: []domain.Recommendation{
			{
				AgeGroup:        "20-30",
				Occupation:      "All",
				InstrumentTypes: []string{"401(k)", "S&P 500", "Growth Stocks"},
				Schemes:         []string{"401(k)", "IRA"},
				Description:     "Maximize employer 401(k) matching and invest in growth-oriented funds for long-term wealth building.",
			},
		},
	}
}
