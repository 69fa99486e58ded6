package seed

import "github.com/SscSPs/global_finance_path/internal/core/domain"

func germany() Content {
	return Content{
		Instruments: []domain.FinancialInstrument{
			{
				Category:      domain.CategoryEquity,
				Name:          "DAX Stocks",
				Description:   "Blue-chip German stocks in DAX index",
				Features:      []string{"Strong economy", "Export focus", "Dividend tradition", "Euro stability"},
				RiskLevel:     domain.RiskMediumToHigh,
				MinInvestment: "€1",
				Taxation:      "Abgeltungsteuer applies",
			},
			{
				Category:      domain.CategoryDebt,
				Name:          "German Government Bonds (Bunds)",
				Description:   "Federal government bonds",
				Features:      []string{"AAA rating", "Benchmark status", "Low yields", "High safety"},
				RiskLevel:     domain.RiskVeryLow,
				MinInvestment: "€100",
				Taxation:      "25% withholding tax",
			},
		},
		Schemes: []domain.SavingsScheme{
			{
				Name:         "Riester Pension",
				Tenure:       "Until age 62+",
				InterestRate: "Variable",
				KeyFeatures:  []string{"Government subsidies", "Tax benefits", "Retirement planning", "Guaranteed minimum"},
				TaxBenefits:  str("Up to €2,100 annually"),
				Eligibility:  str("German employees"),
				MinAmount:    str("€60"),
				MaxAmount:    str("€2,100"),
			},
		},
		Regulations: []domain.TaxRegulation{
			{
				Regime: str("Standard"),
				TaxSlabs: []domain.TaxSlab{
					{Range: "€0 - €11,604", Rate: "0%", Amount: "Nil"},
					{Range: "€11,605 - €66,760", Rate: "14-42%", Amount: "Progressive rate"},
					{Range: "€66,761 - €277,825", Rate: "42%", Amount: "Standard rate"},
					{Range: "Above €277,826", Rate: "45%", Amount: "Top rate"},
				},
				Deductions: []domain.Deduction{
					{Section: "Standard", Name: "Basic Allowance", Limit: "€11,604", Description: "Tax-free basic allowance"},
				},
				OtherTaxes: []domain.OtherTax{
					{Name: "VAT (MwSt)", Rate: "7-19%", Description: "Value Added Tax"},
				},
			},
		},
	}
}
