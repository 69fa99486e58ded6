package seed

import "github.com/SscSPs/global_finance_path/internal/core/domain"

func mexico() Content {
	return Content{
		Instruments: []domain.FinancialInstrument{
			{
				Category:      domain.CategoryEquity,
				Name:          "Mexican Stocks (IPC)",
				Description:   "Shares in companies listed on Mexican stock exchange",
				Features:      []string{"Emerging market exposure", "Peso denomination", "Growth potential", "Volatility"},
				RiskLevel:     domain.RiskHigh,
				MinInvestment: "$100",
				Taxation:      "Capital gains tax applies",
			},
		},
		Schemes: []domain.SavingsScheme{
			{
				Name:         "AFORE (Retirement Funds)",
				Tenure:       "Until retirement",
				InterestRate: "Variable",
				KeyFeatures:  []string{"Mandatory retirement savings", "Government backing", "Professional management", "Portable"},
				TaxBenefits:  str("Tax deferred"),
				Eligibility:  str("All workers"),
				MinAmount:    str("Mandatory contribution"),
				MaxAmount:    str("No limit"),
			},
		},
		Regulations: []domain.TaxRegulation{
			{
				Regime: str("General"),
				TaxSlabs: []domain.TaxSlab{
					{Range: "$0.01 - $746.04", Rate: "1.92%", Amount: "Progressive"},
					{Range: "$746.05 - $6,224.67", Rate: "6.4%", Amount: "Progressive"},
					{Range: "$6,224.68 - $10,374.47", Rate: "10.88%", Amount: "Progressive"},
					{Range: "$10,374.48 - $12,934.82", Rate: "16%", Amount: "Progressive"},
					{Range: "Above $12,934.83", Rate: "30%", Amount: "Top rate"},
				},
				Deductions: []domain.Deduction{},
				OtherTaxes: []domain.OtherTax{
					{Name: "IVA", Rate: "16%", Description: "Value Added Tax"},
				},
			},
		},
	}
}
