package seed

import "github.com/SscSPs/global_finance_path/internal/core/domain"

func spain() Content {
	return Content{
		Instruments: []domain.FinancialInstrument{
			{
				Category:      domain.CategoryEquity,
				Name:          "Spanish Stocks (IBEX 35)",
				Description:   "Shares in companies listed on Spanish stock exchanges",
				Features:      []string{"Dividend yields", "EU market access", "Euro stability", "Market volatility"},
				RiskLevel:     domain.RiskHigh,
				MinInvestment: "€1",
				Taxation:      "Capital gains tax applies",
			},
			{
				Category:      domain.CategoryDebt,
				Name:          "Spanish Government Bonds",
				Description:   "Government-issued debt securities",
				Features:      []string{"Government backing", "Fixed returns", "Euro denomination", "Low risk"},
				RiskLevel:     domain.RiskLow,
				MinInvestment: "€1,000",
				Taxation:      "Interest taxable as savings income",
			},
			{
				Category:      domain.CategoryEquity,
				Name:          "UCITS Funds",
				Description:   "EU-regulated mutual funds",
				Features:      []string{"EU regulation", "Diversification", "Professional management", "Liquidity"},
				RiskLevel:     domain.RiskMedium,
				MinInvestment: "€100",
				Taxation:      "Based on holding period",
			},
		},
		Schemes: []domain.SavingsScheme{
			{
				Name:         "Pension Plans (Planes de Pensiones)",
				Tenure:       "Until retirement",
				InterestRate: "Variable",
				KeyFeatures:  []string{"Tax benefits", "Long-term savings", "Retirement focus", "Professional management"},
				TaxBenefits:  str("Up to €1,500 annually"),
				Eligibility:  str("Spanish residents"),
				MinAmount:    str("€30"),
				MaxAmount:    str("€1,500 (tax benefit limit)"),
			},
			{
				Name:         "Fixed Deposits (Depósitos a Plazo)",
				Tenure:       "1 month - 5 years",
				InterestRate: "0.1% - 2.5%",
				KeyFeatures:  []string{"Capital guarantee", "Fixed returns", "Various terms", "FDIC equivalent protection"},
				TaxBenefits:  str("None"),
				Eligibility:  str("All residents"),
				MinAmount:    str("€500"),
				MaxAmount:    str("€100,000 (guaranteed)"),
			},
		},
		Regulations: []domain.TaxRegulation{
			{
				Regime: str("General"),
				TaxSlabs: []domain.TaxSlab{
					{Range: "€0 - €12,450", Rate: "19%", Amount: "Up to €2,365.50"},
					{Range: "€12,451 - €20,200", Rate: "24%", Amount: "€2,365.50 + 24% of excess"},
					{Range: "€20,201 - €35,200", Rate: "30%", Amount: "€4,225.50 + 30% of excess"},
					{Range: "€35,201 - €60,000", Rate: "37%", Amount: "€8,725.50 + 37% of excess"},
					{Range: "Above €60,000", Rate: "47%", Amount: "€17,901.50 + 47% of excess"},
				},
				Deductions: []domain.Deduction{
					{Section: "General", Name: "Personal Allowance", Limit: "€5,550", Description: "Basic personal allowance"},
					{Section: "Pension", Name: "Pension Contributions", Limit: "€1,500", Description: "Private pension contributions"},
				},
				OtherTaxes: []domain.OtherTax{
					{Name: "VAT (IVA)", Rate: "4-21%", Description: "Value Added Tax on goods and services"},
					{Name: "Wealth Tax", Rate: "0.2-3.75%", Description: "On net wealth above €700,000"},
				},
			},
		},
		Recommendations: []domain.Recommendation{
			{
				AgeGroup:        "20-30",
				Occupation:      "All",
				InstrumentTypes: []string{"UCITS Funds", "Spanish Stocks", "Pension Plans"},
				Schemes:         []string{"Pension Plans"},
				Description:     "Build long-term wealth with EU-regulated funds and early pension contributions.",
			},
		},
	}
}
