package seed

import "github.com/SscSPs/global_finance_path/internal/core/domain"

func india() Content {
	return Content{
		Instruments: []domain.FinancialInstrument{
			{
				Category:      domain.CategoryEquity,
				Name:          "Stocks & Shares",
				Description:   "Direct ownership in companies listed on stock exchanges",
				Features:      []string{"High growth potential", "Dividend income", "Voting rights", "Market volatility"},
				RiskLevel:     domain.RiskHigh,
				MinInvestment: "₹1",
				Taxation:      "LTCG: 10% above ₹1L, STCG: 15%",
			},
			{
				Category:      domain.CategoryEquity,
				Name:          "Mutual Funds",
				Description:   "Professionally managed investment pools",
				Features:      []string{"Diversification", "Professional management", "SIP options", "Liquidity"},
				RiskLevel:     domain.RiskMediumToHigh,
				MinInvestment: "₹500",
				Taxation:      "Based on holding period and fund type",
			},
			{
				Category:      domain.CategoryDebt,
				Name:          "Government Bonds",
				Description:   "Fixed-income securities issued by government",
				Features:      []string{"Capital protection", "Fixed returns", "Government backing", "Tax efficiency"},
				RiskLevel:     domain.RiskLow,
				MinInvestment: "₹1,000",
				Taxation:      "Interest taxable as per slab",
			},
			{
				Category:      domain.CategoryDerivatives,
				Name:          "Futures & Options",
				Description:   "Derivative contracts for hedging and speculation",
				Features:      []string{"Leverage", "Hedging capability", "Settlement options", "High risk"},
				RiskLevel:     domain.RiskVeryHigh,
				MinInvestment: "Margin based",
				Taxation:      "Business income taxation",
			},
			{
				Category:      domain.CategoryMoneyMarket,
				Name:          "Treasury Bills",
				Description:   "Short-term government securities",
				Features:      []string{"Government backing", "High liquidity", "Short tenure", "Competitive rates"},
				RiskLevel:     domain.RiskVeryLow,
				MinInvestment: "₹25,000",
				Taxation:      "Interest taxable as per slab",
			},
			{
				Category:      domain.CategoryForex,
				Name:          "Currency Derivatives",
				Description:   "Foreign exchange trading instruments",
				Features:      []string{"Currency hedging", "High volatility", "Leverage available", "Global exposure"},
				RiskLevel:     domain.RiskVeryHigh,
				MinInvestment: "Margin based",
				Taxation:      "Business income taxation",
			},
		},
		Schemes: []domain.SavingsScheme{
			{
				Name:         "Public Provident Fund (PPF)",
				Tenure:       "15 years",
				InterestRate: "7.1% p.a.",
				KeyFeatures:  []string{"Tax-free interest", "EEE status", "Loan facility", "Partial withdrawal"},
				TaxBenefits:  str("Section 80C deduction up to ₹1.5L"),
				Eligibility:  str("Indian residents"),
				MinAmount:    str("₹500"),
				MaxAmount:    str("₹1,50,000"),
			},
			{
				Name:         "National Savings Certificate (NSC)",
				Tenure:       "5 years",
				InterestRate: "6.8% p.a.",
				KeyFeatures:  []string{"Fixed interest", "Government backing", "Compounding benefits", "Transferable"},
				TaxBenefits:  str("Section 80C deduction"),
				Eligibility:  str("Indian residents above 18"),
				MinAmount:    str("₹1,000"),
				MaxAmount:    str("No limit"),
			},
			{
				Name:         "Senior Citizens Savings Scheme",
				Tenure:       "5 years",
				InterestRate: "8.2% p.a.",
				KeyFeatures:  []string{"High interest", "Quarterly payouts", "Extension allowed", "Safety"},
				TaxBenefits:  str("Section 80C deduction up to ₹1.5L"),
				Eligibility:  str("Age 60+ or 55+ (retired)"),
				MinAmount:    str("₹1,000"),
				MaxAmount:    str("₹30,00,000"),
			},
			{
				Name:         "Sukanya Samriddhi Account",
				Tenure:       "21 years",
				InterestRate: "8.2% p.a.",
				KeyFeatures:  []string{"For girl child", "Tax-free interest", "Partial withdrawal", "Education focus"},
				TaxBenefits:  str("Section 80C deduction, EEE benefits"),
				Eligibility:  str("Girl child below 10 years"),
				MinAmount:    str("₹250"),
				MaxAmount:    str("₹1,50,000"),
			},
			{
				Name:         "Kisan Vikas Patra (KVP)",
				Tenure:       "Variable (doubles money)",
				InterestRate: "6.9% p.a.",
				KeyFeatures:  []string{"Money doubles", "Transferable", "Loan against certificate", "Post office scheme"},
				TaxBenefits:  str("None"),
				Eligibility:  str("Indian residents"),
				MinAmount:    str("₹1,000"),
				MaxAmount:    str("No limit"),
			},
			{
				Name:         "Fixed Deposits",
				Tenure:       "1-5 years",
				InterestRate: "3.5-7.5% p.a.",
				KeyFeatures:  []string{"Fixed rates", "Bank/Post office", "Premature withdrawal", "Safe investment"},
				TaxBenefits:  str("None (TDS applicable)"),
				Eligibility:  str("All residents"),
				MinAmount:    str("₹1,000"),
				MaxAmount:    str("No limit"),
			},
		},
		Regulations: []domain.TaxRegulation{
			{
				Regime: str("New"),
				TaxSlabs: []domain.TaxSlab{
					{Range: "₹0 - ₹4,00,000", Rate: "0%", Amount: "Nil"},
					{Range: "₹4,00,001 - ₹8,00,000", Rate: "5%", Amount: "Up to ₹20,000"},
					{Range: "₹8,00,001 - ₹12,00,000", Rate: "10%", Amount: "₹20,000 + 10% of excess"},
					{Range: "₹12,00,001 - ₹16,00,000", Rate: "15%", Amount: "₹60,000 + 15% of excess"},
					{Range: "₹16,00,001 - ₹20,00,000", Rate: "20%", Amount: "₹1,20,000 + 20% of excess"},
					{Range: "₹20,00,001 - ₹24,00,000", Rate: "25%", Amount: "₹2,00,000 + 25% of excess"},
					{Range: "Above ₹24,00,000", Rate: "30%", Amount: "₹3,00,000 + 30% of excess"},
				},
				Deductions: []domain.Deduction{},
				OtherTaxes: []domain.OtherTax{
					{Name: "GST", Rate: "5-28%", Description: "Goods and Services Tax on consumption"},
					{Name: "Securities Transaction Tax", Rate: "0.001-0.1%", Description: "On securities transactions"},
				},
			},
			{
				Regime: str("Old"),
				TaxSlabs: []domain.TaxSlab{
					{Range: "₹0 - ₹2,50,000", Rate: "0%", Amount: "Nil"},
					{Range: "₹2,50,001 - ₹5,00,000", Rate: "5%", Amount: "Up to ₹12,500"},
					{Range: "₹5,00,001 - ₹10,00,000", Rate: "20%", Amount: "₹12,500 + 20% of excess"},
					{Range: "Above ₹10,00,000", Rate: "30%", Amount: "₹1,12,500 + 30% of excess"},
				},
				Deductions: []domain.Deduction{
					// Says "Provident Fund" rather than "PPF" so a PPF search in IN matches only the scheme.
					{Section: "80C", Name: "Investments & Insurance", Limit: "₹1,50,000", Description: "Provident Fund, ELSS, Life Insurance, etc."},
					{Section: "80D", Name: "Health Insurance Premium", Limit: "₹75,000", Description: "Medical insurance premiums"},
					{Section: "24(b)", Name: "Home Loan Interest", Limit: "₹2,00,000", Description: "Interest on home loan"},
					{Section: "80G", Name: "Donations", Limit: "10-100%", Description: "Charitable donations"},
				},
				OtherTaxes: []domain.OtherTax{
					{Name: "GST", Rate: "5-28%", Description: "Goods and Services Tax on consumption"},
				},
			},
		},
		Recommendations: []domain.Recommendation{
			{
				AgeGroup:        "20-30",
				Occupation:      "Salaried",
				InstrumentTypes: []string{"Equity Mutual Funds", "SIPs", "PPF"},
				Schemes:         []string{"PPF", "ELSS"},
				Description:     "Focus on growth with high equity allocation. Start SIPs early for long-term wealth creation.",
			},
			{
				AgeGroup:        "30-45",
				Occupation:      "Self-Employed",
				InstrumentTypes: []string{"Balanced Funds", "NPS", "Term Insurance"},
				Schemes:         []string{"NPS", "PPF", "NSC"},
				Description:     "Balanced approach with retirement planning focus. Mix of equity and debt instruments.",
			},
			{
				AgeGroup:        "45+",
				Occupation:      "All",
				InstrumentTypes: []string{"Fixed Deposits", "Government Securities", "Conservative Funds"},
				Schemes:         []string{"Senior Citizens Savings Scheme", "NSC", "PPF"},
				Description:     "Conservative approach with capital protection and regular income focus.",
			},
		},
	}
}
