package dto

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCountryCode(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"IN", true},
		{"US", true},
		{"in", false},
		{"I", false},
		{"IND", false},
		{"I1", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCountryCode(tt.in))
		})
	}
}

func TestRegisterValidators_CreateCountryRequest(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterValidators(v))

	valid := CreateCountryRequest{Code: "FR", Name: "France", Currency: "EUR", CurrencySymbol: "€"}
	assert.NoError(t, v.Struct(valid))

	invalid := valid
	invalid.Code = "fr"
	err := v.Struct(invalid)
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, CountryCodeTag, verrs[0].Tag())
}

func TestToInstrumentResponse_NilFeaturesBecomeEmpty(t *testing.T) {
	res := ToInstrumentResponse(&domain.FinancialInstrument{ID: "1", Name: "Stocks"})

	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"features":[]`)
}

func TestToSchemeResponse_OptionalFieldsAreNull(t *testing.T) {
	res := ToSchemeResponse(&domain.SavingsScheme{
		ID:          "s1",
		Name:        "Public Provident Fund (PPF)",
		KeyFeatures: []string{"EEE"},
		MinAmount:   domain.StringPtr("₹500"),
	})

	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"minAmount":"₹500"`)
	assert.Contains(t, string(out), `"maxAmount":null`)
	assert.Contains(t, string(out), `"taxBenefits":null`)
}

func TestToTaxRegulationResponse_PreservesAbsentVersusEmpty(t *testing.T) {
	reg := domain.TaxRegulation{
		ID:         "r1",
		Regime:     domain.StringPtr("Old"),
		TaxSlabs:   []domain.TaxSlab{{Range: "Up to ₹2.5L", Rate: "0%", Amount: "₹0"}},
		Deductions: []domain.Deduction{},
	}

	res := ToTaxRegulationResponse(&reg)

	require.Len(t, res.TaxSlabs, 1)
	assert.Equal(t, "Up to ₹2.5L", res.TaxSlabs[0].Range)
	assert.NotNil(t, res.Deductions)
	assert.Empty(t, res.Deductions)
	assert.Nil(t, res.OtherTaxes)
	assert.Equal(t, "Old", *res.Regime)
}

func TestToDomainDeductions_NilStaysNil(t *testing.T) {
	assert.Nil(t, ToDomainDeductions(nil))
	assert.Nil(t, ToDomainOtherTaxes(nil))
	assert.Equal(t, []domain.Deduction{}, ToDomainDeductions([]DeductionDTO{}))
}

func TestToSearchResponse_EmptyCollectionsSerialiseAsArrays(t *testing.T) {
	out, err := json.Marshal(ToSearchResponse(&domain.SearchResult{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"instruments":[],"schemes":[],"regulations":[]}`, string(out))
}
