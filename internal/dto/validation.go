package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CountryCodeTag is the binding tag for two upper-case ASCII letters ("IN", "US").
const CountryCodeTag = "countrycode"

// IsCountryCode reports whether s has the shape of a country code.
func IsCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func validateCountryCode(fl validator.FieldLevel) bool {
	return IsCountryCode(fl.Field().String())
}

// RegisterValidators adds the custom binding rules used by the request DTOs.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation(CountryCodeTag, validateCountryCode); err != nil {
		return fmt.Errorf("failed to register %s validator: %w", CountryCodeTag, err)
	}
	return nil
}
