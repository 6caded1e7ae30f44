package utils

import (
	"regexp"
	"strings"
)

var (
	phoneDigitsRegex = regexp.MustCompile(`^\+?[0-9][0-9\- ]{6,19}$`)
)

// ValidateAddressFields validates address fields according to business rules.
// Postal code is optional; the remaining fields are required.
func ValidateAddressFields(name, phone, addressLine, city, district, province, postalCode string) []FieldValidationError {
	errs := []FieldValidationError{}

	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, FieldValidationError{"name", "Recipient name is required"})
	} else {
		if len(name) < 2 {
			errs = append(errs, FieldValidationError{"name", "Recipient name must be at least 2 characters"})
		}
		if len(name) > 100 {
			errs = append(errs, FieldValidationError{"name", "Recipient name must not exceed 100 characters"})
		}
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		errs = append(errs, FieldValidationError{"phone", "Phone number is required"})
	} else {
		if len(phone) < 8 {
			errs = append(errs, FieldValidationError{"phone", "Phone number must be at least 8 characters"})
		} else if !phoneDigitsRegex.MatchString(phone) {
			errs = append(errs, FieldValidationError{"phone", "Phone number contains invalid characters"})
		}
	}

	addressLine = strings.TrimSpace(addressLine)
	if addressLine == "" {
		errs = append(errs, FieldValidationError{"addressLine", "Address line is required"})
	} else {
		if len(addressLine) < 3 {
			errs = append(errs, FieldValidationError{"addressLine", "Address line must be at least 3 characters"})
		}
		if len(addressLine) > 150 {
			errs = append(errs, FieldValidationError{"addressLine", "Address line must not exceed 150 characters"})
		}
	}

	city = strings.TrimSpace(city)
	if city == "" {
		errs = append(errs, FieldValidationError{"city", "City is required"})
	} else if len(city) > 100 {
		errs = append(errs, FieldValidationError{"city", "City must not exceed 100 characters"})
	}

	district = strings.TrimSpace(district)
	if district == "" {
		errs = append(errs, FieldValidationError{"district", "District is required"})
	} else if len(district) > 100 {
		errs = append(errs, FieldValidationError{"district", "District must not exceed 100 characters"})
	}

	province = strings.TrimSpace(province)
	if province == "" {
		errs = append(errs, FieldValidationError{"province", "Province is required"})
	} else if len(province) > 100 {
		errs = append(errs, FieldValidationError{"province", "Province must not exceed 100 characters"})
	}

	postalCode = strings.TrimSpace(postalCode)
	if len(postalCode) > 20 {
		errs = append(errs, FieldValidationError{"postalCode", "Postal code must not exceed 20 characters"})
	}

	return errs
}
