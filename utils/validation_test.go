package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last+tag@sub.example.co",
		"  padded@example.com  ",
	}
	for _, email := range valid {
		ok, _ := ValidateEmail(email)
		assert.True(t, ok, "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing@tld",
		"@example.com",
		"user@.com",
	}
	for _, email := range invalid {
		ok, msg := ValidateEmail(email)
		assert.False(t, ok, "expected %q to be invalid", email)
		assert.NotEmpty(t, msg)
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Password1", true},
		{"aB3defgh", true},
		{"Sh0rt7", false},     // too short
		{"alllower1", false},  // no uppercase
		{"ALLUPPER1", false},  // no lowercase
		{"NoNumbers", false},  // no digit
		{"", false},
	}
	for _, tc := range cases {
		ok, msg := ValidatePassword(tc.password)
		assert.Equal(t, tc.ok, ok, "password %q", tc.password)
		if !tc.ok {
			assert.NotEmpty(t, msg)
		}
	}
}

func TestValidateDisplayName(t *testing.T) {
	ok, _ := ValidateDisplayName("Jo")
	assert.True(t, ok)

	ok, _ = ValidateDisplayName("  J  ") // trimmed to 1 char
	assert.False(t, ok)

	ok, _ = ValidateDisplayName(strings.Repeat("a", 100))
	assert.True(t, ok)

	ok, _ = ValidateDisplayName(strings.Repeat("a", 101))
	assert.False(t, ok)
}

func TestValidateAvatarURL(t *testing.T) {
	ok, _ := ValidateAvatarURL("https://cdn.example.com/avatar.png")
	assert.True(t, ok)

	ok, _ = ValidateAvatarURL("http://example.com/a")
	assert.True(t, ok)

	for _, bad := range []string{"", "not a url", "ftp://example.com/a", "javascript:alert(1)"} {
		ok, msg := ValidateAvatarURL(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
		assert.NotEmpty(t, msg)
	}
}

func fieldsOf(errs []FieldValidationError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateAddressFieldsAccepts(t *testing.T) {
	errs := ValidateAddressFields("Budi Santoso", "+62 812-3456-789", "Jl. Sudirman No. 1", "Jakarta", "Setiabudi", "DKI Jakarta", "12920")
	assert.Empty(t, errs)

	// Postal code is optional
	errs = ValidateAddressFields("Budi Santoso", "081234567890", "Jl. Sudirman No. 1", "Jakarta", "Setiabudi", "DKI Jakarta", "")
	assert.Empty(t, errs)
}

func TestValidateAddressFieldsRequired(t *testing.T) {
	errs := ValidateAddressFields("", "", "", "", "", "", "")
	fields := fieldsOf(errs)

	for _, required := range []string{"name", "phone", "addressLine", "city", "district", "province"} {
		assert.Contains(t, fields, required)
	}
	assert.NotContains(t, fields, "postalCode")
}

func TestValidateAddressFieldsMinLengths(t *testing.T) {
	errs := ValidateAddressFields("B", "12345", "Jl", "Jakarta", "Setiabudi", "DKI Jakarta", "")
	fields := fieldsOf(errs)

	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "addressLine")
	assert.NotContains(t, fields, "city")
}

func TestValidateAddressFieldsMaxLengths(t *testing.T) {
	long := strings.Repeat("x", 151)
	errs := ValidateAddressFields(strings.Repeat("x", 101), "081234567890", long, strings.Repeat("x", 101), "Setiabudi", "DKI Jakarta", strings.Repeat("1", 21))
	fields := fieldsOf(errs)

	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "addressLine")
	assert.Contains(t, fields, "city")
	assert.Contains(t, fields, "postalCode")
}

func TestValidateAddressFieldsPhoneCharacters(t *testing.T) {
	errs := ValidateAddressFields("Budi Santoso", "phone123", "Jl. Sudirman No. 1", "Jakarta", "Setiabudi", "DKI Jakarta", "")
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "phone")
}
