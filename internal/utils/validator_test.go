// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type passwordFixture struct {
	Password string `validate:"strong_password"`
}

func TestStrongPassword(t *testing.T) {
	valid := []string{
		"Str0ng!pass",
		"An0ther#Good1",
		"xY9$abcd",
	}
	for _, pw := range valid {
		assert.NoError(t, ValidateStruct(&passwordFixture{Password: pw}), "expected %q to be accepted", pw)
	}

	invalid := []string{
		"short1!",          // too short
		"alllowercase1!",   // no uppercase
		"ALLUPPERCASE1!",   // no lowercase
		"NoNumbersHere!",   // no digit
		"NoSpecials123abc", // no special character
	}
	for _, pw := range invalid {
		assert.Error(t, ValidateStruct(&passwordFixture{Password: pw}), "expected %q to be rejected", pw)
	}
}

type registrationFixture struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,strong_password"`
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&registrationFixture{Email: "not-an-email", Password: "weak"})
	assert.Error(t, err)

	errs := GetValidationErrors(err)
	assert.Len(t, errs, 2)

	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")

	for _, e := range errs {
		assert.NotEmpty(t, e.Message)
	}
}
