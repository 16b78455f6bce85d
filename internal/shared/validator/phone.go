package validator

import (
	"github.com/go-playground/validator/v10"
	"regexp"
)

var (
	// phoneRegex matches Korean mobile numbers
	// Formats: 010-1234-5678 or 01012345678
	phoneRegex = regexp.MustCompile(`^01[0-9]-?[0-9]{4}-?[0-9]{4}$`)

	// intlPhoneRegex accepts overseas agency and customer numbers
	// Formats: +82-2-123-4567, +1 212 555 0100, 02-123-4567
	intlPhoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\- ]{6,19}$`)
)

// ValidatePhone validates a Korean mobile phone number
// This is a common validator used across multiple domains
func ValidatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	return phoneRegex.MatchString(phone)
}

// ValidateIntlPhone validates a loosely formatted domestic or international number
func ValidateIntlPhone(fl validator.FieldLevel) bool {
	return intlPhoneRegex.MatchString(fl.Field().String())
}
