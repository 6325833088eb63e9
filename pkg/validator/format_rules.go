package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// Deliberately loose: something@something.something, no whitespace and a
	// single @. Deliverability is checked by sending the receipt.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Taiwan mobile (09 + 8 digits) or landline with a 1-2 digit area code
	// after the trunk 0, an optional hyphen and a 6-8 digit subscriber number.
	twPhoneRegex = regexp.MustCompile(`^(09\d{8}|0\d{1,2}-?\d{6,8})$`)
)

// ValidEmail validates the basic local@domain.tld shape of an email address.
// The value is matched as given, surrounding whitespace makes it invalid.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidTaiwanPhone validates a Taiwan mobile or landline number.
// Whitespace anywhere in the value is ignored, so "0912 345 678" passes.
func ValidTaiwanPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return twPhoneRegex.MatchString(stripSpaces(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
