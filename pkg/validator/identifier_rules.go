package validator

import "regexp"

var nationalIDRegex = regexp.MustCompile(`^[A-Z][12]\d{8}$`)

// nationalIDLetterCodes maps the leading letter of a Taiwan national ID to
// its two-digit area code. The order is the one issued by the Ministry of the
// Interior (I, O, W and the X/Y pair are out of alphabetical sequence) and is
// part of the checksum.
var nationalIDLetterCodes = map[byte]int{
	'A': 10, 'B': 11, 'C': 12, 'D': 13, 'E': 14, 'F': 15, 'G': 16, 'H': 17,
	'J': 18, 'K': 19, 'L': 20, 'M': 21, 'N': 22, 'P': 23, 'Q': 24, 'R': 25,
	'S': 26, 'T': 27, 'U': 28, 'V': 29, 'X': 30, 'Y': 31, 'W': 32, 'Z': 33,
	'I': 34, 'O': 35,
}

// NationalIDChecksum reports whether id has the Taiwan national ID shape
// (uppercase letter, gender digit 1 or 2, eight digits) and a valid check digit.
//
// The letter code contributes tens + ones*9, digits 1 through 8 are weighted
// 8 down to 1, and the final digit is added as is. The total must be a
// multiple of 10.
func NationalIDChecksum(id string) bool {
	if !nationalIDRegex.MatchString(id) {
		return false
	}

	code, ok := nationalIDLetterCodes[id[0]]
	if !ok {
		return false
	}

	sum := code/10 + (code%10)*9
	for i := 1; i < 9; i++ {
		sum += int(id[i]-'0') * (9 - i)
	}
	sum += int(id[9] - '0')

	return sum%10 == 0
}

// ValidNationalID validates a Taiwan national identification number,
// including its check digit. Empty values fail; wrap it with an optional
// check when the field is not mandatory.
func ValidNationalID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return NationalIDChecksum(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid national ID number",
			TranslationKey: "validation.national_id",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
