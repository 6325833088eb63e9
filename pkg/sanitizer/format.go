package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// NameMask is the placeholder the honor wall uses for hidden characters.
const NameMask = "○"

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return email
	}

	first, size := utf8.DecodeRuneInString(local)
	return string(first) + strings.Repeat("*", utf8.RuneCountInString(local[size:])) + "@" + domain
}

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// MaskPhone shows only the last 3 digits.
func MaskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) <= 3 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-3) + digits[len(digits)-3:]
}

// MaskNationalID keeps the area letter and the last 3 digits, A123456789 -> A******789.
func MaskNationalID(id string) string {
	id = strings.TrimSpace(id)
	n := len(id)
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	return id[:1] + strings.Repeat("*", n-4) + id[n-3:]
}

// MaskName hides the middle of a personal name the way public donor lists
// do: 陳明德 -> 陳○德, 林華 -> 林○. Single-rune names are returned as is.
func MaskName(name string) string {
	runes := []rune(strings.TrimSpace(name))
	switch n := len(runes); {
	case n <= 1:
		return string(runes)
	case n == 2:
		return string(runes[0]) + NameMask
	default:
		return string(runes[0]) + strings.Repeat(NameMask, n-2) + string(runes[n-1])
	}
}
