// Package validator provides small, composable validation rules for the
// values a donor types into the donation form and for the numbers in the
// project catalog.
//
// A Rule pairs a Check function with translation-friendly error metadata.
// Rules are evaluated with Apply, which collects every failure into a
// ValidationErrors slice, or with First, which stops at the first failure and
// is what a per-field form check wants.
//
// # Rule families
//
//   - string_rules.go: RequiredString, MinRunes, MaxRunes, WithMessage
//   - format_rules.go: ValidEmail, ValidTaiwanPhone
//   - identifier_rules.go: ValidNationalID, NationalIDChecksum
//   - financial_rules.go: PositiveAmount, NonNegativeAmount, AmountRange
//   - collection_rules.go: RequiredSlice, Unique
//   - choice_rules.go: InList
//
// The package holds no mutable state. Regular expressions and the national ID
// letter table are package-level values built once at init, so every rule is
// safe for concurrent use.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("name", name),
//	    validator.ValidEmail("email", email),
//	    validator.PositiveAmount("amount", amount),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Map() is ready for a JSON error body
//	}
//
// ValidationErrors matches ErrValidationFailed through errors.Is.
package validator
