// Package donation validates the donor form.
//
// Validate checks one field of a fixed kind (name, email, phone, nationalId)
// and always returns a Result, never an error: a required field left empty
// yields CodeRequired with the message "required field", a value that fails
// its pattern or checksum yields CodeInvalid with the rule's message, and an
// unknown kind is accepted. ValidateForm runs several fields at once and
// Submission.Validate adds the amount, project and payment method checks
// needed before a gift is forwarded.
//
// Messages are English; Localize swaps in the translation for the result's
// key, which is how the zh-TW wording reaches donors.
package donation
