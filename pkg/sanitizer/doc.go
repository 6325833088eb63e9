// Package sanitizer cleans donor-supplied text before it is validated,
// stored in a receipt request or written to logs.
//
// Helpers are grouped by concern:
//
//   - Strings: trimming, whitespace normalisation, HTML stripping and
//     length limits for free-text fields such as the donor message.
//   - Format: masking of e-mail addresses, phone numbers, national IDs and
//     donor names so personal data never reaches logs or the public honor
//     wall in clear text.
//   - Numeric: generic clamping used by the progress calculator.
//
// Every helper is a pure function. Apply and Compose chain them:
//
//	clean := sanitizer.Compose(
//	    sanitizer.StripHTML,
//	    sanitizer.NormalizeWhitespace,
//	)
//	msg := clean(req.Message)
package sanitizer
