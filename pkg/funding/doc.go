// Package funding derives the display facts shown next to a fundraising
// project or donor: percent funded, donor recognition tier and formatted
// NT$ amounts.
//
// Every function is a pure transformation of its arguments. The tier table is
// a package-level, ordered, read-only slice, so calls can run concurrently
// without coordination.
//
//	p := funding.NewProgress(3_850_000, 5_000_000)
//	p.Percent                           // 77
//	funding.RecognitionTier(80_000)     // funding.Gold
//	funding.FormatCurrency(1_234_567)   // "NT$ 1,234,567"
package funding
