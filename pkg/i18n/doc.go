// Package i18n serves the translated strings behind validation messages and
// tier labels. Donor-facing text ships in Traditional Chinese with an English
// fallback.
//
// Translations are YAML documents keyed by language at the top level:
//
//	zh-TW:
//	  donation:
//	    required: "此欄位為必填"
//
// They are read through a TranslationAdapter (MapAdapter for tests,
// FSAdapter for an embed.FS or any fs.FS) into an immutable Translator.
// Keys use dot notation and templates use named placeholders, %{name}.
//
// # Language negotiation
//
// Match picks the best supported language for an Accept-Language header
// using golang.org/x/text/language, so "zh-Hant-TW" and "zh-TW;q=0.8"
// resolve to the zh-TW catalogue and unknown languages fall back to the
// default. Middleware stores the result in the request context, where Tc and
// GetLocale read it.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
//	    i18n.WithDefaultLanguage("zh-TW"),
//	)
//	msg := tr.T("en", "donation.required")
package i18n
