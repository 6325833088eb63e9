package donation

import (
	"fmt"
	"slices"
)

// Translator resolves translation keys. *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Localize replaces the message of a failed result with its translation.
// Valid results, results without a key and a nil translator are returned
// unchanged.
func Localize(res Result, tr Translator, lang string) Result {
	if res.Valid || res.TranslationKey == "" || tr == nil {
		return res
	}

	msg := tr.T(lang, res.TranslationKey, TranslationArgs(res.Params)...)
	if msg != "" && msg != res.TranslationKey {
		res.Message = msg
	}
	return res
}

// TranslationArgs flattens placeholder values into the key/value pairs
// Translator.T expects, ordered by key.
func TranslationArgs(params map[string]any) []string {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]string, 0, len(params)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(params[k]))
	}
	return args
}
