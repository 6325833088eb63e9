package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Translator resolves translation keys. It is immutable after construction
// and safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger

	langs   []string
	matcher language.Matcher
}

// NewTranslator loads translations from the adapter and builds the language
// matcher. The default language is listed first so it wins ties.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   "en",
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("i18n: load translations: %w", err)
	}
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}
	t.translations = translations

	langs := make([]string, 0, len(translations))
	for lang := range translations {
		if lang != t.defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	if _, ok := translations[t.defaultLang]; ok {
		langs = append([]string{t.defaultLang}, langs...)
	}

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, errors.Join(ErrInvalidLanguage, fmt.Errorf("%q: %w", lang, err))
		}
		tags = append(tags, tag)
	}
	t.langs = langs
	t.matcher = language.NewMatcher(tags)

	return t, nil
}

// DefaultLanguage returns the configured fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the loaded languages, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// Match returns the supported language that best fits an Accept-Language
// header or a single language tag. Anything unrecognised resolves to the
// default language.
func (t *Translator) Match(header string) string {
	header = strings.TrimSpace(header)
	if header == "" || len(t.langs) == 0 {
		return t.defaultLang
	}
	if _, ok := t.translations[header]; ok {
		return header
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// HasTranslation reports whether key resolves to a string in lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key into lang. Args are name/value pairs substituted into
// %{name} placeholders. Missing keys fall back to the default language and
// then to the key itself.
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Td(lang, key, "", args...)
}

// Td is T with an explicit default returned when the key is missing
// everywhere.
func (t *Translator) Td(lang, key, def string, args ...string) string {
	if key == "" {
		return def
	}

	tmpl, ok := t.lookup(lang, key)
	if !ok && lang != t.defaultLang {
		tmpl, ok = t.lookup(t.defaultLang, key)
	}
	if !ok {
		if t.logMissing {
			t.logger.Warn("missing translation", slog.String("lang", lang), slog.String("key", key))
		}
		switch {
		case def != "":
			tmpl = def
		case t.fallbackToKey:
			return key
		default:
			return ""
		}
	}

	return substitute(tmpl, args)
}

// Tc translates using the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	lang := GetLocale(ctx)
	if lang == "" {
		lang = t.defaultLang
	}
	return t.T(lang, key, args...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	translations, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	var current any = translations
	for part := range strings.SplitSeq(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		if current, ok = m[part]; !ok {
			return "", false
		}
	}

	s, ok := current.(string)
	return s, ok
}

func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := params[name]; ok {
			return v
		}
		return match
	})
}
