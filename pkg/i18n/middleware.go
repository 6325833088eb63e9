package i18n

import (
	"net/http"
)

const (
	// LangParam is the query parameter and cookie name that override
	// Accept-Language.
	LangParam = "lang"
)

// Middleware negotiates the request language and stores it with SetLocale.
// Precedence: ?lang= query, lang cookie, Accept-Language header.
func Middleware(tr *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := tr.Match(requestedLanguage(r))
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

func requestedLanguage(r *http.Request) string {
	if lang := r.URL.Query().Get(LangParam); lang != "" {
		return lang
	}
	if c, err := r.Cookie(LangParam); err == nil && c.Value != "" {
		return c.Value
	}
	return r.Header.Get("Accept-Language")
}
