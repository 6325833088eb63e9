package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utaipei/fundraising/pkg/i18n"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t, i18n.WithDefaultLanguage("zh-TW"))

	var got string
	h := i18n.Middleware(tr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		target string
		want   string
	}{
		{"default", func(*http.Request) {}, "/", "zh-TW"},
		{"accept-language", func(r *http.Request) { r.Header.Set("Accept-Language", "en-GB") }, "/", "en"},
		{"cookie beats header", func(r *http.Request) {
			r.Header.Set("Accept-Language", "en")
			r.AddCookie(&http.Cookie{Name: "lang", Value: "zh-TW"})
		}, "/", "zh-TW"},
		{"query beats cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "lang", Value: "zh-TW"})
		}, "/?lang=en", "en"},
		{"unsupported query", func(*http.Request) {}, "/?lang=de", "zh-TW"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, rec.Header().Get("Content-Language"))
		})
	}
}
