package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utaipei/fundraising/internal/api"
	"github.com/utaipei/fundraising/locales"
	"github.com/utaipei/fundraising/pkg/catalog"
	"github.com/utaipei/fundraising/pkg/i18n"
	"github.com/utaipei/fundraising/pkg/ratelimiter"
	"github.com/utaipei/fundraising/pkg/requestid"
)

var testNow = time.Date(2025, 3, 30, 12, 0, 0, 0, time.FixedZone("CST", 8*60*60))

func newHandler(t *testing.T) http.Handler {
	t.Helper()

	ctx := context.Background()
	c, err := catalog.Default(ctx)
	require.NoError(t, err)

	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage("zh-TW"),
	)
	require.NoError(t, err)

	return api.New(c, tr,
		api.WithBaseURL("https://give.example.edu/"),
		api.WithClock(func() time.Time { return testNow }),
	).Handler()
}

type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Meta  map[string]any   `json:"meta"`
	Error *api.ErrorDetail `json:"error"`
}

type request struct {
	method string
	path   string
	body   string
	lang   string
	ctype  string
}

func do(t *testing.T, h http.Handler, req request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	if req.method == "" {
		req.method = http.MethodGet
	}
	r := httptest.NewRequest(req.method, req.path, strings.NewReader(req.body))
	if req.body != "" {
		ct := req.ctype
		if ct == "" {
			ct = "application/json"
		}
		r.Header.Set("Content-Type", ct)
	}
	if req.lang != "" {
		r.Header.Set("Accept-Language", req.lang)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	rec, _ := do(t, newHandler(t), request{path: "/healthz"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))
}

func TestValidateField(t *testing.T) {
	t.Parallel()
	h := newHandler(t)

	type result struct {
		Valid          bool   `json:"valid"`
		Message        string `json:"message"`
		Code           string `json:"code"`
		TranslationKey string `json:"translation_key"`
	}

	tests := []struct {
		name string
		body string
		lang string
		want result
	}{
		{"valid email", `{"kind":"email","value":"a@b.c"}`, "", result{Valid: true}},
		{"invalid email zh", `{"kind":"email","value":"not-an-email"}`, "",
			result{Message: "請輸入有效的電子郵件", Code: "invalid", TranslationKey: "donation.email"}},
		{"invalid email en", `{"kind":"email","value":"not-an-email"}`, "en-US,en;q=0.9",
			result{Message: "Please enter a valid email address", Code: "invalid", TranslationKey: "donation.email"}},
		{"required name", `{"kind":"name","value":"  "}`, "",
			result{Message: "此欄位為必填", Code: "required", TranslationKey: "donation.required"}},
		{"short name", `{"kind":"name","value":"陳"}`, "",
			result{Message: "請輸入姓名（至少2個字）", Code: "invalid", TranslationKey: "donation.name"}},
		{"national id checksum", `{"kind":"nationalId","value":"A123456788"}`, "",
			result{Message: "請輸入有效的身分證字號", Code: "invalid", TranslationKey: "donation.national_id"}},
		{"national id optional", `{"kind":"nationalId","value":""}`, "", result{Valid: true}},
		{"phone", `{"kind":"phone","value":"0912345678"}`, "", result{Valid: true}},
		{"unknown kind", `{"kind":"shoeSize","value":""}`, "", result{Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := do(t, h, request{method: http.MethodPost, path: "/v1/validate", body: tt.body, lang: tt.lang})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.want, decodeData[result](t, env))
		})
	}
}

func TestValidateField_BadRequests(t *testing.T) {
	t.Parallel()
	h := newHandler(t)

	tests := []struct {
		name   string
		body   string
		ctype  string
		status int
		code   string
	}{
		{"malformed", `{"kind":`, "", http.StatusBadRequest, api.CodeBadRequest},
		{"unknown field", `{"kind":"email","value":"a@b.c","extra":1}`, "", http.StatusBadRequest, api.CodeBadRequest},
		{"trailing data", `{"kind":"email","value":"a@b.c"} {}`, "", http.StatusBadRequest, api.CodeBadRequest},
		{"wrong type", `{"kind":"email","value":42}`, "", http.StatusBadRequest, api.CodeBadRequest},
		{"form encoded", `kind=email`, "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType, api.CodeUnsupportedMedia},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := do(t, h, request{method: http.MethodPost, path: "/v1/validate", body: tt.body, ctype: tt.ctype})
			assert.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestValidateForm(t *testing.T) {
	t.Parallel()

	body := `{"fields":[{"kind":"name","value":"林華"},{"kind":"email","value":"x"},{"kind":"phone","value":""}]}`
	rec, env := do(t, newHandler(t), request{method: http.MethodPost, path: "/v1/validate/form", body: body, lang: "en"})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[struct {
		Valid   bool                       `json:"valid"`
		Failed  []string                   `json:"failed"`
		Results map[string]json.RawMessage `json:"results"`
	}](t, env)
	assert.False(t, got.Valid)
	assert.Equal(t, []string{"email", "phone"}, got.Failed)
	assert.Len(t, got.Results, 3)
	assert.Contains(t, string(got.Results["phone"]), "This field is required")
}

const validDonation = `{
	"name": " 陳明德 ",
	"email": "Donor@Example.com",
	"phone": "0912 345 678",
	"nationalId": "a123456789",
	"projectId": "scholarship",
	"amount": 60000,
	"paymentMethod": "linepay",
	"message": "教育改變命運"
}`

func TestValidateDonation_Accepted(t *testing.T) {
	t.Parallel()

	rec, env := do(t, newHandler(t), request{method: http.MethodPost, path: "/v1/donations/validate", body: validDonation})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decodeData[map[string]any](t, env)
	assert.Equal(t, "陳○德", got["display_name"])
	assert.Equal(t, "A******789", got["national_id"])
	assert.NotContains(t, got["email"], "donor@")
	assert.Equal(t, "NT$ 60,000", got["amount_formatted"])
	assert.EqualValues(t, 2, got["impact_units"])
	assert.Equal(t, "可支持 1 項小型研究計畫", got["preset_impact"])
	assert.Equal(t, "https://give.example.edu/?amount=60000&project=scholarship", got["share_url"])

	tier := got["tier"].(map[string]any)
	assert.Equal(t, "gold", tier["tier"])
	assert.Equal(t, "金質級", tier["name"])

	method := got["payment_method"].(map[string]any)
	assert.Equal(t, "LINE Pay", method["name"])
}

func TestValidateDonation_Rejected(t *testing.T) {
	t.Parallel()

	body := `{"name":"陳明德","email":"nope","phone":"0912345678","nationalId":"A123456788","projectId":"moon-base","amount":0}`
	rec, env := do(t, newHandler(t), request{method: http.MethodPost, path: "/v1/donations/validate", body: body})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)

	assert.Equal(t, api.CodeValidation, env.Error.Code)
	assert.Equal(t, "資料驗證失敗", env.Error.Message)
	assert.Equal(t, map[string][]string{
		"amount":     {"請選擇或輸入捐款金額"},
		"email":      {"請輸入有效的電子郵件"},
		"nationalId": {"請輸入有效的身分證字號"},
		"projectId":  {"請選擇有效的捐款計畫"},
	}, env.Error.Details)
}

func TestProgress(t *testing.T) {
	t.Parallel()
	h := newHandler(t)

	rec, env := do(t, h, request{path: "/v1/progress?raised=2150000&goal=3000000"})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[map[string]any](t, env)
	assert.EqualValues(t, 72, got["percent"])
	assert.Equal(t, "NT$ 2,150,000", got["raised_formatted"])
	assert.Equal(t, "NT$ 850,000", got["remaining_formatted"])
	assert.Equal(t, false, got["funded"])

	_, env = do(t, h, request{path: "/v1/progress?raised=5000&goal=0"})
	assert.EqualValues(t, 0, decodeData[map[string]any](t, env)["percent"])

	_, env = do(t, h, request{path: "/v1/progress?raised=4000&goal=3000"})
	over := decodeData[map[string]any](t, env)
	assert.EqualValues(t, 100, over["percent"])
	assert.EqualValues(t, 0, over["remaining"])

	_, env = do(t, h, request{path: "/v1/progress?raised=50000000000000000&goal=90000000000000000"})
	large := decodeData[map[string]any](t, env)
	assert.EqualValues(t, 56, large["percent"])
	assert.Equal(t, "NT$ 90,000,000,000,000,000", large["goal_formatted"])

	_, env = do(t, h, request{path: "/v1/progress?raised=4611686018427387903&goal=9223372036854775807"})
	assert.EqualValues(t, 50, decodeData[map[string]any](t, env)["percent"])

	rec, env = do(t, h, request{path: "/v1/progress?raised=-1&goal=10"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, api.CodeBadRequest, env.Error.Code)
}

func TestTier(t *testing.T) {
	t.Parallel()
	h := newHandler(t)

	type tierResp struct {
		Amount int64 `json:"amount"`
		Tier   struct {
			Tier string `json:"tier"`
			Name string `json:"name"`
		} `json:"tier"`
		Next *struct {
			Shortfall int64 `json:"shortfall"`
		} `json:"next"`
	}

	_, env := do(t, h, request{path: "/v1/tiers/100000"})
	got := decodeData[tierResp](t, env)
	assert.Equal(t, "platinum", got.Tier.Tier)
	assert.Equal(t, "白金級", got.Tier.Name)
	assert.Nil(t, got.Next)

	_, env = do(t, h, request{path: "/v1/tiers/99999", lang: "en"})
	got = decodeData[tierResp](t, env)
	assert.Equal(t, "gold", got.Tier.Tier)
	assert.Equal(t, "Gold", got.Tier.Name)
	require.NotNil(t, got.Next)
	assert.Equal(t, int64(1), got.Next.Shortfall)

	_, env = do(t, h, request{path: "/v1/tiers/999"})
	assert.Equal(t, "regular", decodeData[tierResp](t, env).Tier.Tier)

	rec, _ := do(t, h, request{path: "/v1/tiers/lots"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, env = do(t, h, request{path: "/v1/tiers"})
	assert.EqualValues(t, 5, env.Meta["total"])
}

func TestProjects(t *testing.T) {
	t.Parallel()
	h := newHandler(t)

	tests := []struct {
		path  string
		total int
	}{
		{"/v1/projects", 8},
		{"/v1/projects?category=all", 8},
		{"/v1/projects?category=scholarship", 3},
		{"/v1/projects?category=scholarship&q=國際", 1},
		{"/v1/projects?q=獎學金", 2},
		{"/v1/projects?category=astronomy", 0},
	}
	for _, tt := range tests {
		rec, env := do(t, h, request{path: tt.path})
		require.Equal(t, http.StatusOK, rec.Code, tt.path)
		assert.EqualValues(t, tt.total, env.Meta["total"], tt.path)
	}
}

func TestProject(t *testing.T) {
	t.Parallel()
	h := newHandler(t)

	rec, env := do(t, h, request{path: "/v1/projects/emergency-aid"})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[map[string]any](t, env)
	assert.Equal(t, "緊急助學金", got["name"])
	assert.EqualValues(t, 2, got["days_left"])
	assert.Equal(t, true, got["urgent"])
	progress := got["progress"].(map[string]any)
	assert.EqualValues(t, 88, progress["percent"])
	assert.Equal(t, "NT$ 1,500,000", progress["goal_formatted"])

	rec, env = do(t, h, request{path: "/v1/projects/moon-base", lang: "en"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, api.CodeNotFound, env.Error.Code)
	assert.True(t, strings.HasPrefix(env.Error.Message, "Resource not found"))
}

func TestProjectShare(t *testing.T) {
	t.Parallel()

	rec, env := do(t, newHandler(t), request{path: "/v1/projects/scholarship/share?amount=5000"})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[struct {
		URL       string            `json:"url"`
		Text      string            `json:"text"`
		QRCodeURL string            `json:"qr_code_url"`
		Links     map[string]string `json:"links"`
	}](t, env)
	assert.Equal(t, "https://give.example.edu/?amount=5000&project=scholarship", got.URL)
	assert.Contains(t, got.Text, "清寒學生獎學金")
	assert.Equal(t, "/v1/projects/scholarship/qr.png?amount=5000", got.QRCodeURL)
	assert.Contains(t, got.Links["facebook"], "facebook.com/sharer")
	assert.Contains(t, got.Links["twitter"], "twitter.com/intent/tweet")
	assert.Contains(t, got.Links["line"], "social-plugins.line.me")
}

func TestProjectQRCode(t *testing.T) {
	t.Parallel()
	h := newHandler(t)

	rec, _ := do(t, h, request{path: "/v1/projects/research/qr.png?size=200"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	rec, _ = do(t, h, request{path: "/v1/projects/moon-base/qr.png"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDonors(t *testing.T) {
	t.Parallel()
	h := newHandler(t)

	_, env := do(t, h, request{path: "/v1/donors"})
	assert.EqualValues(t, 20, env.Meta["total"])
	donors := decodeData[[]map[string]any](t, env)
	assert.Equal(t, "財團法人育英基金會", donors[0]["name"])
	assert.Equal(t, "platinum", donors[0]["tier"].(map[string]any)["tier"])
	assert.Equal(t, "NT$ 500,000", donors[0]["amount_formatted"])

	_, env = do(t, h, request{path: "/v1/donors/honor-wall"})
	groups := decodeData[[]struct {
		Tier struct {
			Tier string `json:"tier"`
		} `json:"tier"`
		Donors []json.RawMessage `json:"donors"`
	}](t, env)
	require.Len(t, groups, 4)
	assert.Equal(t, "platinum", groups[0].Tier.Tier)
	assert.Len(t, groups[3].Donors, 7)
}

func TestRecentDonations(t *testing.T) {
	t.Parallel()

	_, env := do(t, newHandler(t), request{path: "/v1/donations/recent"})
	recent := decodeData[[]map[string]any](t, env)
	require.Len(t, recent, 8)
	assert.EqualValues(t, 300, recent[0]["ago_seconds"])
	assert.Equal(t, "體育選手培訓基金", recent[0]["project_name"])
}

func TestReferenceData(t *testing.T) {
	t.Parallel()
	h := newHandler(t)

	tests := []struct {
		path  string
		total int
	}{
		{"/v1/presets", 6},
		{"/v1/categories", 7},
		{"/v1/payment-methods", 4},
		{"/v1/faq", 6},
	}
	for _, tt := range tests {
		rec, env := do(t, h, request{path: tt.path})
		require.Equal(t, http.StatusOK, rec.Code, tt.path)
		assert.EqualValues(t, tt.total, env.Meta["total"], tt.path)
	}

	_, env := do(t, h, request{path: "/v1/stats"})
	stats := decodeData[map[string]any](t, env)
	assert.Equal(t, "NT$ 24,000,000", stats["raised_formatted"])
	assert.EqualValues(t, 67, stats["progress"].(map[string]any)["percent"])

	_, env = do(t, h, request{path: "/v1/school"})
	assert.Equal(t, "University of Taipei", decodeData[map[string]any](t, env)["name_en"])
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()
	h := newHandler(t)

	rec, env := do(t, h, request{path: "/v1/nowhere"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, api.CodeNotFound, env.Error.Code)

	rec, _ = do(t, h, request{method: http.MethodDelete, path: "/v1/stats"})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLanguageOverride(t *testing.T) {
	t.Parallel()

	rec, env := do(t, newHandler(t), request{
		method: http.MethodPost,
		path:   "/v1/validate?lang=en",
		body:   `{"kind":"phone","value":"123"}`,
		lang:   "zh-TW",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	assert.Contains(t, string(env.Data), "Please enter a valid phone number")
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, err := catalog.Default(ctx)
	require.NoError(t, err)
	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."))
	require.NoError(t, err)
	l, err := ratelimiter.New(ratelimiter.Config{Burst: 2, Refill: 1, Interval: time.Hour})
	require.NoError(t, err)

	h := api.New(c, tr, api.WithRateLimiter(l)).Handler()
	req := request{method: http.MethodPost, path: "/v1/validate", body: `{"kind":"email","value":"a@b.c"}`, lang: "en"}

	for range 2 {
		rec, _ := do(t, h, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, env := do(t, h, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.NotNil(t, env.Error)
	assert.Equal(t, api.CodeRateLimited, env.Error.Code)
	assert.Equal(t, "Too many requests, please try again later", env.Error.Message)

	rec, _ = do(t, h, request{path: "/v1/stats"})
	assert.Equal(t, http.StatusOK, rec.Code, "GET endpoints are not limited")
}
