package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/utaipei/fundraising/pkg/funding"
	"github.com/utaipei/fundraising/pkg/i18n"
	"github.com/utaipei/fundraising/pkg/logger"
	"github.com/utaipei/fundraising/pkg/share"
)

// projects lists projects, optionally narrowed by ?category= and ?q=.
func (a *API) projects(w http.ResponseWriter, r *http.Request) {
	ps := a.catalog.ProjectsByCategory(r.URL.Query().Get("category"))

	if q := r.URL.Query().Get("q"); q != "" {
		matched := make(map[string]bool)
		for _, p := range a.catalog.Search(q) {
			matched[p.ID] = true
		}
		filtered := ps[:0]
		for _, p := range ps {
			if matched[p.ID] {
				filtered = append(filtered, p)
			}
		}
		ps = filtered
	}

	a.list(w, a.projectViews(ps), len(ps))
}

func (a *API) project(w http.ResponseWriter, r *http.Request) {
	p, err := a.catalog.Project(chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, a.projectView(p))
}

func (a *API) projectShare(w http.ResponseWriter, r *http.Request) {
	p, err := a.catalog.Project(chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	amount, err := queryAmount(r, "amount", 0)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	u, err := share.ProjectURL(a.baseURL, p.ID, amount)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	text := r.URL.Query().Get("text")
	if text == "" {
		text = a.tr.T(i18n.GetLocale(r.Context()), "share.project_text", "project", p.Name)
	}

	qr := "/v1/projects/" + p.ID + "/qr.png"
	if amount > 0 {
		qr += "?amount=" + strconv.FormatInt(amount, 10)
	}

	a.ok(w, shareView{URL: u, Text: text, QRCodeURL: qr, Links: share.All(u, text)})
}

func (a *API) projectQRCode(w http.ResponseWriter, r *http.Request) {
	p, err := a.catalog.Project(chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	amount, err := queryAmount(r, "amount", 0)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	size, err := queryAmount(r, "size", int64(a.qrSize))
	if err != nil {
		a.fail(w, r, err)
		return
	}

	u, err := share.ProjectURL(a.baseURL, p.ID, amount)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	key := qrKey{url: u, size: int(min(size, share.MaxQRSize))}
	png, err := a.qrCache.GetOrLoad(key, func() ([]byte, error) {
		return share.QRCode(key.url, key.size)
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		a.log.WarnContext(r.Context(), "write qr code", logger.Error(err), logger.ProjectID(p.ID))
	}
}

func (a *API) donors(w http.ResponseWriter, r *http.Request) {
	lang := i18n.GetLocale(r.Context())
	donors := a.catalog.Donors()
	out := make([]donorView, 0, len(donors))
	for _, d := range donors {
		out = append(out, a.donorView(lang, d))
	}
	a.list(w, out, len(out))
}

func (a *API) honorWall(w http.ResponseWriter, r *http.Request) {
	lang := i18n.GetLocale(r.Context())
	groups := a.catalog.HonorWall()
	out := make([]honorWallGroup, 0, len(groups))
	for _, g := range groups {
		donors := make([]donorView, 0, len(g.Donors))
		for _, d := range g.Donors {
			donors = append(donors, a.donorView(lang, d))
		}
		out = append(out, honorWallGroup{Tier: a.tierView(lang, g.Tier), Donors: donors})
	}
	a.list(w, out, len(out))
}

func (a *API) presets(w http.ResponseWriter, r *http.Request) {
	presets := a.catalog.Presets()
	out := make([]presetView, 0, len(presets))
	for _, p := range presets {
		out = append(out, presetView{
			AmountPreset:    p,
			AmountFormatted: funding.FormatCurrency(p.Amount),
			Tier:            funding.RecognitionTier(p.Amount),
		})
	}
	a.list(w, out, len(out))
}

func (a *API) categories(w http.ResponseWriter, r *http.Request) {
	cs := a.catalog.Categories()
	a.list(w, cs, len(cs))
}

func (a *API) paymentMethods(w http.ResponseWriter, r *http.Request) {
	ms := a.catalog.PaymentMethods()
	a.list(w, ms, len(ms))
}

func (a *API) faq(w http.ResponseWriter, r *http.Request) {
	fs := a.catalog.FAQ()
	a.list(w, fs, len(fs))
}

func (a *API) school(w http.ResponseWriter, r *http.Request) {
	a.ok(w, a.catalog.School())
}

func (a *API) stats(w http.ResponseWriter, r *http.Request) {
	s := a.catalog.Stats()
	a.ok(w, statsView{
		Stats:           s,
		GoalFormatted:   funding.FormatCurrency(s.Goal),
		RaisedFormatted: funding.FormatCurrency(s.Raised),
	})
}
