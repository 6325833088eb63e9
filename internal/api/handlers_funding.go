package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utaipei/fundraising/pkg/funding"
	"github.com/utaipei/fundraising/pkg/i18n"
)

func (a *API) progress(w http.ResponseWriter, r *http.Request) {
	raised, err := queryAmount(r, "raised", 0)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	goal, err := queryAmount(r, "goal", 0)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, newProgressView(funding.NewProgress(raised, goal)))
}

func (a *API) tiers(w http.ResponseWriter, r *http.Request) {
	lang := i18n.GetLocale(r.Context())
	all := funding.Tiers()
	out := make([]tierView, 0, len(all))
	for _, info := range all {
		out = append(out, a.tierView(lang, info))
	}
	a.list(w, out, len(out))
}

type tierResponse struct {
	Amount          int64         `json:"amount"`
	AmountFormatted string        `json:"amount_formatted"`
	Tier            tierView      `json:"tier"`
	Next            *nextTierView `json:"next,omitempty"`
}

func (a *API) tier(w http.ResponseWriter, r *http.Request) {
	amount, err := parseAmount("amount", chi.URLParam(r, "amount"))
	if err != nil {
		a.fail(w, r, err)
		return
	}

	lang := i18n.GetLocale(r.Context())
	out := tierResponse{
		Amount:          amount,
		AmountFormatted: funding.FormatCurrency(amount),
		Tier:            a.tierView(lang, funding.Info(funding.RecognitionTier(amount))),
	}
	if next, shortfall, ok := funding.NextTier(amount); ok {
		out.Next = &nextTierView{
			Tier:               a.tierView(lang, next),
			Shortfall:          shortfall,
			ShortfallFormatted: funding.FormatCurrency(shortfall),
		}
	}
	a.ok(w, out)
}
