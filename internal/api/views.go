package api

import (
	"time"

	"github.com/utaipei/fundraising/pkg/catalog"
	"github.com/utaipei/fundraising/pkg/funding"
)

type tierView struct {
	funding.TierInfo
	Name string `json:"name"`
}

type nextTierView struct {
	Tier               tierView `json:"tier"`
	Shortfall          int64    `json:"shortfall"`
	ShortfallFormatted string   `json:"shortfall_formatted"`
}

type progressView struct {
	funding.Progress
	GoalFormatted      string `json:"goal_formatted"`
	RaisedFormatted    string `json:"raised_formatted"`
	RemainingFormatted string `json:"remaining_formatted"`
}

type projectView struct {
	catalog.Project
	Funding  progressView `json:"progress"`
	DaysLeft int          `json:"days_left"`
}

type donorView struct {
	catalog.Donor
	Recognition     tierView `json:"tier"`
	Avatar          string   `json:"avatar"`
	AmountFormatted string   `json:"amount_formatted"`
}

type honorWallGroup struct {
	Tier   tierView    `json:"tier"`
	Donors []donorView `json:"donors"`
}

type recentView struct {
	catalog.RecentDonation
	ProjectName     string `json:"project_name"`
	AgoSeconds      int64  `json:"ago_seconds"`
	AmountFormatted string `json:"amount_formatted"`
}

type presetView struct {
	catalog.AmountPreset
	AmountFormatted string       `json:"amount_formatted"`
	Tier            funding.Tier `json:"tier"`
}

type statsView struct {
	catalog.Stats
	GoalFormatted   string `json:"goal_formatted"`
	RaisedFormatted string `json:"raised_formatted"`
}

type shareView struct {
	URL       string `json:"url"`
	Text      string `json:"text"`
	QRCodeURL string `json:"qr_code_url"`
	Links     any    `json:"links"`
}

type acceptedDonation struct {
	DisplayName     string                 `json:"display_name"`
	Email           string                 `json:"email"`
	Phone           string                 `json:"phone"`
	NationalID      string                 `json:"national_id,omitempty"`
	Project         projectRef             `json:"project"`
	Amount          int64                  `json:"amount"`
	AmountFormatted string                 `json:"amount_formatted"`
	Tier            tierView               `json:"tier"`
	ImpactUnits     int64                  `json:"impact_units"`
	Impact          string                 `json:"impact,omitempty"`
	PresetImpact    string                 `json:"preset_impact,omitempty"`
	PaymentMethod   *catalog.PaymentMethod `json:"payment_method,omitempty"`
	Anonymous       bool                   `json:"anonymous"`
	Message         string                 `json:"message,omitempty"`
	ShareURL        string                 `json:"share_url"`
}

type projectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (a *API) tierView(lang string, info funding.TierInfo) tierView {
	return tierView{TierInfo: info, Name: a.tr.T(lang, info.TranslationKey)}
}

func newProgressView(p funding.Progress) progressView {
	return progressView{
		Progress:           p,
		GoalFormatted:      funding.FormatCurrency(p.Goal),
		RaisedFormatted:    funding.FormatCurrency(p.Raised),
		RemainingFormatted: funding.FormatCurrency(p.Remaining),
	}
}

func (a *API) projectView(p catalog.Project) projectView {
	return projectView{
		Project:  p,
		Funding:  newProgressView(p.Progress()),
		DaysLeft: p.DaysLeft(a.now()),
	}
}

func (a *API) projectViews(ps []catalog.Project) []projectView {
	out := make([]projectView, 0, len(ps))
	for _, p := range ps {
		out = append(out, a.projectView(p))
	}
	return out
}

func (a *API) donorView(lang string, d catalog.Donor) donorView {
	return donorView{
		Donor:           d,
		Recognition:     a.tierView(lang, funding.Info(d.Tier())),
		Avatar:          d.Avatar(),
		AmountFormatted: funding.FormatCurrency(d.Amount),
	}
}

func (a *API) recentView(d catalog.RecentDonation) recentView {
	v := recentView{
		RecentDonation:  d,
		AgoSeconds:      int64(d.Ago / time.Second),
		AmountFormatted: funding.FormatCurrency(d.Amount),
	}
	if p, err := a.catalog.Project(d.ProjectID); err == nil {
		v.ProjectName = p.Name
	}
	return v
}
