package api

import (
	"log/slog"
	"net/http"

	"github.com/utaipei/fundraising/pkg/catalog"
	"github.com/utaipei/fundraising/pkg/donation"
	"github.com/utaipei/fundraising/pkg/funding"
	"github.com/utaipei/fundraising/pkg/i18n"
	"github.com/utaipei/fundraising/pkg/logger"
	"github.com/utaipei/fundraising/pkg/sanitizer"
	"github.com/utaipei/fundraising/pkg/share"
)

var _ donation.Lookup = (*catalog.Catalog)(nil)

// validateField checks one form field. The result is data, so an invalid
// value still answers 200.
func (a *API) validateField(w http.ResponseWriter, r *http.Request) {
	var f donation.Field
	if err := decodeJSON(w, r, &f); err != nil {
		a.fail(w, r, err)
		return
	}

	res := donation.Localize(donation.ValidateField(f), a.tr, i18n.GetLocale(r.Context()))
	a.log.DebugContext(r.Context(), "field validated", logger.Field(string(f.Kind)), slog.Bool("valid", res.Valid))
	a.ok(w, res)
}

type formRequest struct {
	Fields []donation.Field `json:"fields"`
}

type formResponse struct {
	Valid   bool                                  `json:"valid"`
	Failed  []donation.FieldKind                  `json:"failed"`
	Results map[donation.FieldKind]donation.Result `json:"results"`
}

func (a *API) validateForm(w http.ResponseWriter, r *http.Request) {
	var req formRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}

	report := donation.ValidateForm(req.Fields...).Localize(a.tr, i18n.GetLocale(r.Context()))
	failed := report.Failed()
	if failed == nil {
		failed = []donation.FieldKind{}
	}
	a.ok(w, formResponse{Valid: report.Valid(), Failed: failed, Results: report.Results})
}

// validateDonation runs every check on a complete submission. A passing
// submission is echoed back with contact details masked, ready to be handed
// to the payment step.
func (a *API) validateDonation(w http.ResponseWriter, r *http.Request) {
	var sub donation.Submission
	if err := decodeJSON(w, r, &sub); err != nil {
		a.fail(w, r, err)
		return
	}
	sub = sub.Normalize()

	report := sub.Validate(a.catalog)
	if err := report.Err(); err != nil {
		a.log.InfoContext(r.Context(), "donation rejected",
			logger.ProjectID(sub.ProjectID),
			logger.Amount(sub.Amount),
			slog.Any("fields", report.Failed()),
		)
		a.fail(w, r, err)
		return
	}

	project, err := a.catalog.Project(sub.ProjectID)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	lang := i18n.GetLocale(r.Context())
	out := acceptedDonation{
		DisplayName:     sub.DisplayName(),
		Email:           sanitizer.MaskEmail(sub.Email),
		Phone:           sanitizer.MaskPhone(sub.Phone),
		Project:         projectRef{ID: project.ID, Name: project.Name},
		Amount:          sub.Amount,
		AmountFormatted: funding.FormatCurrency(sub.Amount),
		Tier:            a.tierView(lang, funding.Info(funding.RecognitionTier(sub.Amount))),
		ImpactUnits:     project.ImpactUnits(sub.Amount),
		Impact:          project.Impact,
		Anonymous:       sub.Anonymous,
		Message:         sub.Message,
	}
	if sub.NationalID != "" {
		out.NationalID = sanitizer.MaskNationalID(sub.NationalID)
	}
	if preset, ok := a.catalog.PresetFor(sub.Amount); ok {
		out.PresetImpact = preset.Impact
	}
	if sub.PaymentMethod != "" {
		if m, err := a.catalog.PaymentMethod(sub.PaymentMethod); err == nil {
			out.PaymentMethod = &m
		}
	}
	if u, err := share.ProjectURL(a.baseURL, project.ID, sub.Amount); err == nil {
		out.ShareURL = u
	}

	a.log.InfoContext(r.Context(), "donation accepted", logger.ProjectID(project.ID), logger.Amount(sub.Amount))
	a.ok(w, out)
}

func (a *API) recentDonations(w http.ResponseWriter, r *http.Request) {
	recent := a.catalog.Recent()
	out := make([]recentView, 0, len(recent))
	for _, d := range recent {
		out = append(out, a.recentView(d))
	}
	a.list(w, out, len(out))
}
