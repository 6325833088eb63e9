package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/utaipei/fundraising/pkg/catalog"
	"github.com/utaipei/fundraising/pkg/donation"
	"github.com/utaipei/fundraising/pkg/i18n"
	"github.com/utaipei/fundraising/pkg/logger"
	"github.com/utaipei/fundraising/pkg/validator"
)

// Response is the JSON envelope.
type Response struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

const (
	CodeBadRequest       = "bad_request"
	CodeNotFound         = "not_found"
	CodeValidation       = "validation_error"
	CodeUnsupportedMedia = "unsupported_media_type"
	CodeRateLimited      = "rate_limited"
	CodeInternal         = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (a *API) ok(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Data: data})
}

func (a *API) list(w http.ResponseWriter, data any, total int) {
	writeJSON(w, http.StatusOK, Response{Data: data, Meta: map[string]any{"total": total}})
}

// fail maps err onto a status code and a localized error envelope.
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	lang := i18n.GetLocale(r.Context())
	status, detail := http.StatusInternalServerError, &ErrorDetail{Code: CodeInternal}
	key := "errors.internal"

	switch {
	case validator.IsValidationError(err):
		status, detail.Code, key = http.StatusUnprocessableEntity, CodeValidation, "errors.validation"
		detail.Details = a.localizedDetails(lang, validator.ExtractValidationErrors(err))
	case errors.Is(err, catalog.ErrProjectNotFound), errors.Is(err, catalog.ErrPaymentMethodNotFound),
		errors.Is(err, ErrNotFound):
		status, detail.Code, key = http.StatusNotFound, CodeNotFound, "errors.not_found"
	case errors.Is(err, ErrUnsupportedMediaType):
		status, detail.Code, key = http.StatusUnsupportedMediaType, CodeUnsupportedMedia, "errors.bad_request"
	case errors.Is(err, ErrInvalidJSON), errors.Is(err, ErrInvalidParameter):
		status, detail.Code, key = http.StatusBadRequest, CodeBadRequest, "errors.bad_request"
	default:
		a.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	}

	detail.Message = a.tr.T(lang, key)
	if status != http.StatusInternalServerError && status != http.StatusUnprocessableEntity {
		detail.Message += ": " + err.Error()
	}
	writeJSON(w, status, Response{Error: detail})
}

func (a *API) localizedDetails(lang string, errs validator.ValidationErrors) map[string][]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		msg := e.Message
		if e.TranslationKey != "" && a.tr.HasTranslation(lang, e.TranslationKey) {
			msg = a.tr.T(lang, e.TranslationKey, donation.TranslationArgs(e.TranslationValues)...)
		}
		out[e.Field] = append(out[e.Field], msg)
	}
	return out
}
