package donation

import (
	"slices"

	"github.com/utaipei/fundraising/pkg/validator"
)

// Report holds one Result per validated field.
type Report struct {
	Results map[FieldKind]Result `json:"results"`
}

// ValidateForm validates every field. When a kind appears more than once the
// first failure is kept.
func ValidateForm(fields ...Field) Report {
	r := Report{Results: make(map[FieldKind]Result, len(fields))}
	for _, f := range fields {
		r.set(f.Kind, ValidateField(f))
	}
	return r
}

func (r *Report) set(kind FieldKind, res Result) {
	if prev, ok := r.Results[kind]; ok && !prev.Valid {
		return
	}
	r.Results[kind] = res
}

// Valid reports whether every field passed.
func (r Report) Valid() bool {
	for _, res := range r.Results {
		if !res.Valid {
			return false
		}
	}
	return true
}

// Failed returns the failing kinds sorted by name.
func (r Report) Failed() []FieldKind {
	var failed []FieldKind
	for kind, res := range r.Results {
		if !res.Valid {
			failed = append(failed, kind)
		}
	}
	slices.Sort(failed)
	return failed
}

// Err converts the failures into validator.ValidationErrors, or nil when the
// report is valid.
func (r Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}

	errs := make(validator.ValidationErrors, 0, len(failed))
	for _, kind := range failed {
		res := r.Results[kind]
		errs.Add(validator.ValidationError{
			Field:             string(kind),
			Message:           res.Message,
			TranslationKey:    res.TranslationKey,
			TranslationValues: res.Params,
		})
	}
	return errs
}

// Localize returns a copy of the report with every failure localized.
func (r Report) Localize(tr Translator, lang string) Report {
	out := Report{Results: make(map[FieldKind]Result, len(r.Results))}
	for kind, res := range r.Results {
		out.Results[kind] = Localize(res, tr, lang)
	}
	return out
}
