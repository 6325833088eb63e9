package donation

import (
	"strings"

	"github.com/utaipei/fundraising/pkg/validator"
)

// FieldKind names a donor form field with a fixed validation rule.
type FieldKind string

const (
	KindName       FieldKind = "name"
	KindEmail      FieldKind = "email"
	KindPhone      FieldKind = "phone"
	KindNationalID FieldKind = "nationalId"
)

// Field is one value entered on the form.
type Field struct {
	Kind  FieldKind `json:"kind"`
	Value string    `json:"value"`
}

// Code classifies a failed Result.
type Code string

const (
	CodeRequired Code = "required"
	CodeInvalid  Code = "invalid"
)

// RequiredMessage is reported for a required field left blank.
const RequiredMessage = "required field"

const MinNameLength = 2

// Result is the outcome of validating one field. Message, Code and the
// translation key are empty when Valid is true.
type Result struct {
	Valid          bool           `json:"valid"`
	Message        string         `json:"message,omitempty"`
	Code           Code           `json:"code,omitempty"`
	TranslationKey string         `json:"translation_key,omitempty"`
	Params         map[string]any `json:"-"`
}

type fieldRule struct {
	required bool
	rules    func(field, value string) []validator.Rule
}

var fieldRules = map[FieldKind]fieldRule{
	KindName: {
		required: true,
		rules: func(field, value string) []validator.Rule {
			return []validator.Rule{
				validator.WithMessage(validator.MinRunes(field, value, MinNameLength),
					"must be at least 2 characters long", "donation.name"),
			}
		},
	},
	KindEmail: {
		required: true,
		rules: func(field, value string) []validator.Rule {
			return []validator.Rule{
				validator.WithMessage(validator.ValidEmail(field, value),
					"must be a valid email address", "donation.email"),
			}
		},
	},
	KindPhone: {
		required: true,
		rules: func(field, value string) []validator.Rule {
			return []validator.Rule{
				validator.WithMessage(validator.ValidTaiwanPhone(field, value),
					"must be a valid phone number", "donation.phone"),
			}
		},
	},
	KindNationalID: {
		required: false,
		rules: func(field, value string) []validator.Rule {
			return []validator.Rule{
				validator.WithMessage(validator.ValidNationalID(field, value),
					"must be a valid national ID number", "donation.national_id"),
			}
		},
	},
}

// Kinds lists the field kinds with a rule, in form order.
func Kinds() []FieldKind {
	return []FieldKind{KindName, KindEmail, KindPhone, KindNationalID}
}

// Known reports whether kind has a rule.
func (k FieldKind) Known() bool {
	_, ok := fieldRules[k]
	return ok
}

// Required reports whether kind must be filled in.
func (k FieldKind) Required() bool {
	return fieldRules[k].required
}

// Validate checks value against the rule for kind.
func Validate(kind FieldKind, value string) Result {
	rule, ok := fieldRules[kind]
	if !ok {
		return Result{Valid: true}
	}

	if strings.TrimSpace(value) == "" {
		if !rule.required {
			return Result{Valid: true}
		}
		return failure(CodeRequired, requiredError(string(kind)))
	}

	if verr, ok := validator.First(rule.rules(string(kind), value)...); !ok {
		return failure(CodeInvalid, verr)
	}
	return Result{Valid: true}
}

// ValidateField is Validate for a Field.
func ValidateField(f Field) Result {
	return Validate(f.Kind, f.Value)
}

func requiredError(field string) validator.ValidationError {
	return validator.WithMessage(validator.RequiredString(field, ""), RequiredMessage, "donation.required").Error
}

func failure(code Code, verr validator.ValidationError) Result {
	return Result{
		Valid:          false,
		Message:        verr.Message,
		Code:           code,
		TranslationKey: verr.TranslationKey,
		Params:         verr.TranslationValues,
	}
}
