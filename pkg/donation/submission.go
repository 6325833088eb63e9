package donation

import (
	"strings"

	"github.com/utaipei/fundraising/pkg/sanitizer"
	"github.com/utaipei/fundraising/pkg/validator"
)

// Submission fields validated outside the four form rules.
const (
	FieldAmount        FieldKind = "amount"
	FieldProject       FieldKind = "projectId"
	FieldMessage       FieldKind = "message"
	FieldPaymentMethod FieldKind = "paymentMethod"
)

const MaxMessageLength = 200

// MaxAmount caps a single online gift. Larger gifts go through the
// development office.
const MaxAmount int64 = 10_000_000

// AnonymousDisplayName is shown on the honor wall for anonymous gifts.
const AnonymousDisplayName = "善心人士"

// Lookup answers existence questions about the catalog.
type Lookup interface {
	HasProject(id string) bool
	HasPaymentMethod(id string) bool
}

// Submission is a completed donation form.
type Submission struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	NationalID    string `json:"nationalId,omitempty"`
	ProjectID     string `json:"projectId"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	Anonymous     bool   `json:"anonymous"`
	Message       string `json:"message,omitempty"`
}

// Normalize trims and tidies the free-text fields. Email is lowercased, the
// phone number loses its spaces and the national ID is uppercased; the values are not otherwise rewritten, so
// malformed input still fails validation.
func (s Submission) Normalize() Submission {
	s.Name = sanitizer.Apply(s.Name, sanitizer.Trim, sanitizer.NormalizeWhitespace)
	s.Email = sanitizer.TrimToLower(s.Email)
	s.Phone = sanitizer.RemoveSpaces(s.Phone)
	s.NationalID = strings.ToUpper(strings.TrimSpace(s.NationalID))
	s.ProjectID = strings.TrimSpace(s.ProjectID)
	s.PaymentMethod = strings.TrimSpace(s.PaymentMethod)
	s.Message = sanitizer.DonorMessage(s.Message, 0)
	return s
}

// Validate runs every check a submission needs before it is forwarded.
// A nil lookup skips the project and payment method existence checks.
func (s Submission) Validate(lookup Lookup) Report {
	r := ValidateForm(
		Field{Kind: KindName, Value: s.Name},
		Field{Kind: KindEmail, Value: s.Email},
		Field{Kind: KindPhone, Value: s.Phone},
		Field{Kind: KindNationalID, Value: s.NationalID},
	)

	amount := string(FieldAmount)
	if s.Amount <= 0 {
		r.check(FieldAmount, validator.WithMessage(
			validator.PositiveAmount(amount, s.Amount),
			"amount must be positive", "donation.amount"))
	} else {
		r.check(FieldAmount, validator.AmountRange(amount, s.Amount, 1, MaxAmount))
	}

	project := string(FieldProject)
	if strings.TrimSpace(s.ProjectID) == "" {
		r.Results[FieldProject] = failure(CodeRequired, requiredError(project))
	} else {
		r.check(FieldProject, existsRule(project, "unknown project", "donation.project", func() bool {
			return lookup == nil || lookup.HasProject(s.ProjectID)
		}))
	}

	r.check(FieldMessage, validator.WithMessage(
		validator.MaxRunes(string(FieldMessage), s.Message, MaxMessageLength),
		"must be at most 200 characters long", "donation.message"))

	if s.PaymentMethod != "" {
		r.check(FieldPaymentMethod, existsRule(string(FieldPaymentMethod), "unknown payment method", "donation.payment_method", func() bool {
			return lookup == nil || lookup.HasPaymentMethod(s.PaymentMethod)
		}))
	}

	return r
}

// DisplayName is the name shown publicly for the gift.
func (s Submission) DisplayName() string {
	if s.Anonymous {
		return AnonymousDisplayName
	}
	return sanitizer.MaskName(strings.TrimSpace(s.Name))
}

func (r *Report) check(kind FieldKind, rule validator.Rule) {
	if verr, ok := validator.First(rule); !ok {
		r.set(kind, failure(CodeInvalid, verr))
		return
	}
	r.set(kind, Result{Valid: true})
}

func existsRule(field, message, key string, exists func() bool) validator.Rule {
	return validator.Rule{
		Check: exists,
		Error: validator.ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: map[string]any{"field": field},
		},
	}
}
