package validator

import "fmt"

func PositiveAmount[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount must be positive",
			TranslationKey: "validation.positive_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func NonNegativeAmount[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount cannot be negative",
			TranslationKey: "validation.non_negative_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func AmountRange[T Numeric](field string, value T, min T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("amount must be between %v and %v", min, max),
			TranslationKey: "validation.amount_range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
