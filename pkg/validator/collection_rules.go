package validator

func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Unique validates that no two items share the same key.
func Unique[T any, K comparable](field string, items []T, key func(T) K) Rule {
	return Rule{
		Check: func() bool {
			seen := make(map[K]struct{}, len(items))
			for _, item := range items {
				k := key(item)
				if _, ok := seen[k]; ok {
					return false
				}
				seen[k] = struct{}{}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain duplicates",
			TranslationKey: "validation.unique",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
