package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/utaipei/fundraising/pkg/validator"
)

//go:embed data.yaml
var defaultData []byte

type document struct {
	School          School           `yaml:"school"`
	Projects        []Project        `yaml:"projects"`
	RecentDonations []RecentDonation `yaml:"recent_donations"`
	Donors          []Donor          `yaml:"donors"`
	Categories      []Category       `yaml:"categories"`
	PaymentMethods  []PaymentMethod  `yaml:"payment_methods"`
	Presets         []AmountPreset   `yaml:"presets"`
	FAQ             []FAQ            `yaml:"faq"`
}

// Default loads the data set embedded in the binary.
func Default(ctx context.Context) (*Catalog, error) {
	return Load(ctx, defaultData)
}

// Load parses and checks a YAML data set. Every problem found is reported,
// wrapped in ErrInvalidCatalog.
func Load(ctx context.Context, data []byte) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	if err := validator.Apply(rules(doc)...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	return newCatalog(doc), nil
}

func rules(doc document) []validator.Rule {
	projectIDs := make([]string, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		projectIDs = append(projectIDs, p.ID)
	}
	categoryIDs := make([]string, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		categoryIDs = append(categoryIDs, c.ID)
	}

	rs := []validator.Rule{
		validator.RequiredSlice("projects", doc.Projects),
		validator.Unique("projects", doc.Projects, func(p Project) string { return p.ID }),
		validator.Unique("donors", doc.Donors, func(d Donor) int { return d.ID }),
		validator.Unique("recent_donations", doc.RecentDonations, func(r RecentDonation) int { return r.ID }),
		validator.Unique("categories", doc.Categories, func(c Category) string { return c.ID }),
		validator.Unique("payment_methods", doc.PaymentMethods, func(m PaymentMethod) string { return m.ID }),
		validator.Unique("presets", doc.Presets, func(p AmountPreset) int64 { return p.Amount }),
	}

	for i, p := range doc.Projects {
		field := fmt.Sprintf("projects[%d]", i)
		rs = append(rs,
			validator.RequiredString(field+".id", p.ID),
			validator.RequiredString(field+".name", p.Name),
			validator.NonNegativeAmount(field+".goal", p.Goal),
			validator.NonNegativeAmount(field+".raised", p.Raised),
			validator.NonNegativeAmount(field+".donors", p.Donors),
			validator.NonNegativeAmount(field+".impact_amount", p.ImpactAmount),
			validDate(field+".deadline", p.Deadline),
		)
		if len(categoryIDs) > 0 {
			rs = append(rs, validator.InList(field+".category", p.Category, categoryIDs))
		}
	}

	for i, d := range doc.Donors {
		field := fmt.Sprintf("donors[%d]", i)
		rs = append(rs,
			validator.RequiredString(field+".name", d.Name),
			validator.NonNegativeAmount(field+".amount", d.Amount),
		)
		for j, id := range d.Projects {
			rs = append(rs, validator.InList(fmt.Sprintf("%s.projects[%d]", field, j), id, projectIDs))
		}
	}

	for i, r := range doc.RecentDonations {
		field := fmt.Sprintf("recent_donations[%d]", i)
		rs = append(rs,
			validator.RequiredString(field+".name", r.Name),
			validator.PositiveAmount(field+".amount", r.Amount),
			validator.NonNegativeAmount(field+".ago", r.Ago),
			validator.InList(field+".project_id", r.ProjectID, projectIDs),
		)
	}

	for i, c := range doc.Categories {
		rs = append(rs, validator.RequiredString(fmt.Sprintf("categories[%d].id", i), c.ID))
	}
	for i, m := range doc.PaymentMethods {
		field := fmt.Sprintf("payment_methods[%d]", i)
		rs = append(rs,
			validator.RequiredString(field+".id", m.ID),
			validator.RequiredString(field+".name", m.Name),
		)
	}
	for i, p := range doc.Presets {
		rs = append(rs, validator.PositiveAmount(fmt.Sprintf("presets[%d].amount", i), p.Amount))
	}

	return rs
}

func validDate(field, value string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			_, err := time.Parse(DeadlineLayout, value)
			return err == nil
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        "must be a date in YYYY-MM-DD format",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
