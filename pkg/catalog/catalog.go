package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/utaipei/fundraising/pkg/funding"
)

// Catalog is an immutable, validated data set. Accessors return fresh slices
// so callers may sort or filter them freely.
type Catalog struct {
	doc      document
	projects map[string]int
	methods  map[string]int
	donors   []Donor
}

func newCatalog(doc document) *Catalog {
	c := &Catalog{
		doc:      doc,
		projects: make(map[string]int, len(doc.Projects)),
		methods:  make(map[string]int, len(doc.PaymentMethods)),
	}
	for i, p := range doc.Projects {
		c.projects[p.ID] = i
	}
	for i, m := range doc.PaymentMethods {
		c.methods[m.ID] = i
	}

	c.donors = slices.Clone(doc.Donors)
	slices.SortStableFunc(c.donors, func(a, b Donor) int {
		return cmp.Compare(b.Amount, a.Amount)
	})

	slices.SortFunc(c.doc.RecentDonations, func(a, b RecentDonation) int {
		return cmp.Compare(a.Ago, b.Ago)
	})
	slices.SortFunc(c.doc.Presets, func(a, b AmountPreset) int {
		return cmp.Compare(a.Amount, b.Amount)
	})

	return c
}

func (c *Catalog) School() School {
	return c.doc.School
}

// Projects returns every project in catalog order.
func (c *Catalog) Projects() []Project {
	return slices.Clone(c.doc.Projects)
}

func (c *Catalog) Project(id string) (Project, error) {
	i, ok := c.projects[id]
	if !ok {
		return Project{}, ErrProjectNotFound
	}
	return c.doc.Projects[i], nil
}

func (c *Catalog) HasProject(id string) bool {
	_, ok := c.projects[id]
	return ok
}

// ProjectsByCategory filters by category id. CategoryAll and "" return every
// project.
func (c *Catalog) ProjectsByCategory(category string) []Project {
	if category == "" || category == CategoryAll {
		return c.Projects()
	}
	var out []Project
	for _, p := range c.doc.Projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search matches query case-insensitively against project names and
// descriptions. An empty query matches everything.
func (c *Catalog) Search(query string) []Project {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.Projects()
	}
	var out []Project
	for _, p := range c.doc.Projects {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.FullDescription), query) {
			out = append(out, p)
		}
	}
	return out
}

// Urgent returns the projects flagged urgent.
func (c *Catalog) Urgent() []Project {
	var out []Project
	for _, p := range c.doc.Projects {
		if p.Urgent {
			out = append(out, p)
		}
	}
	return out
}

// Donors returns the honor wall donors, largest cumulative amount first.
func (c *Catalog) Donors() []Donor {
	out := make([]Donor, len(c.donors))
	for i, d := range c.donors {
		out[i] = d.clone()
	}
	return out
}

// HonorWall groups donors by derived tier, highest tier first. Empty tiers
// are omitted.
func (c *Catalog) HonorWall() []TierGroup {
	byTier := make(map[funding.Tier][]Donor)
	for _, d := range c.donors {
		byTier[d.Tier()] = append(byTier[d.Tier()], d.clone())
	}

	var groups []TierGroup
	for _, info := range funding.Tiers() {
		if donors := byTier[info.Tier]; len(donors) > 0 {
			groups = append(groups, TierGroup{Tier: info, Donors: donors})
		}
	}
	return groups
}

// Recent returns the donation feed, newest first.
func (c *Catalog) Recent() []RecentDonation {
	return slices.Clone(c.doc.RecentDonations)
}

// Presets returns the suggested amounts in ascending order.
func (c *Catalog) Presets() []AmountPreset {
	return slices.Clone(c.doc.Presets)
}

// PresetFor returns the largest preset not above amount, which describes
// what the gift achieves. ok is false when amount is below every preset.
func (c *Catalog) PresetFor(amount int64) (AmountPreset, bool) {
	var (
		best  AmountPreset
		found bool
	)
	for _, p := range c.doc.Presets {
		if p.Amount > amount {
			break
		}
		best, found = p, true
	}
	return best, found
}

func (c *Catalog) Categories() []Category {
	return slices.Clone(c.doc.Categories)
}

func (c *Catalog) PaymentMethods() []PaymentMethod {
	return slices.Clone(c.doc.PaymentMethods)
}

func (c *Catalog) PaymentMethod(id string) (PaymentMethod, error) {
	i, ok := c.methods[id]
	if !ok {
		return PaymentMethod{}, ErrPaymentMethodNotFound
	}
	return c.doc.PaymentMethods[i], nil
}

func (c *Catalog) HasPaymentMethod(id string) bool {
	_, ok := c.methods[id]
	return ok
}

func (c *Catalog) FAQ() []FAQ {
	return slices.Clone(c.doc.FAQ)
}

// Stats sums goals, raised amounts and donor counts over all projects.
func (c *Catalog) Stats() Stats {
	s := Stats{Projects: len(c.doc.Projects)}
	for _, p := range c.doc.Projects {
		s.Goal += p.Goal
		s.Raised += p.Raised
		s.Donors += p.Donors
	}
	s.Progress = funding.NewProgress(s.Raised, s.Goal)
	return s
}
