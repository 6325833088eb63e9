// Package catalog serves the campaign's read-only data set: projects, the
// donor honor wall, recent gifts, preset amounts, filter categories, payment
// methods and the FAQ.
//
// The data ships embedded as YAML and is checked when loaded: ids must be
// unique, amounts non-negative, deadlines real dates and every project,
// category and donor reference must resolve. A Catalog never changes after
// Load, so one value can be shared by every request.
//
// Recognition tiers and progress are computed from the amounts on demand
// with package funding and are never stored in the data.
package catalog
