package edgar

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/edgar/date"
)

// DefaultLimit is the number of filings returned when the caller does not
// ask for a specific limit.
const DefaultLimit = 10

// MaxLimit caps the number of filings a single query can return.
const MaxLimit = 1000

// FilingFilter narrows a filings query. Construct it once with
// NewFilingFilter; the zero boundaries of the date range leave that side
// open, an empty form type list matches every form.
type FilingFilter struct {
	formTypes map[string]bool
	dates     date.Range
	limit     int
}

// NewFilingFilter validates and normalizes a filter. Form types are
// uppercased and trimmed with empty entries discarded; from/to bound the
// filing date inclusively, a zero Date leaves the bound open; limit 0 means
// DefaultLimit, any other value must be in [1, MaxLimit].
func NewFilingFilter(formTypes []string, from, to date.Date, limit int) (FilingFilter, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return FilingFilter{}, fmt.Errorf("%w: limit %d must be between 1 and %d", ErrValidation, limit, MaxLimit)
	}
	dates, err := date.NewRange(from, to)
	if err != nil {
		return FilingFilter{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	var set map[string]bool
	for _, ft := range formTypes {
		ft = strings.ToUpper(strings.TrimSpace(ft))
		if ft == "" {
			continue
		}
		if set == nil {
			set = make(map[string]bool)
		}
		set[ft] = true
	}
	return FilingFilter{formTypes: set, dates: dates, limit: limit}, nil
}

// FormTypes returns the normalized form types, sorted. Nil when the filter
// does not restrict the form type.
func (f FilingFilter) FormTypes() []string {
	if f.formTypes == nil {
		return nil
	}
	types := make([]string, 0, len(f.formTypes))
	for ft := range f.formTypes {
		types = append(types, ft)
	}
	slices.Sort(types)
	return types
}

// Dates returns the inclusive filing date range.
func (f FilingFilter) Dates() date.Range { return f.dates }

// Limit returns the maximum number of filings the query returns.
func (f FilingFilter) Limit() int {
	if f.limit == 0 {
		// zero value filter, same default as NewFilingFilter
		return DefaultLimit
	}
	return f.limit
}

// Matches reports whether the filing passes every predicate of the filter.
func (f FilingFilter) Matches(filing Filing) bool {
	if f.formTypes != nil && !f.formTypes[filing.FormType()] {
		return false
	}
	return f.dates.Contains(filing.FilingDate())
}
