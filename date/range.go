package date

import "fmt"

// Range represents an inclusive range of dates. A zero boundary leaves that
// side of the range open.
type Range struct{ From, To Date }

// NewRange returns a range with both boundaries checked for consistency.
func NewRange(from, to Date) (Range, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return Range{}, fmt.Errorf("invalid range: %s is before %s", to, from)
	}
	return Range{From: from, To: to}, nil
}

// Contains reports whether the date is inside the range, boundaries included.
// An open boundary matches everything on that side.
func (r Range) Contains(d Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}
