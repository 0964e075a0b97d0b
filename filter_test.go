package edgar

import (
	"errors"
	"reflect"
	"testing"

	"github.com/etnz/edgar/date"
)

func TestNewFilingFilter(t *testing.T) {
	var none date.Date

	testCases := []struct {
		name      string
		forms     []string
		from, to  date.Date
		limit     int
		wantForms []string
		wantLimit int
		wantErr   bool
	}{
		{name: "empty filter defaults", limit: 0, wantLimit: DefaultLimit},
		{name: "forms normalized and deduplicated", forms: []string{" 10-k ", "10-K", "8-k"}, wantForms: []string{"10-K", "8-K"}, wantLimit: DefaultLimit},
		{name: "empty form entries discarded", forms: []string{"10-K", "  ", ""}, wantForms: []string{"10-K"}, wantLimit: DefaultLimit},
		{name: "explicit limit", limit: 25, wantLimit: 25},
		{name: "limit at max", limit: MaxLimit, wantLimit: MaxLimit},
		{name: "limit too small", limit: -1, wantErr: true},
		{name: "limit too large", limit: MaxLimit + 1, wantErr: true},
		{name: "valid date range", from: date.MustParse("2023-01-01"), to: date.MustParse("2023-12-31"), wantLimit: DefaultLimit},
		{name: "inverted date range", from: date.MustParse("2023-12-31"), to: date.MustParse("2023-01-01"), wantErr: true},
		{name: "only from", from: date.MustParse("2023-01-01"), to: none, wantLimit: DefaultLimit},
		{name: "only to", to: date.MustParse("2023-01-01"), wantLimit: DefaultLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewFilingFilter(tc.forms, tc.from, tc.to, tc.limit)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NewFilingFilter() = %+v, want error", got)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error %v is not an ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFilingFilter() unexpected error: %v", err)
			}
			if got.Limit() != tc.wantLimit {
				t.Errorf("Limit() = %d, want %d", got.Limit(), tc.wantLimit)
			}
			if !reflect.DeepEqual(got.FormTypes(), tc.wantForms) {
				t.Errorf("FormTypes() = %v, want %v", got.FormTypes(), tc.wantForms)
			}
		})
	}
}

func TestFilingFilterMatches(t *testing.T) {
	filing := func(form, filed string) Filing {
		f, err := NewFiling("0000320193", "Apple Inc.", form, date.MustParse(filed), "acc-1")
		if err != nil {
			t.Fatal(err)
		}
		return f
	}
	filter := func(forms []string, from, to string) FilingFilter {
		var fromDate, toDate date.Date
		if from != "" {
			fromDate = date.MustParse(from)
		}
		if to != "" {
			toDate = date.MustParse(to)
		}
		flt, err := NewFilingFilter(forms, fromDate, toDate, 0)
		if err != nil {
			t.Fatal(err)
		}
		return flt
	}

	testCases := []struct {
		name   string
		filter FilingFilter
		filing Filing
		want   bool
	}{
		{"no predicates match everything", filter(nil, "", ""), filing("10-K", "2023-11-03"), true},
		{"form matches case-insensitively", filter([]string{"10-k"}, "", ""), filing("10-K", "2023-11-03"), true},
		{"form mismatch", filter([]string{"8-K"}, "", ""), filing("10-K", "2023-11-03"), false},
		{"inside date range", filter(nil, "2023-01-01", "2023-12-31"), filing("10-K", "2023-11-03"), true},
		{"before from", filter(nil, "2023-01-01", ""), filing("10-K", "2022-10-28"), false},
		{"on from boundary", filter(nil, "2022-10-28", ""), filing("10-K", "2022-10-28"), true},
		{"after to", filter(nil, "", "2023-06-30"), filing("10-K", "2023-11-03"), false},
		{"on to boundary", filter(nil, "", "2023-11-03"), filing("10-K", "2023-11-03"), true},
		{"all predicates combined", filter([]string{"10-K"}, "2023-01-01", "2023-12-31"), filing("10-K", "2023-11-03"), true},
		{"form passes but date fails", filter([]string{"10-K"}, "2024-01-01", ""), filing("10-K", "2023-11-03"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(tc.filing); got != tc.want {
				t.Errorf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}
