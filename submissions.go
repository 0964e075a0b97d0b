package edgar

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// This file converts the SEC submissions JSON (the per-filer document
// served as CIK##########.json) into this package's filings dataset shape.
// The conversion is a pure local transformation: it never fetches anything.

// Submissions mirrors the fields of a SEC submissions document that the
// filings dataset needs. The recent filings are stored as parallel arrays,
// one index per filing.
type Submissions struct {
	CIK     string `json:"cik"`
	Name    string `json:"name"`
	Filings struct {
		Recent RecentFilings `json:"recent"`
	} `json:"filings"`
}

// RecentFilings holds the parallel arrays of the most recent filings.
type RecentFilings struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	Form            []string `json:"form"`
}

// LoadSubmissions reads a submissions document from disk.
func LoadSubmissions(filename string) (Submissions, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Submissions{}, fmt.Errorf("could not open submissions file %q: %w", filename, err)
	}
	defer f.Close()

	var sub Submissions
	if err := json.NewDecoder(f).Decode(&sub); err != nil {
		return Submissions{}, fmt.Errorf("format error in submissions file %q: %w", filename, err)
	}
	return sub, nil
}

// Records flattens the parallel arrays into raw filing records, keyed by
// the zero-padded CIK. The arrays must have the same length.
func (s Submissions) Records() (cik string, recs []FilingRecord, err error) {
	cik = strings.TrimSpace(s.CIK)
	if cik == "" {
		return "", nil, fmt.Errorf("submissions document has no CIK")
	}
	cik = padCIK(cik)

	recent := s.Filings.Recent
	n := len(recent.AccessionNumber)
	if len(recent.FilingDate) != n || len(recent.Form) != n {
		return "", nil, fmt.Errorf("submissions document for CIK %s has ragged filing arrays", cik)
	}

	recs = make([]FilingRecord, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, FilingRecord{
			CompanyName:     s.Name,
			FormType:        recent.Form[i],
			FilingDate:      recent.FilingDate[i],
			AccessionNumber: recent.AccessionNumber[i],
		})
	}
	return cik, recs, nil
}
