package renderer

import (
	"encoding/json"
	"fmt"

	"github.com/etnz/edgar"
)

// Report is the JSON document shape of a filings query result.
type Report struct {
	Company edgar.Company  `json:"company"`
	Filings []edgar.Filing `json:"filings"`
	Count   int            `json:"count"`
}

// ReportJSON renders the filings of a company as an indented JSON document
// with the keys company, filings and count.
func ReportJSON(company edgar.Company, filings []edgar.Filing) (string, error) {
	if filings == nil {
		filings = []edgar.Filing{}
	}
	report := Report{Company: company, Filings: filings, Count: len(filings)}
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not encode report: %w", err)
	}
	return string(raw), nil
}
