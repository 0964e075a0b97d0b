package edgar

import (
	"encoding/json"
	"fmt"
	"os"
)

// This file contains the convenience wrappers to load the raw datasets from
// disk. The Client itself never touches the filesystem: callers load the
// datasets once and hand the raw mappings to NewClient.

// LoadCompanyDataset reads a company dataset file (company_tickers.json
// shape: arbitrary key to {cik_str, ticker, title}).
func LoadCompanyDataset(filename string) (map[string]CompanyRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open company dataset %q: %w", filename, err)
	}
	defer f.Close()

	var companies map[string]CompanyRecord
	if err := json.NewDecoder(f).Decode(&companies); err != nil {
		return nil, fmt.Errorf("format error in company dataset %q: %w", filename, err)
	}
	return companies, nil
}

// LoadFilingDataset reads a filings dataset file (10-digit CIK string to
// ordered list of raw filing records).
func LoadFilingDataset(filename string) (map[string][]FilingRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open filings dataset %q: %w", filename, err)
	}
	defer f.Close()

	var filings map[string][]FilingRecord
	if err := json.NewDecoder(f).Decode(&filings); err != nil {
		return nil, fmt.Errorf("format error in filings dataset %q: %w", filename, err)
	}
	return filings, nil
}
