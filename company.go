package edgar

import (
	"encoding/json"
	"fmt"
	"strings"
)

// cikLen is the canonical width of a Central Index Key.
const cikLen = 10

// Company identifies one SEC filer. It is immutable once constructed;
// construct it with NewCompany or through Client.LookupCompany.
type Company struct {
	ticker string
	cik    string
	name   string
}

// NewCompany validates and normalizes a company. The ticker is uppercased
// and trimmed; the cik must be exactly 10 digits after trimming; ticker and
// name must not be empty.
func NewCompany(ticker, cik, name string) (Company, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return Company{}, fmt.Errorf("%w: ticker cannot be empty", ErrValidation)
	}
	cik = strings.TrimSpace(cik)
	if err := checkCIK(cik); err != nil {
		return Company{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Company{}, fmt.Errorf("%w: company name cannot be empty", ErrValidation)
	}
	return Company{ticker: ticker, cik: cik, name: name}, nil
}

// Ticker returns the normalized ticker symbol.
func (c Company) Ticker() string { return c.ticker }

// CIK returns the zero-padded 10-digit Central Index Key.
func (c Company) CIK() string { return c.cik }

// Name returns the company name as found in the dataset.
func (c Company) Name() string { return c.name }

func (c Company) String() string { return fmt.Sprintf("%s (%s) CIK %s", c.name, c.ticker, c.cik) }

// MarshalJSON encodes the company with its dataset field names.
func (c Company) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Ticker string `json:"ticker"`
		CIK    string `json:"cik"`
		Name   string `json:"name"`
	}{c.ticker, c.cik, c.name})
}

// checkCIK verifies the canonical CIK shape: exactly 10 characters, digits only.
func checkCIK(cik string) error {
	if len(cik) != cikLen {
		return fmt.Errorf("%w: CIK %q must be exactly %d digits", ErrValidation, cik, cikLen)
	}
	for _, r := range cik {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: CIK %q must contain only digits", ErrValidation, cik)
		}
	}
	return nil
}

// padCIK left-pads a trimmed CIK string with zeros up to the canonical
// width. Longer strings are returned unchanged, validation catches them.
func padCIK(cik string) string {
	if len(cik) >= cikLen {
		return cik
	}
	return strings.Repeat("0", cikLen-len(cik)) + cik
}
