package edgar

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/edgar/date"
)

// Filing is one validated filing submission. Immutable once constructed;
// Client.ListFilings builds one per raw dataset record.
type Filing struct {
	cik             string
	companyName     string
	formType        string
	filingDate      date.Date
	accessionNumber string
}

// NewFiling validates and normalizes a filing. The form type is uppercased
// and trimmed; every field must be present and the date must be set.
func NewFiling(cik, companyName, formType string, filingDate date.Date, accessionNumber string) (Filing, error) {
	cik = strings.TrimSpace(cik)
	if err := checkCIK(cik); err != nil {
		return Filing{}, err
	}
	if strings.TrimSpace(companyName) == "" {
		return Filing{}, fmt.Errorf("%w: filing company name cannot be empty", ErrValidation)
	}
	formType = strings.ToUpper(strings.TrimSpace(formType))
	if formType == "" {
		return Filing{}, fmt.Errorf("%w: filing form type cannot be empty", ErrValidation)
	}
	if filingDate.IsZero() {
		return Filing{}, fmt.Errorf("%w: filing date cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(accessionNumber) == "" {
		return Filing{}, fmt.Errorf("%w: filing accession number cannot be empty", ErrValidation)
	}
	return Filing{
		cik:             cik,
		companyName:     companyName,
		formType:        formType,
		filingDate:      filingDate,
		accessionNumber: accessionNumber,
	}, nil
}

// CIK returns the filer's zero-padded Central Index Key.
func (f Filing) CIK() string { return f.cik }

// CompanyName returns the company name recorded on the filing.
func (f Filing) CompanyName() string { return f.companyName }

// FormType returns the normalized form type (e.g. "10-K").
func (f Filing) FormType() string { return f.formType }

// FilingDate returns the date the filing was submitted.
func (f Filing) FilingDate() date.Date { return f.filingDate }

// AccessionNumber returns the unique identifier of the submission.
func (f Filing) AccessionNumber() string { return f.accessionNumber }

// MarshalJSON encodes the filing with its dataset field names.
func (f Filing) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CIK             string    `json:"cik"`
		CompanyName     string    `json:"company_name"`
		FormType        string    `json:"form_type"`
		FilingDate      date.Date `json:"filing_date"`
		AccessionNumber string    `json:"accession_number"`
	}{f.cik, f.companyName, f.formType, f.filingDate, f.accessionNumber})
}
