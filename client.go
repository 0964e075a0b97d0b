package edgar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/etnz/edgar/date"
)

// CompanyRecord is one raw entry of the company dataset, in the shape of
// the SEC company_tickers.json file.
type CompanyRecord struct {
	CIK    int64  `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// FilingRecord is one raw entry of the filings dataset. FilingDate is kept
// as the raw "YYYY-MM-DD" literal, it is only parsed during a query.
type FilingRecord struct {
	CompanyName     string `json:"company_name"`
	FormType        string `json:"form_type"`
	FilingDate      string `json:"filing_date"`
	AccessionNumber string `json:"accession_number"`
}

// DiscardFunc observes a raw filing record dropped during a query, together
// with the reason it failed to validate.
type DiscardFunc func(cik string, rec FilingRecord, err error)

// Option customizes a Client at construction.
type Option func(*Client)

// WithDiscardFunc makes the per-record discard policy observable: fn is
// called for every raw record skipped by ListFilings. The default discards
// silently.
func WithDiscardFunc(fn DiscardFunc) Option {
	return func(c *Client) { c.discard = fn }
}

// Client resolves tickers to companies and CIKs to filings from datasets
// loaded once at construction. Both indices are read-only after NewClient
// returns; queries are pure lookups with no side effects.
type Client struct {
	companiesByTicker map[string]CompanyRecord
	filingsByCIK      map[string][]FilingRecord
	discard           DiscardFunc
}

// NewClient indexes the raw datasets. Company keys are thrown away, tickers
// are normalized (uppercase, trimmed) to become the index key; on duplicate
// tickers the last record wins, silently. Filing keys are normalized to the
// zero-padded 10-digit CIK form.
func NewClient(companies map[string]CompanyRecord, filings map[string][]FilingRecord, opts ...Option) *Client {
	c := &Client{
		companiesByTicker: make(map[string]CompanyRecord, len(companies)),
		filingsByCIK:      make(map[string][]FilingRecord, len(filings)),
	}
	for _, rec := range companies {
		ticker := strings.ToUpper(strings.TrimSpace(rec.Ticker))
		c.companiesByTicker[ticker] = rec
	}
	for cik, recs := range filings {
		c.filingsByCIK[padCIK(strings.TrimSpace(cik))] = recs
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LookupCompany resolves a ticker symbol to its validated Company. The
// lookup is case- and whitespace-insensitive.
func (c *Client) LookupCompany(ticker string) (Company, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return Company{}, fmt.Errorf("%w: ticker cannot be empty", ErrInvalidInput)
	}
	rec, ok := c.companiesByTicker[ticker]
	if !ok {
		return Company{}, fmt.Errorf("%w: ticker %q", ErrNotFound, ticker)
	}
	cik := padCIK(strconv.FormatInt(rec.CIK, 10))
	return NewCompany(ticker, cik, rec.Title)
}

// ListFilings returns the filings recorded under a CIK, filtered, sorted by
// filing date descending (ties keep their dataset order) and truncated to
// the filter's limit. Raw records that fail to parse or validate are
// dropped one by one, never failing the whole query; see WithDiscardFunc.
func (c *Client) ListFilings(cik string, filter FilingFilter) ([]Filing, error) {
	cik = strings.TrimSpace(cik)
	if cik == "" {
		return nil, fmt.Errorf("%w: CIK cannot be empty", ErrInvalidInput)
	}
	cik = padCIK(cik)
	recs, ok := c.filingsByCIK[cik]
	if !ok {
		return nil, fmt.Errorf("%w: no filings for CIK %q", ErrNotFound, cik)
	}

	filings := make([]Filing, 0, len(recs))
	for _, rec := range recs {
		filing, err := c.newFiling(cik, rec)
		if err != nil {
			if c.discard != nil {
				c.discard(cik, rec, err)
			}
			continue
		}
		if filter.Matches(filing) {
			filings = append(filings, filing)
		}
	}

	sort.SliceStable(filings, func(i, j int) bool {
		return filings[i].FilingDate().After(filings[j].FilingDate())
	})

	if limit := filter.Limit(); len(filings) > limit {
		filings = filings[:limit]
	}
	return filings, nil
}

// newFiling builds a validated Filing from one raw record.
func (c *Client) newFiling(cik string, rec FilingRecord) (Filing, error) {
	on, err := date.Parse(rec.FilingDate)
	if err != nil {
		return Filing{}, err
	}
	return NewFiling(cik, rec.CompanyName, rec.FormType, on, rec.AccessionNumber)
}
