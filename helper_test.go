package edgar

// Shared fixtures for the engine tests. The shapes mirror the SEC
// company_tickers.json dataset and the filings dataset keyed by CIK.

func testCompanies() map[string]CompanyRecord {
	return map[string]CompanyRecord{
		"0": {CIK: 320193, Ticker: "AAPL", Title: "Apple Inc."},
		"1": {CIK: 789019, Ticker: "MSFT", Title: "MICROSOFT CORP"},
		"2": {CIK: 1318605, Ticker: "TSLA", Title: "Tesla, Inc."},
	}
}

func testFilings() map[string][]FilingRecord {
	return map[string][]FilingRecord{
		"0000320193": {
			{CompanyName: "Apple Inc.", FormType: "10-Q", FilingDate: "2023-08-04", AccessionNumber: "0000320193-23-000077"},
			{CompanyName: "Apple Inc.", FormType: "10-K", FilingDate: "2022-10-28", AccessionNumber: "0000320193-22-000108"},
			{CompanyName: "Apple Inc.", FormType: "10-Q", FilingDate: "2023-05-05", AccessionNumber: "0000320193-23-000064"},
			{CompanyName: "Apple Inc.", FormType: "10-K", FilingDate: "2023-11-03", AccessionNumber: "0000320193-23-000106"},
			{CompanyName: "Apple Inc.", FormType: "10-Q", FilingDate: "2023-02-03", AccessionNumber: "0000320193-23-000006"},
		},
		"0000789019": {
			{CompanyName: "MICROSOFT CORP", FormType: "10-K", FilingDate: "2023-07-27", AccessionNumber: "0000950170-23-035122"},
		},
	}
}

func newTestClient(opts ...Option) *Client {
	return NewClient(testCompanies(), testFilings(), opts...)
}

// accessions extracts the accession numbers, in order, for compact asserts.
func accessions(filings []Filing) []string {
	var ids []string
	for _, f := range filings {
		ids = append(ids, f.AccessionNumber())
	}
	return ids
}
