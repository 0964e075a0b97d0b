// Package edgar looks up SEC filers and their filings from locally loaded
// datasets. It is designed to be local-first: the caller loads the raw
// company and filings datasets (typically the SEC company_tickers.json
// shape) and hands them to a Client, which indexes them once and answers
// pure in-memory queries.
//
// The core functionalities include:
//   - Validated Data Model: Company, Filing and FilingFilter are immutable
//     value objects whose constructors run all normalization (uppercasing,
//     trimming, CIK zero-padding) and invariant checks up front.
//   - Lookup: resolving a ticker symbol, case- and whitespace-insensitively,
//     to its Company.
//   - Filtering: listing the filings recorded under a CIK, narrowed by form
//     types and an inclusive date range, sorted by filing date descending
//     and truncated to a caller-chosen limit.
//   - Resilience: a malformed raw filing record is dropped silently rather
//     than failing the whole query; the discard policy is observable
//     through WithDiscardFunc.
//
// This package serves as the foundational logic for the `secq` command-line
// tool. It never fetches data from a live network service.
package edgar
