// Package renderer turns resolved companies and filing lists into their
// presentation forms: a markdown report, a fixed-width text table, and the
// JSON report document.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/edgar"
	md "github.com/nao1215/markdown"
)

// FilingsMarkdown renders the filings of a company as a markdown report.
func FilingsMarkdown(company edgar.Company, filings []edgar.Filing) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Filings for %s (%s)", company.Name(), company.Ticker()))
	doc.PlainText("CIK: " + company.CIK())

	if len(filings) == 0 {
		doc.PlainText("No filings found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Date", "Form Type", "Company", "Accession Number"},
	}
	for _, f := range filings {
		table.Rows = append(table.Rows, []string{
			f.FilingDate().String(),
			f.FormType(),
			truncate(f.CompanyName(), maxCompanyWidth),
			f.AccessionNumber(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total: %d filing(s)", len(filings)))
	return doc.String()
}
