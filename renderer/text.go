package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/edgar"
)

// maxCompanyWidth keeps long company names from blowing up the table.
const maxCompanyWidth = 40

// FilingsText renders the filings of a company as a plain fixed-width
// table, for terminals where markdown rendering is unwanted.
func FilingsText(company edgar.Company, filings []edgar.Filing) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nFilings for %s (%s)\n", company.Name(), company.Ticker())
	fmt.Fprintf(&b, "CIK: %s\n\n", company.CIK())

	if len(filings) == 0 {
		b.WriteString("No filings found.\n")
		return b.String()
	}

	headers := []string{"Date", "Form Type", "Company", "Accession Number"}
	rows := make([][]string, 0, len(filings))
	for _, f := range filings {
		rows = append(rows, []string{
			f.FilingDate().String(),
			f.FormType(),
			truncate(f.CompanyName(), maxCompanyWidth),
			f.AccessionNumber(),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	header := joinPadded(headers, widths)
	b.WriteString(header)
	b.WriteString(strings.Repeat("-", len(strings.TrimRight(header, "\n"))))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(joinPadded(row, widths))
	}

	fmt.Fprintf(&b, "\nTotal: %d filing(s)\n", len(filings))
	return b.String()
}

func joinPadded(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
	}
	return strings.Join(padded, " | ") + "\n"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
