// Package export writes lead batches to spreadsheet-friendly formats.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/leadforge/leadscan-cli/internal/model"
)

var csvHeader = []string{
	"Name",
	"Website",
	"Location",
	"Lead Score",
	"Live Chat",
	"Contact Form",
	"Phone Numbers",
	"Email Addresses",
	"Description",
	"Analysis Date",
}

// WriteCSV writes the batch as CSV, one row per lead, header first.
func WriteCSV(w io.Writer, leads []model.Lead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, l := range leads {
		row := []string{
			l.Name,
			l.Website,
			l.Location,
			strconv.Itoa(l.Score),
			yesNo(l.HasChat),
			yesNo(l.HasForm),
			strings.Join(l.Phones, "; "),
			strings.Join(l.Emails, "; "),
			l.Description,
			l.AnalyzedAt.Format("2006-01-02"),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrapf(err, "export: write row for %s", l.Name)
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
