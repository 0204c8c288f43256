// Package detect runs heuristic signal detectors over a parsed page.
// Detectors never fail: absence of a match yields empty or false.
package detect

import (
	"github.com/leadforge/leadscan-cli/internal/model"
	"github.com/leadforge/leadscan-cli/internal/page"
)

const (
	maxContacts     = 3
	maxTechnologies = 5
)

// Detector evaluates all signal heuristics for one page.
type Detector struct {
	vocab Vocabulary
}

// New creates a Detector over the given vocabulary tables.
func New(vocab Vocabulary) *Detector {
	return &Detector{vocab: vocab}
}

// Analyze runs every detector over the document and collects the results.
// The detectors are independent and read-only.
func (d *Detector) Analyze(doc *page.Document) model.PageSignals {
	text := doc.Text()

	formsCount, contactFormsCount := d.countForms(doc)

	return model.PageSignals{
		HasChat:           d.detectChat(doc, text),
		HasForm:           contactFormsCount > 0,
		HasAnyForm:        formsCount > 0,
		Phones:            d.extractPhones(text),
		Emails:            d.extractEmails(text),
		Technologies:      d.detectTechnologies(doc),
		FormsCount:        formsCount,
		ContactFormsCount: contactFormsCount,
	}
}
