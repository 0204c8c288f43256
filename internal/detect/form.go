package detect

import (
	"strings"

	"github.com/leadforge/leadscan-cli/internal/page"
)

// countForms enumerates <form> elements and counts how many look like
// contact-intent forms. A form qualifies when its inner markup contains any
// word from the contact vocabulary, case-insensitive. A bare search box
// does not.
func (d *Detector) countForms(doc *page.Document) (formsCount, contactFormsCount int) {
	for _, inner := range doc.Forms() {
		formsCount++
		lower := strings.ToLower(inner)
		for _, word := range d.vocab.ContactFormWords {
			if strings.Contains(lower, word) {
				contactFormsCount++
				break
			}
		}
	}
	return formsCount, contactFormsCount
}
